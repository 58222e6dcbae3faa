package systems

import (
	"time"

	"github.com/automoto/skyward/components"
	"github.com/automoto/skyward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimationBinding points the player's clip at its current state and
// mirrors the sprite toward the facing.
func UpdateAnimationBinding(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		state := components.State.Get(e)
		if id, ok := anim.ByState[state.CurrentState]; ok {
			anim.SetAnimation(id)
		}
		// Sheet faces left
		anim.FlipX = components.Player.Get(e).Facing == components.FacingRight
	})
}

// UpdateAnimationPlayback advances every clip and queues a completion event
// for each one-shot clip that finished a cycle.
func UpdateAnimationPlayback(ecs *ecs.ECS) {
	dt := time.Duration(deltaTime(ecs) * float64(time.Second))
	queue := getOrCreateAnimationEvents(ecs)

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation == nil {
			return
		}
		if !anim.CurrentAnimation.Update(dt) {
			return
		}
		if clip, ok := anim.Library.Clip(anim.CurrentID); ok && !clip.Loop {
			queue.Push(components.AnimationCycleCompleted{Entity: e.Entity(), AnimationID: anim.CurrentID})
		}
	})
}

// DrainAnimationEvents empties the completion queue and returns its events.
func DrainAnimationEvents(ecs *ecs.ECS) []components.AnimationCycleCompleted {
	entry, ok := components.AnimationEvents.First(ecs.World)
	if !ok {
		return nil
	}
	return components.AnimationEvents.Get(entry).Drain()
}

func getOrCreateAnimationEvents(ecs *ecs.ECS) *components.AnimationEventsData {
	entry, ok := components.AnimationEvents.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.AnimationEvents))
	}
	return components.AnimationEvents.Get(entry)
}
