package systems

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cycles records which one-shot clips completed on an entity this tick.
type cycles struct {
	jump, land, dash bool
}

// UpdatePlayerState drains the animation events and applies the
// event-driven and ground-driven transitions. Movement and trigger
// transitions were already applied by the earlier stages.
func UpdatePlayerState(ecs *ecs.ECS) {
	events := DrainAnimationEvents(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		var done cycles
		for _, ev := range events {
			if ev.Entity != e.Entity() {
				continue
			}
			switch ev.AnimationID {
			case anim.ByState[cfg.Jump]:
				done.jump = true
			case anim.ByState[cfg.Land]:
				done.land = true
			case anim.ByState[cfg.Dash]:
				done.dash = true
			}
		}
		if anim.IsPlaying(cfg.Dash) && anim.CurrentAnimation.Finished() {
			done.dash = true
		}
		derivePlayerState(e, done)
	})
}

func derivePlayerState(e *donburi.Entry, done cycles) {
	state := components.State.Get(e)
	grounded := components.Player.Get(e).Grounded
	_, dashing := components.Motion.Get(e).Dashing()

	if state.CurrentState == cfg.Jump && done.jump {
		state.Set(cfg.Air)
	}
	if state.CurrentState == cfg.Land && done.land {
		state.Set(cfg.Idle)
	}
	if grounded && !state.Forced && state.CurrentState != cfg.Dash &&
		(isAirborneState(state.CurrentState) || isAirborneState(state.PreviousState)) {
		state.Set(cfg.Land)
	}
	if state.CurrentState == cfg.Dash && !dashing && done.dash {
		state.Set(cfg.Air)
	}
	// Walking off a ledge
	if !grounded && (state.CurrentState == cfg.Idle || state.CurrentState == cfg.Run) {
		state.Set(cfg.Air)
	}
}

func isAirborneState(s cfg.StateID) bool {
	return s == cfg.Jump || s == cfg.Air
}
