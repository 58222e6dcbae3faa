package components

import (
	"github.com/automoto/skyward/assets/animations"
	"github.com/automoto/skyward/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Library          *animations.Library
	ByState          map[config.StateID]animations.AnimationID
	CurrentID        animations.AnimationID
	CurrentAnimation *animations.Animation
	// FlipX mirrors the sprite; the sheet faces left.
	FlipX bool
}

// SetAnimation switches to id. Setting the clip that is already playing is a no-op.
func (a *AnimationData) SetAnimation(id animations.AnimationID) {
	if a.CurrentAnimation != nil && a.CurrentID == id {
		return
	}
	a.CurrentID = id
	a.CurrentAnimation = a.Library.NewPlayback(id)
}

// IsPlaying reports whether the current clip is the one bound to state.
func (a *AnimationData) IsPlaying(state config.StateID) bool {
	id, ok := a.ByState[state]
	return ok && a.CurrentAnimation != nil && a.CurrentID == id
}

var Animation = donburi.NewComponentType[AnimationData]()

// AnimationCycleCompleted reports that a clip finished one cycle on an entity.
type AnimationCycleCompleted struct {
	Entity      donburi.Entity
	AnimationID animations.AnimationID
}

// AnimationEventsData is the queue of cycle completions, drained once per tick.
type AnimationEventsData struct {
	Pending []AnimationCycleCompleted
}

func (q *AnimationEventsData) Push(ev AnimationCycleCompleted) {
	q.Pending = append(q.Pending, ev)
}

// Drain returns every pending event and empties the queue.
func (q *AnimationEventsData) Drain() []AnimationCycleCompleted {
	events := q.Pending
	q.Pending = nil
	return events
}

var AnimationEvents = donburi.NewComponentType[AnimationEventsData]()
