package components

import (
	"github.com/automoto/skyward/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState config.StateID
	// PreviousState is the state the tick started in.
	PreviousState config.StateID
	// StateTimer counts ticks spent in CurrentState.
	StateTimer int
	// Forced is set when a jump or dash trigger chose the state this tick.
	Forced bool
}

// Set changes the current state, restarting the timer on an actual change.
func (s *StateData) Set(state config.StateID) {
	if s.CurrentState == state {
		return
	}
	s.CurrentState = state
	s.StateTimer = 0
}

// Force sets a state chosen by an ability trigger. Landing does not override it
// within the same tick.
func (s *StateData) Force(state config.StateID) {
	s.Set(state)
	s.Forced = true
}

var State = donburi.NewComponentType[StateData]()
