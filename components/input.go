package components

import (
	cfg "github.com/automoto/skyward/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// ActionSet stores the current and previous frame's pressed state for all actions
// of one device. JustPressed/JustReleased are computed on-demand by comparing frames.
type ActionSet struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Action returns the full ActionState for an action ID.
func (s *ActionSet) Action(id cfg.ActionID) ActionState {
	curr := s.Current[id]
	prev := s.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Swap makes the current frame the previous one and clears the current frame.
func (s *ActionSet) Swap() {
	s.Previous = s.Current
	s.Current = [cfg.ActionCount]bool{}
}

// Consume treats every held action as already seen, so nothing reads as
// just pressed or just released until the next poll.
func (s *ActionSet) Consume() {
	s.Previous = s.Current
}

// GamepadInput is one connected gamepad's digital buttons and left stick.
type GamepadInput struct {
	ID      int
	Buttons ActionSet
	StickX  float64 // [-1, 1], positive right
	StickY  float64 // [-1, 1], positive up
}

// InputData is the raw polled input of a tick. Keyboard and gamepads are kept
// apart because keyboard movement takes priority over gamepad movement.
type InputData struct {
	Keyboard ActionSet
	Gamepads []GamepadInput
}

var Input = donburi.NewComponentType[InputData]()

// IntentData is the aggregated input for the player this tick.
type IntentData struct {
	// Move is the horizontal movement, already multiplied by speed and delta.
	Move float64
	// Dash is the summed y-up direction of every source, not frame scaled.
	Dash         Vector
	JumpPressed  bool
	JumpReleased bool
	DashPressed  bool
}

var Intent = donburi.NewComponentType[IntentData]()

// ConsumeEdges consumes the edges of the keyboard and every gamepad.
func (d *InputData) ConsumeEdges() {
	d.Keyboard.Consume()
	for i := range d.Gamepads {
		d.Gamepads[i].Buttons.Consume()
	}
}
