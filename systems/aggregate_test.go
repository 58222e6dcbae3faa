package systems

import (
	"testing"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
)

const (
	aggSpeed    = 20000.0
	aggDeadzone = 0.5
)

func pad(stickX, stickY float64, buttons ...cfg.ActionID) components.GamepadInput {
	gp := components.GamepadInput{StickX: stickX, StickY: stickY}
	for _, id := range buttons {
		gp.Buttons.Current[id] = true
	}
	return gp
}

func keys(ids ...cfg.ActionID) components.ActionSet {
	var s components.ActionSet
	for _, id := range ids {
		s.Current[id] = true
	}
	return s
}

func TestAggregateIntentMove(t *testing.T) {
	unit := testDelta * aggSpeed
	tests := []struct {
		name  string
		input components.InputData
		want  float64
	}{
		{"no input", components.InputData{}, 0},
		{"keyboard right", components.InputData{Keyboard: keys(cfg.ActionMoveRight)}, unit},
		{"keyboard left", components.InputData{Keyboard: keys(cfg.ActionMoveLeft)}, -unit},
		{"keyboard both cancel", components.InputData{Keyboard: keys(cfg.ActionMoveLeft, cfg.ActionMoveRight)}, 0},
		{
			"keyboard silences stick",
			components.InputData{
				Keyboard: keys(cfg.ActionMoveRight),
				Gamepads: []components.GamepadInput{pad(-1, 0)},
			},
			unit,
		},
		{
			"keyboard both held still silences stick",
			components.InputData{
				Keyboard: keys(cfg.ActionMoveLeft, cfg.ActionMoveRight),
				Gamepads: []components.GamepadInput{pad(1, 0)},
			},
			0,
		},
		{"stick past deadzone", components.InputData{Gamepads: []components.GamepadInput{pad(0.75, 0)}}, unit * 0.75},
		{"stick inside deadzone", components.InputData{Gamepads: []components.GamepadInput{pad(0.25, 0)}}, 0},
		{"dpad left", components.InputData{Gamepads: []components.GamepadInput{pad(0, 0, cfg.ActionMoveLeft)}}, -unit},
		{
			"two pads sum",
			components.InputData{Gamepads: []components.GamepadInput{
				pad(0, 0, cfg.ActionMoveRight),
				pad(0.75, 0),
			}},
			unit * 1.75,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateIntent(&tt.input, testDelta, aggSpeed, aggDeadzone)
			if got.Move != tt.want {
				t.Errorf("Move = %v, want %v", got.Move, tt.want)
			}
		})
	}
}

func TestAggregateIntentDash(t *testing.T) {
	tests := []struct {
		name  string
		input components.InputData
		want  components.Vector
		dir   components.DashDirection
	}{
		{"none", components.InputData{}, components.Vector{}, components.DashNone},
		{
			"keyboard up right",
			components.InputData{Keyboard: keys(cfg.ActionMoveRight, cfg.ActionMoveUp)},
			components.Vector{X: 1, Y: 1},
			components.DashNorthEast,
		},
		{
			"keyboard and stick sum",
			components.InputData{
				Keyboard: keys(cfg.ActionMoveRight),
				Gamepads: []components.GamepadInput{pad(0, 0.9)},
			},
			components.Vector{X: 1, Y: 1},
			components.DashNorthEast,
		},
		{
			"opposites cancel",
			components.InputData{
				Keyboard: keys(cfg.ActionMoveLeft),
				Gamepads: []components.GamepadInput{pad(0, 0, cfg.ActionMoveRight)},
			},
			components.Vector{},
			components.DashNone,
		},
		{
			"stick in deadzone ignored",
			components.InputData{Gamepads: []components.GamepadInput{pad(0.4, -0.4)}},
			components.Vector{},
			components.DashNone,
		},
		{
			"stick down left",
			components.InputData{Gamepads: []components.GamepadInput{pad(-0.6, -0.9)}},
			components.Vector{X: -1, Y: -1},
			components.DashSouthWest,
		},
		{
			"keyboard down",
			components.InputData{Keyboard: keys(cfg.ActionMoveDown)},
			components.Vector{X: 0, Y: -1},
			components.DashSouth,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateIntent(&tt.input, testDelta, aggSpeed, aggDeadzone)
			if got.Dash != tt.want {
				t.Errorf("Dash = %+v, want %+v", got.Dash, tt.want)
			}
			if dir := components.ClassifyDash(got.Dash); dir != tt.dir {
				t.Errorf("direction = %s, want %s", dir, tt.dir)
			}
		})
	}
}

func TestAggregateIntentEdges(t *testing.T) {
	var in components.InputData
	in.Gamepads = []components.GamepadInput{pad(0, 0, cfg.ActionJump)}

	got := AggregateIntent(&in, testDelta, aggSpeed, aggDeadzone)
	if !got.JumpPressed || got.JumpReleased {
		t.Fatalf("first frame: pressed=%t released=%t, want pressed only", got.JumpPressed, got.JumpReleased)
	}

	in.Gamepads[0].Buttons.Swap()
	in.Gamepads[0].Buttons.Current[cfg.ActionJump] = true
	if got = AggregateIntent(&in, testDelta, aggSpeed, aggDeadzone); got.JumpPressed {
		t.Fatal("held jump reported as a new press")
	}

	in.Gamepads[0].Buttons.Swap()
	if got = AggregateIntent(&in, testDelta, aggSpeed, aggDeadzone); !got.JumpReleased {
		t.Fatal("release not reported")
	}

	in.Keyboard = keys(cfg.ActionDash)
	if got = AggregateIntent(&in, testDelta, aggSpeed, aggDeadzone); !got.DashPressed {
		t.Fatal("dash press not reported")
	}
}
