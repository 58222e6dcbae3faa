package systems

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
)

// AggregateIntent folds polled input into the player's intent for one tick.
//
// Horizontal movement is scaled by speed and dt. Any held keyboard movement key
// silences gamepad horizontal input for the tick. The dash vector sums the
// keyboard, every d-pad and every stick past the deadzone, y-up, unscaled.
func AggregateIntent(input *components.InputData, dt, speed, deadzone float64) components.IntentData {
	var intent components.IntentData

	kb := &input.Keyboard
	left := kb.Action(cfg.ActionMoveLeft).Pressed
	right := kb.Action(cfg.ActionMoveRight).Pressed
	if left || right {
		intent.Move = dt * speed * axis(left, right)
	} else {
		for i := range input.Gamepads {
			gp := &input.Gamepads[i]
			if abs(gp.StickX) > deadzone {
				intent.Move += dt * speed * gp.StickX
			}
			intent.Move += dt * speed * axis(
				gp.Buttons.Action(cfg.ActionMoveLeft).Pressed,
				gp.Buttons.Action(cfg.ActionMoveRight).Pressed,
			)
		}
	}

	intent.Dash = components.Vector{
		X: axis(left, right),
		Y: axis(kb.Action(cfg.ActionMoveDown).Pressed, kb.Action(cfg.ActionMoveUp).Pressed),
	}
	for i := range input.Gamepads {
		gp := &input.Gamepads[i]
		intent.Dash.X += axis(
			gp.Buttons.Action(cfg.ActionMoveLeft).Pressed,
			gp.Buttons.Action(cfg.ActionMoveRight).Pressed,
		)
		intent.Dash.Y += axis(
			gp.Buttons.Action(cfg.ActionMoveDown).Pressed,
			gp.Buttons.Action(cfg.ActionMoveUp).Pressed,
		)
		intent.Dash.X += deadzoneSign(gp.StickX, deadzone)
		intent.Dash.Y += deadzoneSign(gp.StickY, deadzone)
	}

	jump := GetAction(input, cfg.ActionJump)
	intent.JumpPressed = jump.JustPressed
	intent.JumpReleased = jump.JustReleased
	intent.DashPressed = GetAction(input, cfg.ActionDash).JustPressed

	return intent
}

// axis maps a negative/positive button pair to -1, 0 or 1.
func axis(neg, pos bool) float64 {
	v := 0.0
	if neg {
		v--
	}
	if pos {
		v++
	}
	return v
}

func deadzoneSign(v, deadzone float64) float64 {
	switch {
	case v > deadzone:
		return 1
	case v < -deadzone:
		return -1
	}
	return 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
