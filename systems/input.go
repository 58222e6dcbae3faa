package systems

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the Input singleton.
// Must run BEFORE UpdatePlayerCore in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	input.Keyboard.Swap()
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Keyboard.Current[actionID] = true
			}
		}
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	input.Gamepads = pollGamepads(input.Gamepads, gamepadIDs)
}

// pollGamepads refreshes one GamepadInput per connected standard-layout
// gamepad, carrying the previous frame across for devices that stay connected.
func pollGamepads(prev []components.GamepadInput, ids []ebiten.GamepadID) []components.GamepadInput {
	next := make([]components.GamepadInput, 0, len(ids))
	for _, gpID := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		gp := components.GamepadInput{ID: int(gpID)}
		for _, old := range prev {
			if old.ID == int(gpID) {
				gp.Buttons = old.Buttons
				break
			}
		}
		gp.Buttons.Swap()

		for actionID, binding := range cfg.Input.Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					gp.Buttons.Current[actionID] = true
				}
			}
		}

		gp.StickX = ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		// ebiten reports down as positive
		gp.StickY = -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		next = append(next, gp)
	}
	return next
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction reports an action across the keyboard and every gamepad.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	s := input.Keyboard.Action(id)
	for i := range input.Gamepads {
		g := input.Gamepads[i].Buttons.Action(id)
		s.Pressed = s.Pressed || g.Pressed
		s.JustPressed = s.JustPressed || g.JustPressed
		s.JustReleased = s.JustReleased || g.JustReleased
	}
	return s
}
