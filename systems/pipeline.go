package systems

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// playerCore is the fixed stage order of one player tick. Each stage reads
// what the previous ones wrote this tick, so it must never be reordered.
var playerCore = []func(*ecs.ECS){
	beginPlayerTick,
	UpdateGroundSensor,
	UpdateHorizontalMovement,
	UpdateJump,
	UpdateDash,
	UpdateFacing,
	UpdatePlayerState,
	UpdateAnimationBinding,
	UpdateDashTrails,
}

// UpdatePlayerCore runs one tick of the player controller.
func UpdatePlayerCore(ecs *ecs.ECS) {
	for _, stage := range playerCore {
		stage(ecs)
	}
}

// UpdateSimulation runs the player core followed by everything that consumes
// its output: clip playback, tint recovery and body integration.
func UpdateSimulation(ecs *ecs.ECS) {
	UpdatePlayerCore(ecs)
	UpdateAnimationPlayback(ecs)
	UpdateTint(ecs)
	UpdatePhysics(ecs)
}

// beginPlayerTick snapshots the state the tick starts in and aggregates input
// into the player's intent.
func beginPlayerTick(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		state.PreviousState = state.CurrentState
		state.StateTimer++
		state.Forced = false

		player := components.Player.Get(e)
		components.Intent.SetValue(e, AggregateIntent(input, dt, player.Speed, cfg.Input.AnalogDeadzone))
	})
}
