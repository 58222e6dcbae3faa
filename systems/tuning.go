package systems

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyTuning folds t into the global config and pushes the new values onto
// every live player. Running jumps and dashes finish with their new limits.
func ApplyTuning(ecs *ecs.ECS, t *cfg.Tuning) {
	if t == nil {
		return
	}
	t.Apply(&cfg.Player, &cfg.Input)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		player.Speed = cfg.Player.Speed
		player.JumpForce = cfg.Player.JumpForce
		player.MaxJumpHeight = cfg.Player.MaxJumpHeight
		player.DashSpeed = cfg.Player.DashSpeed
		player.DashMaxTime = cfg.Player.DashMaxTime
		player.DashResetTime = cfg.Player.DashResetTime
	})
}
