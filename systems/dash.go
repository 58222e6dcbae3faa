package systems

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDash advances the cooldown, starts a dash on a dash press and drives
// the running dash until it expires.
func UpdateDash(ecs *ecs.ECS) {
	dt := deltaTime(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		motion := components.Motion.Get(e)

		if motion.DashCooldown.Active && motion.DashCooldown.Advance(dt) > player.DashResetTime {
			motion.DashCooldown.Stop()
		}

		if intent := components.Intent.Get(e); intent.DashPressed && motion.CanDash() {
			triggerDash(e, components.ClassifyDash(intent.Dash))
		}

		continueDash(e, dt)
	})
}

// triggerDash starts a dash toward dir. DashNone leaves everything untouched.
func triggerDash(e *donburi.Entry, dir components.DashDirection) {
	motion := components.Motion.Get(e)
	if !motion.StartDash(dir) {
		return
	}
	player := components.Player.Get(e)
	if facing, ok := dir.Facing(); ok {
		player.Facing = facing
	}
	components.Body.Get(e).GravityScale = 0
	components.State.Get(e).Force(cfg.Dash)

	tint := components.Tint.Get(e)
	tint.Color = cfg.Trail.DashTint
	tint.Recovery = nil
}

func continueDash(e *donburi.Entry, dt float64) {
	motion := components.Motion.Get(e)
	dash, ok := motion.Dashing()
	if !ok {
		return
	}
	player := components.Player.Get(e)
	body := components.Body.Get(e)

	v := dash.Direction.Velocity()
	body.Velocity = components.Vector{X: v.X * player.DashSpeed, Y: v.Y * player.DashSpeed}
	dash.Elapsed += dt
	dash.Traveled += player.DashSpeed * dt

	if !dashExpired(dash, player) {
		return
	}
	motion.EndDash()
	body.GravityScale = cfg.Physics.GravityScale
	startTintRecovery(components.Tint.Get(e))
}

func dashExpired(dash *components.Dashing, player *components.PlayerData) bool {
	if cfg.Player.DashPolicy == cfg.DashDistanceBoxed {
		return dash.Traveled >= cfg.Player.MaxDashLength
	}
	return dash.Elapsed > player.DashMaxTime
}
