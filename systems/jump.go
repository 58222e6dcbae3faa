package systems

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateJump handles, in order, the jump press, the jump buffer, an early
// release and the rise of an active jump arc.
func UpdateJump(ecs *ecs.ECS) {
	dt := deltaTime(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		motion := components.Motion.Get(e)
		intent := components.Intent.Get(e)

		if intent.JumpPressed {
			if player.Grounded {
				startJump(e)
			} else {
				motion.JumpBuffer.Start()
			}
		}

		if motion.JumpBuffer.Active {
			if player.Grounded {
				motion.JumpBuffer.Stop()
				startJump(e)
			} else if motion.JumpBuffer.Advance(dt) > cfg.Player.JumpBufferTime {
				motion.JumpBuffer.Stop()
			}
		}

		if intent.JumpReleased && !player.Grounded {
			motion.StopRising()
		}

		rise(e, dt)
	})
}

// startJump begins a fresh arc, cancelling a dash if one is running.
func startJump(e *donburi.Entry) {
	motion := components.Motion.Get(e)
	if motion.StartJump() {
		components.Body.Get(e).GravityScale = cfg.Physics.GravityScale
		startTintRecovery(components.Tint.Get(e))
	}
	components.State.Get(e).Force(cfg.Jump)
}

// rise applies this tick's share of the jump arc as upward velocity. The arc
// ends on the tick its height reaches MaxJumpHeight.
func rise(e *donburi.Entry, dt float64) {
	motion := components.Motion.Get(e)
	arc, ok := motion.Rising()
	if !ok {
		return
	}
	player := components.Player.Get(e)

	candidate := dt * player.JumpForce
	if arc.Height+candidate >= player.MaxJumpHeight {
		candidate = player.MaxJumpHeight - arc.Height
		arc.Height = player.MaxJumpHeight
		motion.StopRising()
	} else {
		arc.Height += candidate
	}
	components.Body.Get(e).Velocity.Y = -candidate
}
