package systems

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHorizontalMovement sets velocity.x directly on the ground and nudges
// it while airborne. Dashing bodies are left to the dash.
func UpdateHorizontalMovement(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		motion := components.Motion.Get(e)
		if _, dashing := motion.Dashing(); dashing {
			return
		}

		player := components.Player.Get(e)
		body := components.Body.Get(e)
		state := components.State.Get(e)
		move := components.Intent.Get(e).Move

		if player.Grounded {
			body.Velocity.X = move
			if state.CurrentState != cfg.Land {
				if move != 0 {
					state.Set(cfg.Run)
				} else {
					state.Set(cfg.Idle)
				}
			}
			return
		}

		if move == 0 {
			return
		}
		body.Velocity.X += move / cfg.Player.AirFriction
		limit := player.Speed / cfg.Player.AirSpeedRatio
		if body.Velocity.X > limit {
			body.Velocity.X = limit
		} else if body.Velocity.X < -limit {
			body.Velocity.X = -limit
		}
	})
}

// UpdateFacing turns the player toward its horizontal velocity. A running dash
// keeps the facing it set when it started.
func UpdateFacing(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if _, dashing := components.Motion.Get(e).Dashing(); dashing {
			return
		}
		player := components.Player.Get(e)
		vx := components.Body.Get(e).Velocity.X
		if vx > 0 {
			player.Facing = components.FacingRight
		} else if vx < 0 {
			player.Facing = components.FacingLeft
		}
	})
}
