package systems

import (
	"math"

	"github.com/automoto/skyward/components"
	"github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, leading in the facing
// direction while it moves, and keeps the level filling the screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	center := components.Object.Get(playerEntry).Center()
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Freeze the look-ahead while standing still
	if math.Abs(body.Velocity.X) > config.Camera.LookAheadSpeedThreshold {
		dir := 1.0
		if player.Facing == components.FacingLeft {
			dir = -1
		}
		target := dir * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (target - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	minX, maxX := cameraRange(config.C.Width, levelData.CurrentLevel.Width)
	minY, maxY := cameraRange(config.C.Height, levelData.CurrentLevel.Height)
	targetX := math.Max(minX, math.Min(maxX, center.X+camera.LookAheadX))
	targetY := math.Max(minY, math.Min(maxY, center.Y))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// cameraRange is the span of camera centers that keep a level edge off
// screen. A level smaller than the screen pins the camera to its middle.
func cameraRange(screen, level int) (float64, float64) {
	half := float64(screen) / 2
	if level <= screen {
		return float64(level) / 2, float64(level) / 2
	}
	return half, float64(level) - half
}

// cameraOffset returns the world to screen translation, or zero without a camera.
func cameraOffset(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	return components.Camera.Get(cameraEntry).Offset(config.C.Width, config.C.Height)
}
