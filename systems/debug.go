package systems

import (
	"image/color"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugToggle flips the probe overlay on the toggle action and persists it.
func UpdateDebugToggle(ecs *ecs.ECS) {
	if !GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		return
	}
	cfg.Debug.DrawProbe = !cfg.Debug.DrawProbe
	_ = SaveSettings(CurrentSettings())
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawProbe {
		return
	}

	ox, oy := cameraOffset(ecs)
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if obj.HasTags(tags.ResolvSensor) {
				continue
			}
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			}
			vector.StrokeRect(screen, float32(obj.X+ox), float32(obj.Y+oy), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	// Ground ray, green on a hit
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		sensor := components.GroundSensor.Get(e)
		c := cfg.Red
		if sensor.Hit {
			c = cfg.Green
		}
		x, y := float32(sensor.Origin.X+ox), float32(sensor.Origin.Y+oy)
		vector.StrokeLine(screen, x, y, x, y+float32(sensor.Length), 1, c, false)
	})
}
