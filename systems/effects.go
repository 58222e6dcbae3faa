package systems

import (
	"image/color"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTint blends recovering tints back to white.
func UpdateTint(ecs *ecs.ECS) {
	dt := float32(deltaTime(ecs))
	components.Tint.Each(ecs.World, func(e *donburi.Entry) {
		tint := components.Tint.Get(e)
		if tint.Recovery == nil {
			return
		}
		t, finished := tint.Recovery.Update(dt)
		tint.Color = lerpColor(tint.From, cfg.White, float64(t))
		if finished {
			tint.Color = cfg.White
			tint.Recovery = nil
		}
	})
}

// startTintRecovery starts blending the current tint back to white.
func startTintRecovery(tint *components.TintData) {
	tint.From = tint.Color
	tint.Recovery = gween.New(0, 1, float32(cfg.Trail.TintRecovery), ease.OutQuad)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
