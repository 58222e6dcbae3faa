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

// DrawLevel fills the backdrop and every solid rectangle.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Backdrop)
	ox, oy := cameraOffset(ecs)
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X+ox), float32(o.Y+oy), float32(o.W), float32(o.H), cfg.Grey, false)
	})
}

// DrawTrails draws each dash trail as a faded copy of the player's silhouette.
func DrawTrails(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	ox, oy := cameraOffset(ecs)
	tags.Trail.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Trail.Get(e)
		c := scaleAlpha(t.Color, t.Alpha)
		vector.FillRect(screen, float32(t.Position.X-w/2+ox), float32(t.Position.Y-h/2+oy), float32(w), float32(h), c, false)
	})
}

// DrawPlayer draws the collider in the current tint with a marker on the
// facing side; the marker steps with the animation frame.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	ox, oy := cameraOffset(ecs)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		x, y := o.X+ox, o.Y+oy
		tint := components.Tint.Get(e)
		anim := components.Animation.Get(e)

		vector.FillRect(screen, float32(x), float32(y), float32(o.W), float32(o.H), tint.Color, false)

		frame := 0
		if anim.CurrentAnimation != nil {
			frame = anim.CurrentAnimation.Frame() % 4
		}
		eyeX := x
		if anim.FlipX {
			eyeX = x + o.W - 2
		}
		vector.FillRect(screen, float32(eyeX), float32(y+2+float64(frame)), 2, 2, cfg.Blue, false)
	})
}

func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	// color.RGBA is premultiplied
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
