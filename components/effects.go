package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TintData colours the player sprite. While Recovery is set the tint is
// blending back to white; Recovery drives the blend factor from 0 to 1.
type TintData struct {
	Color    color.RGBA
	From     color.RGBA
	Recovery *gween.Tween
}

var Tint = donburi.NewComponentType[TintData]()
