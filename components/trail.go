package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// TrailData is one fading silhouette left behind by a dash.
type TrailData struct {
	Position Vector
	Facing   Facing
	Color    color.RGBA
	Alpha    float64
}

var Trail = donburi.NewComponentType[TrailData]()
