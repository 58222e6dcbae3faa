package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world point drawn at the center of the screen.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset toward the facing
}

// Offset returns the translation from world to screen space for a screen of
// the given size.
func (c *CameraData) Offset(width, height int) (float64, float64) {
	return float64(width)/2 - c.Position.X, float64(height)/2 - c.Position.Y
}

var Camera = donburi.NewComponentType[CameraData]()
