package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// BodyData is the player's rigid body: velocity persists across ticks and is
// integrated after the player core has run.
type BodyData struct {
	Velocity     Vector // px/s, y-down
	GravityScale float64
	OnCeiling    bool
}

var Body = donburi.NewComponentType[BodyData]()

var Space = donburi.NewComponentType[resolv.Space]()
