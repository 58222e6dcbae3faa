package components

import (
	"github.com/yohamta/donburi"
)

// Facing is the horizontal direction the player looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

type PlayerData struct {
	Speed    float64
	Grounded bool // Written only by the ground sensor

	JumpForce     float64
	MaxJumpHeight float64

	DashSpeed     float64
	DashMaxTime   float64
	DashResetTime float64

	Facing Facing
}

var Player = donburi.NewComponentType[PlayerData]()
