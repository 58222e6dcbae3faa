package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Trail  = donburi.NewTag().SetName("Trail")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	// ResolvSensor marks probe objects; they never block movement.
	ResolvSensor = "sensor"
)
