package components

import "github.com/yohamta/donburi"

// ClockData holds the simulation delta for the current tick.
type ClockData struct {
	Delta float64 // seconds
	Ticks int
}

var Clock = donburi.NewComponentType[ClockData]()
