package systems

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the tick counter and sets the fixed delta from the TPS.
func UpdateClock(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)
	clock.Delta = 1 / float64(cfg.C.TPS)
	clock.Ticks++
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// deltaTime returns the seconds covered by the current tick.
func deltaTime(ecs *ecs.ECS) float64 {
	if entry, ok := components.Clock.First(ecs.World); ok {
		if d := components.Clock.Get(entry).Delta; d > 0 {
			return d
		}
	}
	return 1 / float64(cfg.C.TPS)
}
