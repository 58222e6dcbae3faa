package factory

import (
	"github.com/automoto/skyward/archetypes"
	"github.com/automoto/skyward/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFrame spawns the per-tick singletons: clock, polled input and the
// animation event queue.
func CreateFrame(ecs *ecs.ECS, delta float64) *donburi.Entry {
	frame := archetypes.Frame.Spawn(ecs)
	components.Clock.SetValue(frame, components.ClockData{Delta: delta})
	return frame
}
