package factory

import (
	"github.com/automoto/skyward/archetypes"
	"github.com/automoto/skyward/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTrail spawns a dash trail. Trails live in no collision space.
func CreateTrail(ecs *ecs.ECS, data components.TrailData) *donburi.Entry {
	trail := archetypes.Trail.Spawn(ecs)
	components.Trail.SetValue(trail, data)
	return trail
}
