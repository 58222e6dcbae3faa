package factory

import (
	"github.com/automoto/skyward/archetypes"
	"github.com/automoto/skyward/components"
	"github.com/automoto/skyward/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall spawns a static solid rectangle. It is what the ground ray and
// body movement collide with.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	entry := archetypes.Wall.Spawn(ecs)

	solid := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	solid.SetShape(resolv.NewRectangle(0, 0, w, h))
	solid.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: solid})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(solid)
	}
	return entry
}
