package factory

import (
	"github.com/automoto/skyward/archetypes"
	"github.com/automoto/skyward/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the collision space. Solids, the player collider and the
// ground probe all live in this one space; objects outside its bounds are not
// found by Check.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)
	components.Space.Set(entry, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return entry
}
