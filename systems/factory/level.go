package factory

import (
	"github.com/automoto/skyward/archetypes"
	"github.com/automoto/skyward/assets"
	"github.com/automoto/skyward/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// levelCellSize is the resolv cell edge used for level spaces.
const levelCellSize = 16

// CreateLevel loads the named level and spawns its space and solids.
func CreateLevel(ecs *ecs.ECS, name string) (*donburi.Entry, error) {
	lvl, err := assets.LoadLevel(name)
	if err != nil {
		return nil, err
	}
	return SpawnLevel(ecs, lvl), nil
}

// SpawnLevel creates the collision space for lvl and a wall per solid.
func SpawnLevel(ecs *ecs.ECS, lvl *assets.Level) *donburi.Entry {
	if _, ok := components.Space.First(ecs.World); !ok {
		CreateSpace(ecs, lvl.Width, lvl.Height, levelCellSize, levelCellSize)
	}
	for _, s := range lvl.Solids {
		CreateWall(ecs, s.X, s.Y, s.W, s.H)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{CurrentLevel: lvl})
	return level
}
