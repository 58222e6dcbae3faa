package factory

import (
	"testing"

	"github.com/automoto/skyward/components"
	"github.com/automoto/skyward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func TestCreateLevel(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())

	entry, err := CreateLevel(w, "sandbox")
	if err != nil {
		t.Fatalf("CreateLevel: %v", err)
	}
	lvl := components.Level.Get(entry).CurrentLevel
	if lvl == nil || lvl.Name != "sandbox" {
		t.Fatalf("level = %+v, want sandbox", lvl)
	}

	walls := donburi.NewQuery(filter.Contains(tags.Wall)).Count(w.World)
	if walls != len(lvl.Solids) {
		t.Errorf("walls = %d, want %d", walls, len(lvl.Solids))
	}
	spaceEntry, ok := components.Space.First(w.World)
	if !ok {
		t.Fatal("no space created")
	}
	if got := len(components.Space.Get(spaceEntry).Objects()); got != walls {
		t.Errorf("space holds %d objects, want %d", got, walls)
	}
}

func TestCreateLevelUnknown(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	if _, err := CreateLevel(w, "nowhere"); err == nil {
		t.Fatal("CreateLevel succeeded for a missing level")
	}
}
