package assets

import (
	"testing"
	"testing/fstest"
)

func TestLoadLevelSandbox(t *testing.T) {
	level, err := LoadLevel(DefaultLevel)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Name != "sandbox" {
		t.Errorf("Name = %q, want sandbox", level.Name)
	}
	if level.Width != 640 || level.Height != 368 {
		t.Errorf("size = %dx%d, want 640x368", level.Width, level.Height)
	}
	if len(level.Solids) != 7 {
		t.Errorf("solids = %d, want 7", len(level.Solids))
	}
	if level.Spawn.X != 48 || level.Spawn.Y != 304 {
		t.Errorf("spawn = %+v, want (48,304)", level.Spawn)
	}
}

func TestLoadLevelRunway(t *testing.T) {
	level, err := LoadLevel("runway")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Width != 1600 || level.Height != 480 {
		t.Errorf("size = %dx%d, want 1600x480", level.Width, level.Height)
	}
	if len(level.Solids) != 11 {
		t.Errorf("solids = %d, want 11", len(level.Solids))
	}
	if level.Spawn.X != 48 || level.Spawn.Y != 448 {
		t.Errorf("spawn = %+v, want (48,448)", level.Spawn)
	}
}

func TestLevelNames(t *testing.T) {
	names, err := LevelNames()
	if err != nil {
		t.Fatalf("LevelNames: %v", err)
	}
	found := false
	for _, n := range names {
		if n == DefaultLevel {
			found = true
		}
	}
	if !found {
		t.Errorf("LevelNames() = %v, missing %q", names, DefaultLevel)
	}
}

func TestLoadLevelFSErrors(t *testing.T) {
	const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
`
	tests := []struct {
		name string
		body string
	}{
		{
			name: "no spawn",
			body: header + ` <objectgroup id="1" name="Solids">
  <object id="1" x="0" y="48" width="64" height="16"/>
 </objectgroup>
</map>`,
		},
		{
			name: "no solids",
			body: header + ` <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="8" y="8"><point/></object>
 </objectgroup>
</map>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"levels/broken.tmx": {Data: []byte(tt.body)}}
			if _, err := LoadLevelFS(fsys, "levels/broken.tmx"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	if _, err := LoadLevel("does_not_exist"); err == nil {
		t.Fatal("expected error for missing level")
	}
}
