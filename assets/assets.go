package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is loaded when no level is named on the command line.
const DefaultLevel = "sandbox"

// Level holds the collision geometry and spawn point parsed from a TMX file.
// It has no rendering state so it loads headless in tests.
type Level struct {
	Name   string
	Width  int
	Height int
	Solids []SolidRect
	Spawn  PlayerSpawn
}

// SolidRect is a static collision rectangle in world space.
type SolidRect struct {
	X, Y, W, H float64
}

type PlayerSpawn struct {
	X float64
	Y float64
}

// LoadLevel loads the named level from the embedded levels directory.
func LoadLevel(name string) (*Level, error) {
	return LoadLevelFS(assetFS, path.Join("levels", name+".tmx"))
}

// LoadLevelFS parses a TMX file from fsys. Solids come from rectangle objects
// in the "Solids" object group and from every non-empty tile of the
// "wg-tiles" layer. The first object of "PlayerSpawn" is the spawn point.
func LoadLevelFS(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				level.Solids = append(level.Solids, SolidRect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "PlayerSpawn":
			if len(og.Objects) == 0 {
				continue
			}
			// Leftmost spawn wins when a level declares several
			objs := append([]*tiled.Object(nil), og.Objects...)
			sort.Slice(objs, func(i, j int) bool { return objs[i].X < objs[j].X })
			level.Spawn = PlayerSpawn{X: objs[0].X, Y: objs[0].Y}
			spawnFound = true
		}
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "wg-tiles" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.Solids = append(level.Solids, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	if !spawnFound {
		return nil, fmt.Errorf("level %s: no PlayerSpawn object", tmxPath)
	}
	if len(level.Solids) == 0 {
		return nil, fmt.Errorf("level %s: no solid geometry", tmxPath)
	}
	return level, nil
}

// LevelNames lists the embedded levels by stem name, sorted.
func LevelNames() ([]string, error) {
	matches, err := fs.Glob(assetFS, "levels/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob levels: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}
