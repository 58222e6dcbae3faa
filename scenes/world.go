package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/skyward/assets"
	"github.com/automoto/skyward/assets/animations"
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/systems"
	factory2 "github.com/automoto/skyward/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options selects what the platformer scene loads.
type Options struct {
	Level string
	// TuningPath is watched for changes when set.
	TuningPath string
	// Library overrides the built-in player clips.
	Library *animations.Library
}

type PlatformerScene struct {
	ecs     *ecs.ECS
	player  *donburi.Entry
	watcher *cfg.TuningWatcher
	tuning  string
}

// NewPlatformerScene builds the world, level and player. Any configuration
// problem, such as a missing player animation, is returned here so startup
// can abort.
func NewPlatformerScene(opts Options) (*PlatformerScene, error) {
	if opts.Level == "" {
		opts.Level = assets.DefaultLevel
	}
	lib := opts.Library
	if lib == nil {
		var err error
		if lib, err = factory2.NewPlayerAnimationLibrary(); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}

	ps := &PlatformerScene{ecs: newWorldECS(), tuning: opts.TuningPath}
	factory2.CreateFrame(ps.ecs, 1/float64(cfg.C.TPS))

	levelEntry, err := factory2.CreateLevel(ps.ecs, opts.Level)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	spawn := components.Level.Get(levelEntry).CurrentLevel.Spawn

	if ps.player, err = factory2.CreatePlayer(ps.ecs, spawn.X, spawn.Y, lib); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	factory2.CreateCamera(ps.ecs, spawn.X, spawn.Y)

	if opts.TuningPath != "" {
		w, err := cfg.NewTuningWatcher(opts.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file %s: %v", opts.TuningPath, err)
		} else {
			ps.watcher = w
		}
	}
	return ps, nil
}

func newWorldECS() *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebugToggle)

	// Gameplay systems freeze while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSimulation))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawTrails)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	return ecs
}

// Update runs one tick. It returns ebiten.Termination once quit is chosen
// from the pause menu.
func (ps *PlatformerScene) Update() error {
	ps.reloadTuning()
	ps.ecs.Update()
	if systems.GetOrCreatePause(ps.ecs).QuitRequested {
		return ebiten.Termination
	}
	return nil
}

// reloadTuning applies the tuning file once per debounced change.
func (ps *PlatformerScene) reloadTuning() {
	if ps.watcher == nil {
		return
	}
	select {
	case <-ps.watcher.Events:
		t, err := cfg.LoadTuning(ps.tuning)
		if err != nil {
			log.Printf("Warning: Could not reload tuning: %v", err)
			return
		}
		systems.ApplyTuning(ps.ecs, t)
		log.Printf("Reloaded tuning from %s", ps.tuning)
	case err := <-ps.watcher.Errors:
		log.Printf("Warning: Tuning watcher: %v", err)
	default:
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ps.ecs.Draw(screen)
}

// ECS exposes the scene's world.
func (ps *PlatformerScene) ECS() *ecs.ECS {
	return ps.ecs
}

// Player returns the player entry.
func (ps *PlatformerScene) Player() *donburi.Entry {
	return ps.player
}

// Close stops the tuning watcher.
func (ps *PlatformerScene) Close() error {
	if ps.watcher == nil {
		return nil
	}
	return ps.watcher.Close()
}
