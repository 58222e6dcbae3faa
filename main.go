package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/skyward/assets"
	"github.com/automoto/skyward/config"
	"github.com/automoto/skyward/fonts"
	"github.com/automoto/skyward/scenes"
	"github.com/automoto/skyward/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding player tuning, reloaded on change")
	level := flag.String("level", assets.DefaultLevel, "embedded level to load")
	debug := flag.Bool("debug", false, "draw collision boxes and the ground probe")
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}
	if *debug {
		config.Debug.DrawProbe = true
	}

	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply(&config.Player, &config.Input)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	scene, err := scenes.NewPlatformerScene(scenes.Options{Level: *level, TuningPath: *tuningPath})
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := runScene(scene, ebiten.RunGame); err != nil {
		log.Fatal(err)
	}
}

// ClosableScene is a scene holding resources that outlive the game loop.
type ClosableScene interface {
	Scene
	Close() error
}

// runScene runs the game loop and closes the scene before returning, so the
// scene is released even when the caller exits on the error.
func runScene(scene ClosableScene, run func(ebiten.Game) error) error {
	err := run(&Game{scene: scene})
	if cerr := scene.Close(); cerr != nil {
		log.Printf("Warning: Could not close scene: %v", cerr)
	}
	return err
}
