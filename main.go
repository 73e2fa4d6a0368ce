package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/skyswing/assets"
	"github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/fonts"
	"github.com/automoto/skyswing/scenes"
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

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
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
	modeName := flag.String("mode", config.Debug.ModeName, "gameplay mode: classic or pull")
	seed := flag.Int64("seed", 0, "level generator seed (0 = time based)")
	tuningPath := flag.String("tuning", "", "YAML file overriding physics and generator tuning")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	debug := flag.Bool("debug", false, "log state changes and draw hit boxes")
	flag.Parse()

	config.Debug.Enabled = *debug
	config.Debug.ModeName = *modeName
	config.Debug.Seed = *seed
	if config.Debug.Seed == 0 {
		config.Debug.Seed = time.Now().UnixNano()
	}

	mode, err := config.LookupMode(config.Debug.ModeName)
	if err != nil {
		log.Fatalf("Invalid -mode: %v", err)
	}

	var watcher *config.TuningWatcher
	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		if *watch {
			watcher, err = config.WatchTuning(*tuningPath)
			if err != nil {
				log.Printf("Warning: Could not watch %s: %v", *tuningPath, err)
			}
		}
	}

	if err := assets.Load(); err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Sky Swing")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowClosingHandled(true)

	game := NewGame(scenes.NewSwingScene(mode, config.Debug.Seed, watcher))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
