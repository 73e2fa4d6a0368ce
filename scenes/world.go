package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/systems"
	"github.com/automoto/skyswing/systems/factory"
	"github.com/automoto/skyswing/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SwingScene runs one play session: the whole game state lives in its world.
type SwingScene struct {
	ecs      *ecs.ECS
	mode     cfg.ModeConfig
	seed     int64
	watcher  *cfg.TuningWatcher
	gameOver *ui.GameOverUI
	once     sync.Once
}

// NewSwingScene creates a scene for mode. A nil watcher disables tuning
// reloads.
func NewSwingScene(mode cfg.ModeConfig, seed int64, watcher *cfg.TuningWatcher) *SwingScene {
	return &SwingScene{mode: mode, seed: seed, watcher: watcher}
}

// Update advances one frame. It returns ebiten.Termination once the player
// quits.
func (ss *SwingScene) Update() error {
	ss.once.Do(ss.configure)
	ss.drainTuning()

	if ss.sessionState() == components.SessionGameOver {
		ss.gameOver.Update()
	}
	ss.ecs.Update()

	if systems.IsTerminated(ss.ecs) {
		if ss.watcher != nil {
			_ = ss.watcher.Close()
		}
		return ebiten.Termination
	}
	return nil
}

func (ss *SwingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)

	if ss.sessionState() == components.SessionGameOver {
		ss.gameOver.Draw(screen)
	}
}

func (ss *SwingScene) configure() {
	ss.ecs = NewSwingECS(donburi.NewWorld())
	factory.StartSession(ss.ecs, ss.mode, ss.seed)

	ss.gameOver = ui.NewGameOverUI(
		func() { systems.ChooseGameOver(ss.ecs, components.GameOverRestart) },
		func() { systems.ChooseGameOver(ss.ecs, components.GameOverQuit) },
	)

	log.Printf("mode %s, seed %d", ss.mode.Name, ss.seed)
}

// NewSwingECS registers the frame's systems and the renderer on world.
func NewSwingECS(world donburi.World) *ecs.ECS {
	e := ecs.NewECS(world)

	e.AddSystem(systems.UpdateInput)
	for _, system := range systems.FrameSystems() {
		e.AddSystem(system)
	}

	e.AddRenderer(cfg.Default, systems.DrawScreen)
	return e
}

// drainTuning applies a changed tuning file between frames. The new values
// reach the world at the next level start or restart.
func (ss *SwingScene) drainTuning() {
	if ss.watcher == nil {
		return
	}
	if path, ok := ss.watcher.Poll(); ok {
		if err := cfg.LoadTuning(path); err != nil {
			log.Printf("Warning: tuning reload failed: %v", err)
		} else {
			log.Printf("tuning reloaded from %s", path)
		}
	}
	select {
	case err := <-ss.watcher.Errors:
		log.Printf("Warning: tuning watcher: %v", err)
	default:
	}
}

func (ss *SwingScene) sessionState() components.SessionState {
	entry, ok := components.Session.First(ss.ecs.World)
	if !ok {
		return components.SessionPlaying
	}
	return components.Session.Get(entry).State
}
