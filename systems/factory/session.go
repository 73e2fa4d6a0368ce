package factory

import (
	"math/rand"

	"github.com/automoto/skyswing/archetypes"
	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/tags"
	"github.com/yohamta/donburi/ecs"
)

// StartSession creates any missing singletons and puts every piece of
// session state at its initial value: level 1, no coins, camera at 0 and
// the player at the start. The first start and every restart go through
// here.
func StartSession(ecs *ecs.ECS, mode cfg.ModeConfig, seed int64) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		sessionEntry = archetypes.Session.Spawn(ecs)
	}
	components.Session.SetValue(sessionEntry, components.SessionData{
		State: components.SessionPlaying,
		Mode:  mode,
		Seed:  seed,
	})
	components.GameOver.SetValue(sessionEntry, components.GameOverData{})

	if _, ok := components.Camera.First(ecs.World); !ok {
		CreateCamera(ecs)
	}
	if _, ok := components.Banner.First(ecs.World); !ok {
		CreateBanner(ecs)
	}
	if _, ok := tags.Player.First(ecs.World); !ok {
		CreatePlayer(ecs)
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		levelEntry = CreateLevel(ecs, seed)
	}
	components.Level.SetValue(levelEntry, components.LevelData{
		Number: 1,
		Rand:   rand.New(rand.NewSource(seed)),
	})

	BuildLevel(ecs, mode)
}
