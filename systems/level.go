package systems

import (
	"log"

	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/systems/factory"
	"github.com/automoto/skyswing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevel advances to a new level once every coin is collected or the
// player reaches the right edge.
func UpdateLevel(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)

	coinsLeft := countCoins(e)
	if coinsLeft > 0 && obj.CenterX() < level.Bound-obj.W/2 {
		return
	}

	AdvanceLevel(e)
}

func countCoins(e *ecs.ECS) int {
	n := 0
	tags.Coin.Each(e.World, func(*donburi.Entry) {
		n++
	})
	return n
}

// AdvanceLevel regenerates the world for the next level number. The
// camera and the player go back to the start.
func AdvanceLevel(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	session := getSession(e)

	if cfg.Debug.Enabled {
		log.Printf("level %d complete: %d/%d coins", level.Number, level.CoinsCollected, level.TotalCoins)
	}

	level.Number++
	if session.Mode.Counter == cfg.CounterPerLevel {
		level.CoinsCollected = 0
	}

	factory.BuildLevel(e, session.Mode)
}
