package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/skyswing/archetypes"
	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/levelgen"
	"github.com/automoto/skyswing/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, seed int64) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Number: 1,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	return level
}

func CreateBanner(ecs *ecs.ECS) *donburi.Entry {
	banner := archetypes.Banner.Spawn(ecs)
	components.Banner.Set(banner, &components.BannerData{})
	return banner
}

// BuildLevel replaces every rooftop and coin with a freshly generated
// layout for the current level number and puts the player at the start.
func BuildLevel(ecs *ecs.ECS, mode cfg.ModeConfig) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	clearLevel(ecs)

	layout := levelgen.Generate(level.Rand, levelgen.ParamsFor(mode))
	level.Bound = layout.Bound
	level.TotalCoins = len(layout.Coins)

	space := ReplaceSpace(ecs,
		int(layout.Bound)+cfg.C.Width,
		cfg.C.Height*2,
		cfg.World.CellSize, cfg.World.CellSize,
	)

	for _, r := range layout.Platforms {
		CreatePlatform(ecs, space, r)
	}
	for _, spot := range layout.Coins {
		CreateCoin(ecs, space, spot)
	}

	if player, ok := tags.Player.First(ecs.World); ok {
		space.Add(components.Object.Get(player).Object)
		ResetPlayer(player)
	}

	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		components.Camera.Get(cameraEntry).X = 0
	}

	showBanner(ecs, fmt.Sprintf("LEVEL %d", level.Number))
}

// clearLevel removes the rooftops and coins of the previous level
func clearLevel(ecs *ecs.ECS) {
	var stale []*donburi.Entry
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e)
	})
	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e)
	})
	for _, e := range stale {
		ecs.World.Remove(e.Entity())
	}
}

func showBanner(ecs *ecs.ECS, text string) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	banner.Text = text
	banner.Alpha = 1
	banner.Fade = gween.New(1, 0, cfg.Banner.Duration, ease.InQuad)
}
