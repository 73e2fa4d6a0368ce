package systems

import (
	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func frameDelta() float32 {
	return 1 / float32(cfg.C.TPS)
}

// UpdateCoinBob advances the bob sequence of every coin, looping forever
func UpdateCoinBob(e *ecs.ECS) {
	dt := frameDelta()
	components.Coin.Each(e.World, func(entry *donburi.Entry) {
		coin := components.Coin.Get(entry)
		if coin.Bob == nil {
			return
		}
		offset, _, done := coin.Bob.Update(dt)
		coin.Offset = float64(offset)
		if done {
			coin.Bob.Reset()
		}
	})
}

// UpdateBanner fades the level banner out
func UpdateBanner(e *ecs.ECS) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Fade == nil {
		return
	}
	alpha, finished := banner.Fade.Update(frameDelta())
	banner.Alpha = float64(alpha)
	if finished {
		banner.Fade = nil
		banner.Alpha = 0
	}
}
