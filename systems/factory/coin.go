package factory

import (
	"github.com/automoto/skyswing/archetypes"
	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/levelgen"
	"github.com/automoto/skyswing/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCoin(ecs *ecs.ECS, space *resolv.Space, spot levelgen.CoinSpot) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)
	object := resolv.NewObject(spot.X, spot.Y, spot.W, spot.H, tags.ResolvCoin)
	object.Data = coin
	components.Object.SetValue(coin, components.ObjectData{Object: object})
	space.Add(object)

	// The coin bobs using a *gween.Sequence; only the drawn position moves.
	bob := gween.NewSequence()
	bob.Add(
		gween.New(0, -cfg.Coin.BobHeight, cfg.Coin.BobDuration, ease.InOutSine),
		gween.New(-cfg.Coin.BobHeight, 0, cfg.Coin.BobDuration, ease.InOutSine),
	)
	components.Coin.SetValue(coin, components.CoinData{
		Platform: spot.Platform,
		Bob:      bob,
	})

	return coin
}
