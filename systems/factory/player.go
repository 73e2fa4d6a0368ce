package factory

import (
	"github.com/automoto/skyswing/archetypes"
	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.HitboxSize
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	ResetPlayer(player)
	return player
}

// ResetPlayer puts the player back at the level start with no speed and
// no rope attached.
func ResetPlayer(player *donburi.Entry) {
	obj := components.Object.Get(player)
	obj.PlaceCenter(cfg.Player.StartX, cfg.Player.StartY)
	if obj.Space != nil {
		obj.Update()
	}

	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:   cfg.Physics.Gravity,
		MoveSpeed: cfg.Physics.MoveSpeed,
		Friction:  cfg.Physics.Friction,
	})
	components.Player.SetValue(player, components.PlayerData{})
	components.Rope.SetValue(player, components.RopeData{})
}
