package factory

import (
	"github.com/automoto/skyswing/archetypes"
	"github.com/automoto/skyswing/components"
	"github.com/automoto/skyswing/gamemath"
	"github.com/automoto/skyswing/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, space *resolv.Space, r gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	object := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvPlatform)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	space.Add(object)

	return platform
}
