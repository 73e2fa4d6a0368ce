package factory

import (
	"github.com/automoto/skyswing/archetypes"
	"github.com/automoto/skyswing/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// ReplaceSpace swaps the collision space for a fresh one of the given size
// and returns it. The old space and its objects are dropped.
func ReplaceSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		entry = CreateSpace(ecs, width, height, cellWidth, cellHeight)
		return components.Space.Get(entry)
	}
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(entry, spaceData)
	return spaceData
}
