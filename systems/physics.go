package systems

import (
	"github.com/automoto/skyswing/components"
	"github.com/automoto/skyswing/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics moves every body by its velocity, keeps the player inside
// the right edge of the level and applies horizontal friction.
func UpdatePhysics(ecs *ecs.ECS) {
	bound := 0.0
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		bound = components.Level.Get(levelEntry).Bound
	}

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		// Velocity was updated first this frame; now position
		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY

		if limit := bound - obj.W/2; bound > 0 && obj.CenterX() > limit {
			obj.PlaceCenter(limit, obj.CenterY())
			physics.SpeedX = 0
		}

		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction)

		obj.Update()
	})
}
