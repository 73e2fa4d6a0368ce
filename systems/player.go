package systems

import (
	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/gamemath"
	"github.com/automoto/skyswing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies steering and gravity to the player's velocity.
func UpdatePlayer(e *ecs.ECS) {
	session := getSession(e)
	input := getOrCreateInput(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		physics := components.Physics.Get(entry)

		// Grounded still holds last frame's collision result here
		if !session.Mode.GroundedSteering || player.Grounded {
			physics.SpeedX += gamemath.Steer(
				input.Current[cfg.ActionMoveLeft],
				input.Current[cfg.ActionMoveRight],
				physics.MoveSpeed,
			)
		}

		// No terminal velocity
		physics.SpeedY += physics.Gravity
	})
}
