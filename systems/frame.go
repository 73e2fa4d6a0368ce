package systems

import "github.com/yohamta/donburi/ecs"

// FrameSystems returns the per-frame systems that run after UpdateInput, in
// order: session control, physics step, collision, then camera and level
// control. Simulation systems are skipped while the session is over.
func FrameSystems() []ecs.System {
	return []ecs.System{
		UpdateSession,
		UpdateGameOver,

		WhilePlaying(UpdatePlayer),
		WhilePlaying(UpdateRope),
		WhilePlaying(UpdatePhysics),
		WhilePlaying(UpdateDeaths),
		WhilePlaying(UpdateCollisions),
		WhilePlaying(UpdateCamera),
		WhilePlaying(UpdateLevel),
		WhilePlaying(UpdateCoinBob),
		WhilePlaying(UpdateBanner),
	}
}
