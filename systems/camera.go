package systems

import (
	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/gamemath"
	"github.com/automoto/skyswing/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	x := components.Object.Get(playerEntry).CenterX()
	half := float64(cfg.C.Width) / 2

	switch getSession(e).Mode.Camera {
	case cfg.CameraRatchet:
		camera.X = gamemath.RatchetCamera(camera.X, x, half)
	default:
		camera.X = gamemath.FollowCamera(x, half)
	}
}
