package systems

import (
	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths ends the run once the player's centre drops below the
// bottom of the screen.
func UpdateDeaths(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	if obj.CenterY() <= float64(cfg.C.Height) {
		return
	}

	session := getSession(e)
	components.Rope.Get(playerEntry).Release()
	setSessionState(session, components.SessionGameOver)
}
