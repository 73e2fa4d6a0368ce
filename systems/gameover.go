package systems

import (
	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameOver waits for the restart or quit decision while the session
// is over. Nothing else is simulated in the meantime.
func UpdateGameOver(e *ecs.ECS) {
	session := getSession(e)
	if session == nil || session.State != components.SessionGameOver {
		return
	}

	gameOver := GetOrCreateGameOver(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionRestart).JustPressed {
		gameOver.Decision = components.GameOverRestart
	}

	switch gameOver.Decision {
	case components.GameOverRestart:
		RestartSession(e)
	case components.GameOverQuit:
		setSessionState(session, components.SessionTerminated)
	}
}

// RestartSession puts the whole session back to its initial values
func RestartSession(e *ecs.ECS) {
	session := getSession(e)
	factory.StartSession(e, session.Mode, session.Seed)
}

// ChooseGameOver records a decision made on the game over screen. It is
// ignored unless the session is over.
func ChooseGameOver(e *ecs.ECS, option components.GameOverOption) {
	if session := getSession(e); session == nil || session.State != components.SessionGameOver {
		return
	}
	GetOrCreateGameOver(e).Decision = option
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
