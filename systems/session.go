package systems

import (
	"log"

	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession handles the quit request and counts frames. It runs in
// every state.
func UpdateSession(e *ecs.ECS) {
	session := getSession(e)
	if session == nil || session.State == components.SessionTerminated {
		return
	}

	input := getOrCreateInput(e)
	if input.CloseRequested || GetAction(input, cfg.ActionQuit).JustPressed {
		setSessionState(session, components.SessionTerminated)
		return
	}

	if session.State == components.SessionPlaying {
		session.Frames++
	}
}

// WhilePlaying wraps a system to skip execution outside the Playing state.
func WhilePlaying(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if session := getSession(e); session == nil || session.State != components.SessionPlaying {
			return
		}
		system(e)
	}
}

// IsTerminated reports whether the player chose to quit
func IsTerminated(e *ecs.ECS) bool {
	session := getSession(e)
	return session != nil && session.State == components.SessionTerminated
}

func getSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

func setSessionState(session *components.SessionData, state components.SessionState) {
	if session.State == state {
		return
	}
	if cfg.Debug.Enabled {
		log.Printf("session: %s -> %s after %d frames", session.State, state, session.Frames)
	}
	session.State = state
}
