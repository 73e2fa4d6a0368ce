package components

import (
	cfg "github.com/automoto/skyswing/config"
	"github.com/yohamta/donburi"
)

// SessionState is the top-level game state
type SessionState int

const (
	SessionPlaying SessionState = iota
	SessionGameOver
	SessionTerminated
)

func (s SessionState) String() string {
	switch s {
	case SessionPlaying:
		return "playing"
	case SessionGameOver:
		return "game over"
	case SessionTerminated:
		return "terminated"
	}
	return "unknown"
}

type SessionData struct {
	State SessionState
	Mode  cfg.ModeConfig
	Seed  int64
	// Frames counts simulated frames since the session started
	Frames int
}

var Session = donburi.NewComponentType[SessionData]()
