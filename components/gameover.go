package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over decisions
type GameOverOption int

const (
	GameOverUndecided GameOverOption = iota
	GameOverRestart
	GameOverQuit
)

// GameOverData holds the decision made on the game over screen. Buttons
// write it; UpdateGameOver consumes it.
type GameOverData struct {
	Decision GameOverOption
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
