package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

type LevelData struct {
	Number int
	// Bound is the right edge of the level in world pixels
	Bound float64

	CoinsCollected int
	TotalCoins     int

	Rand *rand.Rand
}

var Level = donburi.NewComponentType[LevelData]()
