package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Grounded is set by the collision pass when the player rests on a
	// rooftop. Steering reads the value left by the previous frame.
	Grounded bool
}

var Player = donburi.NewComponentType[PlayerData]()
