package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the collision space for the active level. It is replaced with
// the level.
var Space = donburi.NewComponentType[resolv.Space]()
