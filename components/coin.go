package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CoinData struct {
	// Platform is the index of the rooftop the coin was generated above
	Platform int
	// Bob is the vertical draw offset sequence; it does not move the hit box
	Bob    *gween.Sequence
	Offset float64
}

var Coin = donburi.NewComponentType[CoinData]()
