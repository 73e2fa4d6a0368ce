package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the fading "LEVEL N" text shown when a level starts
type BannerData struct {
	Text  string
	Fade  *gween.Tween
	Alpha float64
}

var Banner = donburi.NewComponentType[BannerData]()
