package components

import (
	"github.com/yohamta/donburi"
)

// CameraData is the horizontal scroll offset. X is never negative.
type CameraData struct {
	X float64
}

var Camera = donburi.NewComponentType[CameraData]()
