package components

import (
	"github.com/automoto/skyswing/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv object that carries an entity's hit box.
// X and Y are the top-left corner.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the hit box as a plain rectangle
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

func (o *ObjectData) CenterX() float64 { return o.X + o.W/2 }
func (o *ObjectData) CenterY() float64 { return o.Y + o.H/2 }

// PlaceCenter moves the hit box so its centre is at (x, y)
func (o *ObjectData) PlaceCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
