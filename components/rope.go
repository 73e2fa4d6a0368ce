package components

import (
	"github.com/automoto/skyswing/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// RopeData is the grappling rope. Anchor is in world coordinates.
type RopeData struct {
	Active bool
	Anchor math.Vec2
	Length float64 // distance at attach time
}

// Attach fixes the rope to anchor, measuring its length from (x, y)
func (r *RopeData) Attach(anchor math.Vec2, x, y float64) {
	r.Active = true
	r.Anchor = anchor
	r.Length = gamemath.Distance(anchor.X-x, anchor.Y-y)
}

// Release clears the rope
func (r *RopeData) Release() {
	*r = RopeData{}
}

var Rope = donburi.NewComponentType[RopeData]()
