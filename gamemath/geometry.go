package gamemath

import "math"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether r and o share any area. Rectangles that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// FollowCamera centres the camera on x without scrolling past the level start.
func FollowCamera(x, halfWidth float64) float64 {
	return math.Max(0, x-halfWidth)
}

// RatchetCamera follows x to the right only.
func RatchetCamera(current, x, halfWidth float64) float64 {
	return math.Max(current, FollowCamera(x, halfWidth))
}
