package gamemath

import "math"

// ApplyFriction scales horizontal speed by a friction multiplier.
func ApplyFriction(speedX, friction float64) float64 {
	return speedX * friction
}

// Steer returns the horizontal acceleration for the held direction keys.
// Holding both directions (or neither) does nothing.
func Steer(left, right bool, accel float64) float64 {
	switch {
	case left && !right:
		return -accel
	case right && !left:
		return accel
	}
	return 0
}

// Distance returns the length of the vector (dx, dy).
func Distance(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// RopeCorrection moves (px, py) along the rope so that its distance to the
// anchor (ax, ay) becomes length. A player sitting on the anchor is left alone.
func RopeCorrection(px, py, ax, ay, length float64) (x, y float64) {
	dx := ax - px
	dy := ay - py
	dist := Distance(dx, dy)
	if dist == 0 {
		return px, py
	}
	diff := (dist - length) / dist
	return px + dx*diff, py + dy*diff
}

// SwingImpulse returns a push of magnitude force perpendicular to the rope
// direction (dx, dy), rotated a quarter turn clockwise in screen space.
func SwingImpulse(dx, dy, force float64) (ix, iy float64) {
	if dx == 0 && dy == 0 {
		return 0, 0
	}
	angle := math.Atan2(dy, dx) + math.Pi/2
	return math.Cos(angle) * force, math.Sin(angle) * force
}

// PullImpulse returns a constant-magnitude push along (dx, dy) once the
// distance exceeds threshold.
func PullImpulse(dx, dy, strength, threshold float64) (ix, iy float64) {
	dist := Distance(dx, dy)
	if dist <= threshold || dist == 0 {
		return 0, 0
	}
	return dx / dist * strength, dy / dist * strength
}
