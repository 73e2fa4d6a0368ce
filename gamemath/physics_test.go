package gamemath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestSteer(t *testing.T) {
	cases := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{"none", false, false, 0},
		{"left", true, false, -0.5},
		{"right", false, true, 0.5},
		{"both", true, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Steer(c.left, c.right, 0.5); got != c.want {
				t.Fatalf("Steer(%v, %v) = %v, want %v", c.left, c.right, got, c.want)
			}
		})
	}
}

func TestApplyFrictionDecays(t *testing.T) {
	speed := 10.0
	for i := 0; i < 5; i++ {
		next := ApplyFriction(speed, 0.98)
		if math.Abs(next) >= math.Abs(speed) {
			t.Fatalf("frame %d: speed did not decay (%v -> %v)", i, speed, next)
		}
		speed = next
	}
}

func TestRopeCorrection(t *testing.T) {
	cases := []struct {
		name     string
		px, py   float64
		length   float64
		wantDist float64
	}{
		{"at_rest_length", 0, 100, 100, 100},
		{"stretched", 0, 150, 100, 100},
		{"slack", 0, 40, 100, 100},
		{"diagonal", 30, 40, 25, 25},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := RopeCorrection(c.px, c.py, 0, 0, c.length)
			if d := Distance(x, y); math.Abs(d-c.wantDist) > eps {
				t.Fatalf("distance after correction = %v, want %v", d, c.wantDist)
			}
		})
	}
}

func TestRopeCorrectionAtRestLengthIsNoop(t *testing.T) {
	// Anchor 100px straight up, rope length measured at attach time.
	x, y := RopeCorrection(200, 300, 200, 200, 100)
	if math.Abs(x-200) > eps || math.Abs(y-300) > eps {
		t.Fatalf("correction moved the player to (%v, %v)", x, y)
	}
}

func TestRopeCorrectionOnAnchor(t *testing.T) {
	x, y := RopeCorrection(5, 5, 5, 5, 100)
	if x != 5 || y != 5 {
		t.Fatalf("player on the anchor moved to (%v, %v)", x, y)
	}
}

func TestSwingImpulseIsPerpendicular(t *testing.T) {
	dirs := [][2]float64{{0, -100}, {100, 0}, {-30, -40}, {3, 4}}
	for _, d := range dirs {
		ix, iy := SwingImpulse(d[0], d[1], 0.1)
		if dot := ix*d[0] + iy*d[1]; math.Abs(dot) > 1e-6 {
			t.Fatalf("impulse (%v, %v) not perpendicular to %v (dot %v)", ix, iy, d, dot)
		}
		if mag := Distance(ix, iy); math.Abs(mag-0.1) > eps {
			t.Fatalf("impulse magnitude = %v, want 0.1", mag)
		}
	}
}

func TestSwingImpulseDirection(t *testing.T) {
	// Anchor straight above: the swing pushes towards positive x.
	ix, iy := SwingImpulse(0, -100, 0.1)
	if math.Abs(ix-0.1) > eps || math.Abs(iy) > eps {
		t.Fatalf("SwingImpulse(0, -100) = (%v, %v), want (0.1, 0)", ix, iy)
	}
}

func TestPullImpulse(t *testing.T) {
	cases := []struct {
		name       string
		dx, dy     float64
		wantX      float64
		wantY      float64
		wantLength float64
	}{
		{"inside_threshold", 3, 0, 0, 0, 0},
		{"on_threshold", 5, 0, 0, 0, 0},
		{"far_right", 500, 0, 0.8, 0, 0.8},
		{"near_up", 0, -6, 0, -0.8, 0.8},
		{"diagonal", 300, 400, 0.48, 0.64, 0.8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ix, iy := PullImpulse(c.dx, c.dy, 0.8, 5)
			if math.Abs(ix-c.wantX) > eps || math.Abs(iy-c.wantY) > eps {
				t.Fatalf("PullImpulse = (%v, %v), want (%v, %v)", ix, iy, c.wantX, c.wantY)
			}
			if l := Distance(ix, iy); math.Abs(l-c.wantLength) > eps {
				t.Fatalf("magnitude = %v, want %v", l, c.wantLength)
			}
		})
	}
}
