package systems

import (
	"testing"

	cfg "github.com/automoto/skyswing/config"
)

func TestCameraFollowsPlayer(t *testing.T) {
	cases := []struct {
		name    string
		mode    string
		path    []float64 // player centre x per frame
		wantCam []float64
	}{
		{"follow_left_of_midpoint", cfg.ModeClassic, []float64{-300, 0, 399}, []float64{0, 0, 0}},
		{"follow_both_ways", cfg.ModeClassic, []float64{900, 1500, 1000}, []float64{500, 1100, 600}},
		{"ratchet_never_back", cfg.ModePull, []float64{900, 1500, 1000, -50}, []float64{500, 1100, 1100, 1100}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newSession(t, c.mode)
			camera := cameraData(t, e)
			for i, x := range c.path {
				obj := playerObject(t, e)
				obj.PlaceCenter(x, 300)

				UpdateCamera(e)

				if camera.X < 0 {
					t.Fatalf("step %d: camera %v is negative", i, camera.X)
				}
				if camera.X != c.wantCam[i] {
					t.Fatalf("step %d: camera = %v, want %v", i, camera.X, c.wantCam[i])
				}
			}
		})
	}
}

func TestCameraStartsAtZero(t *testing.T) {
	for _, mode := range cfg.ModeNames() {
		e := newSession(t, mode)
		if x := cameraData(t, e).X; x != 0 {
			t.Fatalf("%s: camera starts at %v", mode, x)
		}
	}
}
