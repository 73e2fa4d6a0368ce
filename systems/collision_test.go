package systems

import (
	"testing"

	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/gamemath"
)

var farCoin = []gamemath.Rect{{X: 2500, Y: 50, W: 15, H: 15}}

func TestOverlapSnapsOnTop(t *testing.T) {
	cases := []struct {
		name    string
		top     float64
		overlap float64
	}{
		{"half_pixel", 450, 0.5},
		{"one_pixel", 450, 1},
		{"half_pixel_on_cell_edge", 448, 0.5},
		{"one_pixel_on_cell_edge", 448, 1},
		{"deep", 500, 12},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newSession(t, cfg.ModeClassic)
			setLayout(t, e, 3000,
				[]gamemath.Rect{{X: 100, Y: c.top, W: 200, H: 600 - c.top}},
				farCoin,
			)
			placePlayer(t, e, 150, c.top-30+c.overlap)
			physics := playerPhysics(t, e)
			physics.SpeedY = 4

			UpdateCollisions(e)

			obj := playerObject(t, e)
			if got, want := obj.CenterY(), c.top-15; got != want {
				t.Fatalf("centre y = %v, want %v", got, want)
			}
			if physics.SpeedY != 0 {
				t.Fatalf("SpeedY = %v, want 0", physics.SpeedY)
			}
			if !components.Player.Get(playerEntry(t, e)).Grounded {
				t.Fatal("player not grounded")
			}
		})
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	e := newSession(t, cfg.ModeClassic)
	setLayout(t, e, 3000,
		[]gamemath.Rect{{X: 100, Y: 450, W: 200, H: 150}},
		farCoin,
	)
	// Bottom edge exactly on the rooftop
	placePlayer(t, e, 150, 420)
	physics := playerPhysics(t, e)
	physics.SpeedY = 3

	UpdateCollisions(e)

	if physics.SpeedY != 3 {
		t.Fatalf("SpeedY = %v, want it untouched", physics.SpeedY)
	}
	if components.Player.Get(playerEntry(t, e)).Grounded {
		t.Fatal("grounded by a touching edge")
	}
}

func TestNoHorizontalResponse(t *testing.T) {
	e := newSession(t, cfg.ModeClassic)
	setLayout(t, e, 3000,
		[]gamemath.Rect{{X: 100, Y: 450, W: 200, H: 150}},
		farCoin,
	)
	// Deep inside the side wall of the rooftop
	placePlayer(t, e, 90, 520)
	physics := playerPhysics(t, e)
	physics.SpeedX = 5

	UpdateCollisions(e)

	obj := playerObject(t, e)
	if obj.X != 90 || physics.SpeedX != 5 {
		t.Fatalf("horizontal state changed: x=%v speed=%v", obj.X, physics.SpeedX)
	}
	if obj.Y != 420 {
		t.Fatalf("y = %v, want 420 (snapped on top)", obj.Y)
	}
}

func TestSupportPolicies(t *testing.T) {
	// Two rooftops under the player: the left one is higher
	platforms := []gamemath.Rect{
		{X: 0, Y: 440, W: 100, H: 160},
		{X: 110, Y: 450, W: 100, H: 150},
	}

	cases := []struct {
		name   string
		policy cfg.SupportPolicyID
		wantY  float64
	}{
		{"highest_surface", cfg.SupportFirst, 410},
		{"compound_last_wins", cfg.SupportCompound, 420},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newSession(t, cfg.ModeClassic)
			sessionData(t, e).Mode.Support = c.policy
			setLayout(t, e, 3000, platforms, farCoin)
			placePlayer(t, e, 90, 426)

			UpdateCollisions(e)

			if got := playerObject(t, e).Y; got != c.wantY {
				t.Fatalf("y = %v, want %v", got, c.wantY)
			}
		})
	}
}

func TestCoinCollectionIsIdempotent(t *testing.T) {
	e := newSession(t, cfg.ModeClassic)
	setLayout(t, e, 3000, nil, []gamemath.Rect{
		{X: 205, Y: 105, W: 15, H: 15},
		{X: 1500, Y: 105, W: 15, H: 15},
	})
	placePlayer(t, e, 200, 100)

	UpdateCollisions(e)
	level := levelData(t, e)
	if level.CoinsCollected != 1 {
		t.Fatalf("collected %d coins, want 1", level.CoinsCollected)
	}
	if n := countCoins(e); n != 1 {
		t.Fatalf("%d coins left, want 1", n)
	}

	UpdateCollisions(e)
	if level.CoinsCollected != 1 {
		t.Fatalf("second pass collected again: %d", level.CoinsCollected)
	}
	if n := countCoins(e); n != 1 {
		t.Fatalf("%d coins left after second pass, want 1", n)
	}
}

func TestCollectsEveryOverlappingCoin(t *testing.T) {
	e := newSession(t, cfg.ModeClassic)
	setLayout(t, e, 3000, nil, []gamemath.Rect{
		{X: 195, Y: 95, W: 15, H: 15},
		{X: 215, Y: 115, W: 15, H: 15},
		{X: 231, Y: 100, W: 15, H: 15},
	})
	placePlayer(t, e, 200, 100)

	UpdateCollisions(e)

	if got := levelData(t, e).CoinsCollected; got != 2 {
		t.Fatalf("collected %d coins, want 2", got)
	}
	if n := countCoins(e); n != 1 {
		t.Fatalf("%d coins left, want 1", n)
	}
}

// The player's bottom-left corner pokes half a pixel into a cell that its
// own broadphase cells end just before.
func TestCornerOverlapOnCellBoundary(t *testing.T) {
	cases := []struct {
		name     string
		rooftops []gamemath.Rect
		coins    []gamemath.Rect
		check    func(t *testing.T, obj *components.ObjectData, level *components.LevelData, grounded bool)
	}{
		{
			name:     "rooftop",
			rooftops: []gamemath.Rect{{X: 0, Y: 480, W: 32, H: 120}},
			coins:    farCoin,
			check: func(t *testing.T, obj *components.ObjectData, _ *components.LevelData, grounded bool) {
				if obj.Y != 450 || !grounded {
					t.Fatalf("y = %v grounded = %v, want 450 and grounded", obj.Y, grounded)
				}
			},
		},
		{
			name:  "coin",
			coins: []gamemath.Rect{{X: 17, Y: 480, W: 15, H: 15}, farCoin[0]},
			check: func(t *testing.T, _ *components.ObjectData, level *components.LevelData, _ bool) {
				if level.CoinsCollected != 1 {
					t.Fatalf("collected %d coins, want 1", level.CoinsCollected)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newSession(t, cfg.ModeClassic)
			setLayout(t, e, 3000, c.rooftops, c.coins)
			placePlayer(t, e, 31.5, 450.5)

			UpdateCollisions(e)

			grounded := components.Player.Get(playerEntry(t, e)).Grounded
			c.check(t, playerObject(t, e), levelData(t, e), grounded)
		})
	}
}
