// Package levelgen lays out the rooftops and coins of a level. Layouts are
// plain data; systems/factory turns them into entities.
package levelgen

import (
	"math/rand"

	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/gamemath"
)

// Params controls one generated level
type Params struct {
	ScreenHeight float64

	// Width > 0 keeps adding rooftops while x < Width; otherwise exactly
	// PlatformCount rooftops are generated.
	Width         float64
	PlatformCount int

	MinW, MaxW     int
	MinH, MaxH     int
	MinGap, MaxGap int

	Coins      cfg.CoinPlacementID
	CoinChance float64
	CoinSize   float64
	CoinLift   float64
	CoinInset  int
}

// CoinSpot is a coin rectangle and the rooftop it was placed on
type CoinSpot struct {
	gamemath.Rect
	Platform int
}

// Layout is one generated level
type Layout struct {
	Platforms []gamemath.Rect
	Coins     []CoinSpot
	// Bound is the right edge of the level
	Bound float64
}

// ParamsFor builds generator parameters from the live tuning and a mode
func ParamsFor(mode cfg.ModeConfig) Params {
	w := cfg.World
	return Params{
		ScreenHeight:  float64(cfg.C.Height),
		Width:         mode.LevelWidth,
		PlatformCount: mode.PlatformCount,
		MinW:          w.MinPlatformWidth,
		MaxW:          w.MaxPlatformWidth,
		MinH:          w.MinPlatformHeight,
		MaxH:          w.MaxPlatformHeight,
		MinGap:        w.MinGap,
		MaxGap:        w.MaxGap,
		Coins:         mode.Coins,
		CoinChance:    w.CoinChance,
		CoinSize:      w.CoinSize,
		CoinLift:      w.CoinLift,
		CoinInset:     w.CoinInset,
	}
}

// Generate lays out rooftops left to right from x=0 and then places coins
// above them. It never fails.
func Generate(rng *rand.Rand, p Params) Layout {
	var layout Layout

	x := 0
	for p.more(x, len(layout.Platforms)) {
		w := randInt(rng, p.MinW, p.MaxW)
		h := randInt(rng, p.MinH, p.MaxH)
		layout.Platforms = append(layout.Platforms, gamemath.Rect{
			X: float64(x),
			Y: p.ScreenHeight - float64(h),
			W: float64(w),
			H: float64(h),
		})
		x += w + randInt(rng, p.MinGap, p.MaxGap)
	}

	if p.Width > 0 {
		layout.Bound = p.Width
	} else if n := len(layout.Platforms); n > 0 {
		layout.Bound = layout.Platforms[n-1].Right()
	}

	for i, plat := range layout.Platforms {
		switch p.Coins {
		case cfg.CoinCentered:
			layout.Coins = append(layout.Coins, p.coinAt(i, plat, plat.X+(plat.W-p.CoinSize)/2))
		default:
			if rng.Float64() >= p.CoinChance {
				continue
			}
			lo := int(plat.X) + p.CoinInset
			hi := int(plat.Right()) - 2*p.CoinInset
			layout.Coins = append(layout.Coins, p.coinAt(i, plat, float64(randInt(rng, lo, hi))))
		}
	}

	return layout
}

func (p Params) more(x, count int) bool {
	if p.Width > 0 {
		return float64(x) < p.Width
	}
	return count < p.PlatformCount
}

func (p Params) coinAt(index int, plat gamemath.Rect, x float64) CoinSpot {
	return CoinSpot{
		Rect: gamemath.Rect{
			X: x,
			Y: plat.Y - p.CoinLift,
			W: p.CoinSize,
			H: p.CoinSize,
		},
		Platform: index,
	}
}

// randInt returns an integer in [lo, hi], both ends included
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
