// Package render is the drawing side of the game. Systems draw onto a
// Surface; Screen is the ebiten implementation.
package render

import (
	"image/color"

	"github.com/automoto/skyswing/assets"
	"github.com/automoto/skyswing/fonts"
)

// Surface receives the draw commands for one frame. Coordinates are screen
// pixels. ebiten presents the frame once Draw returns.
type Surface interface {
	Background()
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	// Sprite draws a sprite with its top-left corner at (x, y)
	Sprite(id assets.SpriteID, x, y float64)
	Line(x1, y1, x2, y2, width float64, clr color.Color)
	// Text draws s with the top of the line at y
	Text(s string, x, y float64, face fonts.FontName, clr color.Color)
	// TextCentered draws s centred horizontally with its middle at cy
	TextCentered(s string, cy float64, face fonts.FontName, clr color.Color)
	Width() float64
	Height() float64
}
