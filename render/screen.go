package render

import (
	"image/color"

	"github.com/automoto/skyswing/assets"
	"github.com/automoto/skyswing/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var drawOp = &ebiten.DrawImageOptions{}

// Screen draws onto an ebiten image
type Screen struct {
	dst *ebiten.Image
}

func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst}
}

func (s *Screen) Width() float64  { return float64(s.dst.Bounds().Dx()) }
func (s *Screen) Height() float64 { return float64(s.dst.Bounds().Dy()) }

func (s *Screen) Background() {
	img := assets.Image(assets.SpriteBackground)
	if img == nil {
		s.dst.Fill(color.Black)
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	s.dst.DrawImage(img, drawOp)
}

func (s *Screen) FillRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *Screen) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (s *Screen) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (s *Screen) Sprite(id assets.SpriteID, x, y float64) {
	img := assets.Image(id)
	if img == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(x, y)
	s.dst.DrawImage(img, drawOp)
}

func (s *Screen) Line(x1, y1, x2, y2, width float64, clr color.Color) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}

func (s *Screen) Text(str string, x, y float64, face fonts.FontName, clr color.Color) {
	f := face.Get()
	ascent := f.Metrics().Ascent.Ceil()
	text.Draw(s.dst, str, f, int(x), int(y)+ascent, clr)
}

func (s *Screen) TextCentered(str string, cy float64, face fonts.FontName, clr color.Color) {
	f := face.Get()
	b := text.BoundString(f, str)
	x := (int(s.Width())-b.Dx())/2 - b.Min.X
	baseline := int(cy) - (b.Min.Y+b.Max.Y)/2
	text.Draw(s.dst, str, f, x, baseline, clr)
}
