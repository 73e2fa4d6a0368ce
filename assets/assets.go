package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

var (
	//go:embed images/*.png
	imageFS embed.FS
)

// SpriteID names an image the game draws
type SpriteID int

const (
	SpriteBackground SpriteID = iota
	SpriteHero
	SpriteCoin
	spriteCount
)

// spriteSpec is where a sprite comes from and the size it is drawn at
type spriteSpec struct {
	Path string
	W, H int
}

var specs = [spriteCount]spriteSpec{
	SpriteBackground: {Path: "images/background.png", W: 800, H: 600},
	SpriteHero:       {Path: "images/hero.png", W: 50, H: 50},
	SpriteCoin:       {Path: "images/coin.png", W: 15, H: 15},
}

var sprites [spriteCount]*ebiten.Image

// Size returns the size a sprite is drawn at
func Size(id SpriteID) (int, int) {
	return specs[id].W, specs[id].H
}

// Load decodes every embedded sprite and scales it to its draw size.
// Any failure is returned and nothing is half loaded.
func Load() error {
	var loaded [spriteCount]*ebiten.Image
	for id := SpriteID(0); id < spriteCount; id++ {
		img, err := loadScaled(specs[id])
		if err != nil {
			return err
		}
		loaded[id] = ebiten.NewImageFromImage(img)
	}
	sprites = loaded
	return nil
}

// Image returns a loaded sprite, or nil before Load succeeded
func Image(id SpriteID) *ebiten.Image {
	return sprites[id]
}

func loadScaled(spec spriteSpec) (image.Image, error) {
	data, err := imageFS.ReadFile(spec.Path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", spec.Path, err)
	}
	img, err := decodeScaled(data, spec.W, spec.H)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", spec.Path, err)
	}
	return img, nil
}

// decodeScaled decodes an encoded image and scales it to w x h
func decodeScaled(data []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", w, h)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst, nil
}
