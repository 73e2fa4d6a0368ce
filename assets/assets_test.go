package assets

import (
	"testing"
)

func TestEmbeddedSpritesDecodeAndScale(t *testing.T) {
	for id := SpriteID(0); id < spriteCount; id++ {
		spec := specs[id]
		t.Run(spec.Path, func(t *testing.T) {
			img, err := loadScaled(spec)
			if err != nil {
				t.Fatalf("loadScaled: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != spec.W || b.Dy() != spec.H {
				t.Fatalf("scaled to %dx%d, want %dx%d", b.Dx(), b.Dy(), spec.W, spec.H)
			}
		})
	}
}

func TestDecodeScaledErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		w, h int
	}{
		{"not_an_image", []byte("definitely not a png"), 10, 10},
		{"empty", nil, 10, 10},
		{"zero_size", mustRead(t, specs[SpriteCoin].Path), 0, 15},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := decodeScaled(c.data, c.w, c.h); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestMissingSpriteFails(t *testing.T) {
	if _, err := loadScaled(spriteSpec{Path: "images/missing.png", W: 1, H: 1}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()
	data, err := imageFS.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

func TestSizeMatchesDrawSize(t *testing.T) {
	cases := []struct {
		id   SpriteID
		w, h int
	}{
		{SpriteBackground, 800, 600},
		{SpriteHero, 50, 50},
		{SpriteCoin, 15, 15},
	}

	for _, c := range cases {
		if w, h := Size(c.id); w != c.w || h != c.h {
			t.Fatalf("Size(%d) = %dx%d, want %dx%d", c.id, w, h, c.w, c.h)
		}
	}
}
