package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skyswing/assets"
	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/fonts"
	"github.com/automoto/skyswing/render"
	"github.com/automoto/skyswing/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawScreen is the ecs renderer that draws the world onto the ebiten screen.
func DrawScreen(e *ecs.ECS, screen *ebiten.Image) {
	DrawWorld(e, render.NewScreen(screen))
}

// DrawWorld draws one frame: the game over screen while the session is
// over, the scrolled world and HUD otherwise.
func DrawWorld(e *ecs.ECS, s render.Surface) {
	session := getSession(e)
	if session == nil {
		return
	}
	if session.State == components.SessionGameOver {
		drawGameOver(s)
		return
	}

	cameraX := 0.0
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		cameraX = components.Camera.Get(cameraEntry).X
	}

	s.Background()
	drawPlatforms(e, s, cameraX)
	drawCoins(e, s, cameraX, session.Mode.CoinSprite)
	drawPlayer(e, s, cameraX)
	drawHUD(e, s)
	drawBanner(e, s)
	if cfg.Debug.Enabled {
		drawHitboxes(e, s, cameraX)
	}
}

func drawPlatforms(e *ecs.ECS, s render.Surface, cameraX float64) {
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if o.X+o.W < cameraX || o.X > cameraX+s.Width() {
			return
		}
		s.FillRect(o.X-cameraX, o.Y, o.W, o.H, cfg.Concrete)
	})
}

func drawCoins(e *ecs.ECS, s render.Surface, cameraX float64, sprite bool) {
	tags.Coin.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if o.X+o.W < cameraX || o.X > cameraX+s.Width() {
			return
		}
		y := o.Y + components.Coin.Get(entry).Offset
		if sprite {
			s.Sprite(assets.SpriteCoin, o.X-cameraX, y)
			return
		}
		r := cfg.Coin.Radius
		s.FillCircle(o.X+r-cameraX, y+r, r, cfg.Gold)
	})
}

func drawPlayer(e *ecs.ECS, s render.Surface, cameraX float64) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	x, y := obj.CenterX(), obj.CenterY()

	if rope := components.Rope.Get(playerEntry); rope.Active {
		s.Line(x-cameraX, y, rope.Anchor.X-cameraX, rope.Anchor.Y, cfg.Rope.Width, cfg.White)
	}

	w, h := assets.Size(assets.SpriteHero)
	s.Sprite(assets.SpriteHero, x-float64(w)/2-cameraX, y-float64(h)/2)
}

func drawHUD(e *ecs.ECS, s render.Surface) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	m := cfg.HUD.Margin

	s.Text(fmt.Sprintf("Coins: %d", level.CoinsCollected), m, m, fonts.HUD, cfg.HUD.TextColor)
	s.Text(fmt.Sprintf("Level: %d", level.Number), m, m+cfg.HUD.LineHeight, fonts.HUD, cfg.HUD.TextColor)
}

func drawBanner(e *ecs.ECS, s render.Surface) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Alpha <= 0 || banner.Text == "" {
		return
	}
	c := cfg.Banner.Color
	clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(banner.Alpha * 255)}
	s.TextCentered(banner.Text, cfg.Banner.Y, fonts.Banner, clr)
}

func drawGameOver(s render.Surface) {
	w, h := s.Width(), s.Height()
	s.FillRect(0, 0, w, h, cfg.GameOver.BackgroundColor)
	s.TextCentered(cfg.GameOver.Title, h/2+cfg.GameOver.TitleOffsetY, fonts.Title, cfg.GameOver.TitleColor)
	s.TextCentered(cfg.GameOver.Hint, h/2+cfg.GameOver.HintOffsetY, fonts.HUD, cfg.GameOver.HintColor)
}

func drawHitboxes(e *ecs.ECS, s render.Surface, cameraX float64) {
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		s.StrokeRect(o.X-cameraX, o.Y, o.W, o.H, 1, cfg.DebugBox)
	})
}
