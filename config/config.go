package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; draw order is renderer registration order.
const Default ecs.LayerID = 0

// PhysicsConfig contains the per-frame movement constants
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // added to SpeedY every frame, no terminal velocity
	MoveSpeed float64 `yaml:"move_speed"` // horizontal acceleration while a direction is held
	Friction  float64 `yaml:"friction"`   // SpeedX multiplier applied every frame (< 1)
}

// PlayerConfig contains player dimensions and spawn position
type PlayerConfig struct {
	HitboxSize float64 `yaml:"hitbox_size"`

	// Centre of the player at the start of every level and after a restart
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// RopeConfig contains the tuning for both rope policies
type RopeConfig struct {
	// Length-constraint policy
	SwingForce float64 `yaml:"swing_force"` // tangential impulse per frame

	// Attraction policy
	PullStrength  float64 `yaml:"pull_strength"`  // impulse magnitude towards the anchor
	PullThreshold float64 `yaml:"pull_threshold"` // no pull inside this distance

	Width float64 `yaml:"width"`
}

// WorldConfig contains the random ranges used by the level generator
type WorldConfig struct {
	MinPlatformWidth  int `yaml:"min_platform_width"`
	MaxPlatformWidth  int `yaml:"max_platform_width"`
	MinPlatformHeight int `yaml:"min_platform_height"`
	MaxPlatformHeight int `yaml:"max_platform_height"`
	MinGap            int `yaml:"min_gap"`
	MaxGap            int `yaml:"max_gap"`

	CoinChance float64 `yaml:"coin_chance"` // scattered placement only
	CoinSize   float64 `yaml:"coin_size"`
	CoinLift   float64 `yaml:"coin_lift"`  // coin top sits this far above the platform top
	CoinInset  int     `yaml:"coin_inset"` // keeps scattered coins away from platform edges

	// Collision grid cell size for the resolv space
	CellSize int `yaml:"cell_size"`
}

// CoinConfig contains the coin bob animation values
type CoinConfig struct {
	BobHeight   float32
	BobDuration float32 // seconds for one half of the bob
	Radius      float64 // circle radius when drawn without a sprite
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	TextColor  color.RGBA
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	HintColor       color.RGBA
	Title           string
	Hint            string
	TitleOffsetY    float64 // relative to the screen centre
	HintOffsetY     float64
	ButtonsOffsetY  float64
}

// BannerConfig contains the level banner shown after every level start
type BannerConfig struct {
	Color    color.RGBA
	Duration float32 // seconds to fade from opaque to transparent
	Y        float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Rope RopeConfig
var World WorldConfig
var Coin CoinConfig
var HUD HUDConfig
var GameOver GameOverConfig
var Banner BannerConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled  bool // log level transitions and draw hit boxes
	Seed     int64
	ModeName string
}

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Gold        = color.RGBA{R: 255, G: 223, B: 0, A: 255}
	Concrete    = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	DebugBox    = color.RGBA{R: 255, G: 0, B: 255, A: 160}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:   0.5,
		MoveSpeed: 0.5,
		Friction:  0.98,
	}

	Player = PlayerConfig{
		HitboxSize: 30,
		StartX:     100,
		StartY:     300,
	}

	Rope = RopeConfig{
		SwingForce:    0.1,
		PullStrength:  0.8,
		PullThreshold: 5,
		Width:         2,
	}

	World = WorldConfig{
		MinPlatformWidth:  100,
		MaxPlatformWidth:  200,
		MinPlatformHeight: 50,
		MaxPlatformHeight: 200,
		MinGap:            50,
		MaxGap:            150,

		CoinChance: 0.4,
		CoinSize:   15,
		CoinLift:   20,
		CoinInset:  10,

		CellSize: 16,
	}

	Coin = CoinConfig{
		BobHeight:   3,
		BobDuration: 0.6,
		Radius:      7,
	}

	HUD = HUDConfig{
		Margin:     10,
		LineHeight: 30,
		TextColor:  White,
	}

	GameOver = GameOverConfig{
		BackgroundColor: Black,
		TitleColor:      Red,
		HintColor:       White,
		Title:           "GAME OVER",
		Hint:            "Press R to Restart or Q to Quit",
		TitleOffsetY:    -40,
		HintOffsetY:     40,
		ButtonsOffsetY:  110,
	}

	Banner = BannerConfig{
		Color:    BrightGreen,
		Duration: 1.5,
		Y:        120,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled:  false,
		Seed:     0,
		ModeName: ModeClassic,
	}
}
