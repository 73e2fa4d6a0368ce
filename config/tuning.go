package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Fields missing from the file keep their current value.
type Tuning struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Rope    RopeConfig    `yaml:"rope"`
	World   WorldConfig   `yaml:"world"`
}

// CurrentTuning snapshots the live tuning values
func CurrentTuning() Tuning {
	return Tuning{
		Physics: Physics,
		Player:  Player,
		Rope:    Rope,
		World:   World,
	}
}

// ParseTuning decodes data on top of base
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// Validate rejects values the generator or physics cannot work with
func (t Tuning) Validate() error {
	w := t.World
	switch {
	case w.MinPlatformWidth <= 0 || w.MaxPlatformWidth < w.MinPlatformWidth:
		return fmt.Errorf("config: platform width range [%d, %d] is invalid", w.MinPlatformWidth, w.MaxPlatformWidth)
	case w.MinPlatformHeight <= 0 || w.MaxPlatformHeight < w.MinPlatformHeight:
		return fmt.Errorf("config: platform height range [%d, %d] is invalid", w.MinPlatformHeight, w.MaxPlatformHeight)
	case w.MinGap < 0 || w.MaxGap < w.MinGap:
		return fmt.Errorf("config: gap range [%d, %d] is invalid", w.MinGap, w.MaxGap)
	case w.CoinChance < 0 || w.CoinChance > 1:
		return fmt.Errorf("config: coin chance %v is outside [0, 1]", w.CoinChance)
	case w.CellSize <= 0:
		return fmt.Errorf("config: cell size %d must be positive", w.CellSize)
	case t.Physics.Friction <= 0 || t.Physics.Friction > 1:
		return fmt.Errorf("config: friction %v is outside (0, 1]", t.Physics.Friction)
	case t.Player.HitboxSize <= 0:
		return fmt.Errorf("config: hitbox size %v must be positive", t.Player.HitboxSize)
	}
	return nil
}

// Apply makes t the live tuning
func (t Tuning) Apply() {
	Physics = t.Physics
	Player = t.Player
	Rope = t.Rope
	World = t.World
}

// LoadTuning reads a YAML tuning file and applies it over the current values
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := ParseTuning(data, CurrentTuning())
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	t.Apply()
	return nil
}
