package config

import (
	"fmt"
	"sort"
)

// RopePolicyID selects how an attached rope moves the player
type RopePolicyID int

const (
	RopeConstraint RopePolicyID = iota // fixed-length rope with a tangential swing
	RopeAttraction                     // constant pull towards the anchor
)

// CoinPlacementID selects how the generator places coins
type CoinPlacementID int

const (
	CoinScattered CoinPlacementID = iota // some platforms, random x
	CoinCentered                         // every platform, centred
)

// CameraPolicyID selects how the horizontal camera offset follows the player
type CameraPolicyID int

const (
	CameraFollow  CameraPolicyID = iota // max(0, x - half width)
	CameraRatchet                       // never moves back to the left
)

// CounterPolicyID selects what happens to the coin counter on level advance
type CounterPolicyID int

const (
	CounterPerLevel CounterPolicyID = iota
	CounterCumulative
)

// SupportPolicyID selects how overlapping platforms push the player up
type SupportPolicyID int

const (
	SupportFirst    SupportPolicyID = iota // highest overlapping surface only
	SupportCompound                        // every overlapping platform, left to right
)

// ModeConfig is one coherent set of gameplay policies
type ModeConfig struct {
	Name string

	Rope             RopePolicyID
	GroundedSteering bool // steering only works while standing on a rooftop
	Support          SupportPolicyID
	Camera           CameraPolicyID
	Counter          CounterPolicyID

	Coins      CoinPlacementID
	CoinSprite bool // draw coins with the coin sprite instead of a circle

	// Level bound: LevelWidth pixels, or PlatformCount rooftops when LevelWidth is 0
	LevelWidth    float64
	PlatformCount int
}

const (
	ModeClassic = "classic"
	ModePull    = "pull"
)

// Modes holds every selectable mode by name
var Modes = map[string]ModeConfig{
	ModeClassic: {
		Name:       ModeClassic,
		Rope:       RopeConstraint,
		Support:    SupportFirst,
		Camera:     CameraFollow,
		Counter:    CounterPerLevel,
		Coins:      CoinScattered,
		LevelWidth: 3000,
	},
	ModePull: {
		Name:             ModePull,
		Rope:             RopeAttraction,
		GroundedSteering: true,
		Support:          SupportFirst,
		Camera:           CameraRatchet,
		Counter:          CounterCumulative,
		Coins:            CoinCentered,
		CoinSprite:       true,
		PlatformCount:    20,
	},
}

// LookupMode returns the mode registered under name
func LookupMode(name string) (ModeConfig, error) {
	mode, ok := Modes[name]
	if !ok {
		return ModeConfig{}, fmt.Errorf("unknown mode %q (available: %v)", name, ModeNames())
	}
	return mode, nil
}

// ModeNames returns the registered mode names in sorted order
func ModeNames() []string {
	names := make([]string, 0, len(Modes))
	for name := range Modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
