package components

import (
	cfg "github.com/automoto/skyswing/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PointerEvent is a rope button transition at a screen position
type PointerEvent struct {
	Down bool // false for a release
	X, Y float64
}

// InputData stores the current and previous frame's pressed state for all
// actions plus this frame's pointer events in the order they happened.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Pointer  []PointerEvent
	// CloseRequested is set when the window close button was pressed
	CloseRequested bool
}

var Input = donburi.NewComponentType[InputData]()
