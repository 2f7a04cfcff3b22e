package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyCodes names the raylib keys that may appear in bindings.
var KeyCodes = map[string]int32{
	"W":             rl.KeyW,
	"A":             rl.KeyA,
	"S":             rl.KeyS,
	"D":             rl.KeyD,
	"Q":             rl.KeyQ,
	"E":             rl.KeyE,
	"F":             rl.KeyF,
	"R":             rl.KeyR,
	"Z":             rl.KeyZ,
	"X":             rl.KeyX,
	"C":             rl.KeyC,
	"UP":            rl.KeyUp,
	"DOWN":          rl.KeyDown,
	"LEFT":          rl.KeyLeft,
	"RIGHT":         rl.KeyRight,
	"SPACE":         rl.KeySpace,
	"LEFT_SHIFT":    rl.KeyLeftShift,
	"RIGHT_SHIFT":   rl.KeyRightShift,
	"LEFT_CONTROL":  rl.KeyLeftControl,
	"RIGHT_CONTROL": rl.KeyRightControl,
	"LEFT_ALT":      rl.KeyLeftAlt,
	"ENTER":         rl.KeyEnter,
}

// DefaultBindings mirrors both movement schemes: WASD and arrow keys.
func DefaultBindings() map[string][]string {
	return map[string][]string{
		"forward": {"W", "UP"},
		"back":    {"S", "DOWN"},
		"left":    {"A", "LEFT"},
		"right":   {"D", "RIGHT"},
		"run":     {"LEFT_SHIFT", "RIGHT_SHIFT"},
		"jump":    {"SPACE"},
	}
}

// RaylibPoller reads the raylib device state once per frame.
type RaylibPoller struct {
	Bindings Bindings
}

// Poll must be called on the main thread between frames.
func (p RaylibPoller) Poll() Snapshot {
	var snap Snapshot
	for k, codes := range p.Bindings {
		for _, code := range codes {
			if rl.IsKeyDown(code) {
				snap.Held = snap.Held.With(k)
				break
			}
		}
	}

	snap.Captured = rl.IsCursorHidden()
	if snap.Captured {
		snap.MouseDelta = rl.GetMouseDelta()
	}
	return snap
}
