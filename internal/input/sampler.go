package input

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"coinarena/internal/physics"
)

// Tier selects the movement speed.
type Tier uint8

const (
	Walk Tier = iota
	Run
)

func (t Tier) String() string {
	if t == Run {
		return "run"
	}
	return "walk"
}

// Snapshot is the device state for one frame. It is a value: the sampler
// never reads devices itself.
type Snapshot struct {
	Held       KeySet
	MouseDelta rl.Vector2
	// Captured is true while the pointer is locked to the window.
	Captured bool
}

// LookDelta is the camera orbit change requested this frame, in radians.
type LookDelta struct {
	Yaw   float32
	Pitch float32
}

// Intent is the desired movement for one frame, before collision.
type Intent struct {
	Move rl.Vector3 // XZ plane, unit length or zero
	Tier Tier
	Jump bool
	Look LookDelta
}

// Moving reports whether the intent carries a movement direction.
func (i Intent) Moving() bool {
	return !physics.IsZeroXZ(i.Move)
}

// Sampler turns snapshots into intents.
type Sampler struct {
	// CameraRelative derives the movement basis from the camera yaw.
	// Otherwise forward is world -Z.
	CameraRelative bool
	// Sensitivity converts mouse pixels to radians.
	Sensitivity float32
}

// Sample builds the intent for one frame. yaw is the current camera yaw.
func (s Sampler) Sample(snap Snapshot, yaw float32) Intent {
	forward, right := s.basis(yaw)

	var move rl.Vector3
	if snap.Held.Has(KeyForward) {
		move = rl.Vector3Add(move, forward)
	}
	if snap.Held.Has(KeyBack) {
		move = rl.Vector3Subtract(move, forward)
	}
	if snap.Held.Has(KeyLeft) {
		move = rl.Vector3Add(move, right)
	}
	if snap.Held.Has(KeyRight) {
		move = rl.Vector3Subtract(move, right)
	}

	intent := Intent{
		Move: physics.NormalizeXZ(move),
		Tier: Walk,
		Jump: snap.Held.Has(KeyJump),
	}
	if snap.Held.Has(KeyRun) {
		intent.Tier = Run
	}
	intent.Look = s.Look(snap)
	return intent
}

// Look converts the mouse delta to an orbit change. Without pointer capture
// there is no look input.
func (s Sampler) Look(snap Snapshot) LookDelta {
	if !snap.Captured {
		return LookDelta{}
	}
	return LookDelta{
		Yaw:   -snap.MouseDelta.X * s.Sensitivity,
		Pitch: -snap.MouseDelta.Y * s.Sensitivity,
	}
}

// basis returns the horizontal forward and right vectors. right follows
// (cos yaw, 0, -sin yaw), so strafing right subtracts it.
func (s Sampler) basis(yaw float32) (forward, right rl.Vector3) {
	if !s.CameraRelative {
		return rl.Vector3{Z: -1}, rl.Vector3{X: -1}
	}
	sin, cos := math.Sincos(float64(yaw))
	forward = rl.Vector3{X: float32(sin), Z: float32(cos)}
	right = rl.Vector3{X: float32(cos), Z: float32(-sin)}
	return
}
