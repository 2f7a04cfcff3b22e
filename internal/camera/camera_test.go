package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinarena/internal/input"
)

func TestFaceTurnsFractionOfArc(t *testing.T) {
	r := New(DefaultSettings())

	got := r.Face(0, rl.Vector3{X: 1})
	assert.InDelta(t, 0.2*math.Pi/2, got, 1e-4)

	// Repeated turns approach the target without passing it.
	yaw := float32(0)
	for range 200 {
		next := r.Face(yaw, rl.Vector3{X: 1})
		assert.GreaterOrEqual(t, next, yaw-1e-6)
		assert.LessOrEqual(t, next, float32(math.Pi/2)+1e-6)
		yaw = next
	}
	assert.InDelta(t, math.Pi/2, yaw, 1e-3)
}

func TestFaceIdempotentAtTarget(t *testing.T) {
	r := New(DefaultSettings())
	move := rl.Vector3{X: 0.6, Z: -0.8}
	target := float32(math.Atan2(0.6, -0.8))

	yaw := target
	for range 10 {
		yaw = r.Face(yaw, move)
	}
	assert.Equal(t, target, yaw)
}

func TestFaceKeepsYawWithoutMove(t *testing.T) {
	r := New(DefaultSettings())
	assert.Equal(t, float32(1.25), r.Face(1.25, rl.Vector3{}))
}

func TestFaceTakesShortestArc(t *testing.T) {
	r := New(DefaultSettings())
	// From just below +pi toward just above -pi: the short way crosses pi.
	got := r.Face(3.0, rl.Vector3{X: float32(math.Sin(-3.0)), Z: float32(math.Cos(-3.0))})
	assert.True(t, got > 3.0 || got < -3.0, "turned the long way: %v", got)
}

func TestFixedFollowLagsTowardOffset(t *testing.T) {
	s := DefaultSettings()
	r := New(s)
	player := rl.Vector3{X: 10, Z: 10}

	r.Follow(player)
	ideal := rl.Vector3Add(player, s.FixedOffset)
	assert.InDelta(t, ideal.X*s.FollowFactor, r.Position.X, 1e-5)
	assert.InDelta(t, ideal.Y*s.FollowFactor, r.Position.Y, 1e-5)
	assert.Equal(t, rl.Vector3{X: 10, Y: s.EyeHeight, Z: 10}, r.Target)

	for range 300 {
		r.Follow(player)
	}
	assert.InDelta(t, ideal.X, r.Position.X, 1e-3)
	assert.InDelta(t, ideal.Y, r.Position.Y, 1e-3)
	assert.InDelta(t, ideal.Z, r.Position.Z, 1e-3)
}

func TestSnap(t *testing.T) {
	s := DefaultSettings()
	r := New(s)
	r.Snap(rl.Vector3{X: 1, Y: 2, Z: 3})
	assert.Equal(t, rl.Vector3{X: 1, Y: 5, Z: 7}, r.Position)
}

func TestFreeLookOrbit(t *testing.T) {
	s := DefaultSettings()
	s.FreeLook = true
	s.InitialPitch = 0
	r := New(s)
	assert.Equal(t, ModeFreeLook, r.Mode())

	r.Snap(rl.Vector3{})
	// Yaw pi looks down -Z, so the camera sits behind the player on +Z.
	assert.InDelta(t, 0, r.Position.X, 1e-5)
	assert.InDelta(t, s.EyeHeight, r.Position.Y, 1e-5)
	assert.InDelta(t, s.Distance, r.Position.Z, 1e-5)
	assert.Equal(t, rl.Vector3{Y: s.EyeHeight}, r.Target)
}

func TestLookClampsPitch(t *testing.T) {
	s := DefaultSettings()
	s.FreeLook = true
	r := New(s)

	r.Look(input.LookDelta{Pitch: 10})
	assert.Equal(t, s.PitchMax, r.Pitch)

	r.Look(input.LookDelta{Pitch: -10})
	assert.Equal(t, s.PitchMin, r.Pitch)

	yaw := r.Yaw
	r.Look(input.LookDelta{Yaw: -0.1})
	assert.InDelta(t, float64(yaw)-0.1, r.Yaw, 1e-5)
}

func TestFreeLookStaysAboveFloor(t *testing.T) {
	s := DefaultSettings()
	s.FreeLook = true
	r := New(s)

	r.Look(input.LookDelta{Pitch: -10})
	require.Equal(t, s.PitchMin, r.Pitch)
	r.Snap(rl.Vector3{X: 3, Z: -2})
	assert.Equal(t, s.MinHeight, r.Position.Y)

	for range 50 {
		r.Follow(rl.Vector3{X: 3, Z: -2})
		assert.GreaterOrEqual(t, r.Position.Y, s.MinHeight)
	}

	// Above the floor the orbit is untouched.
	r.Look(input.LookDelta{Pitch: 10})
	r.Snap(rl.Vector3{})
	assert.InDelta(t, float64(s.EyeHeight)+float64(s.Distance)*math.Sin(float64(s.PitchMax)), r.Position.Y, 1e-4)
}

func TestFixedModeIgnoresLook(t *testing.T) {
	r := New(DefaultSettings())
	r.Look(input.LookDelta{Yaw: 1, Pitch: 1})
	assert.Equal(t, float32(math.Pi), r.Yaw)

	r.SetMode(ModeFreeLook)
	r.Look(input.LookDelta{Yaw: 0.5})
	r.SetMode(ModeFixed)
	assert.Equal(t, float32(math.Pi), r.Yaw)
}
