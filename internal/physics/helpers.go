package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NormalizeXZ flattens v onto the XZ plane and scales it to unit length.
// A zero vector stays zero.
func NormalizeXZ(v rl.Vector3) rl.Vector3 {
	v.Y = 0
	l := float32(math.Sqrt(float64(v.X*v.X + v.Z*v.Z)))
	if l == 0 {
		return rl.Vector3{}
	}
	return rl.Vector3{X: v.X / l, Z: v.Z / l}
}

// LengthXZ returns the horizontal length of v.
func LengthXZ(v rl.Vector3) float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Z*v.Z)))
}

// IsZeroXZ reports whether v has no horizontal component.
func IsZeroXZ(v rl.Vector3) bool {
	return v.X == 0 && v.Z == 0
}
