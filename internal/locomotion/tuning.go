package locomotion

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"coinarena/internal/physics"
)

// Tuning holds the controller constants. Units are world units per frame
// unless TickRate is set.
type Tuning struct {
	WalkSpeed   float32 `yaml:"walk_speed"`
	Gravity     float32 `yaml:"gravity"`
	JumpImpulse float32 `yaml:"jump_impulse"`
	// TickRate, when positive, scales per-frame quantities by dt*TickRate.
	TickRate float32 `yaml:"tick_rate"`

	// Body is the player volume relative to the feet.
	BodyHalfWidth float32 `yaml:"body_half_width"`
	BodyHeight    float32 `yaml:"body_height"`
}

// RunFactor is fixed so Run is always twice Walk.
const RunFactor = 2

func DefaultTuning() Tuning {
	return Tuning{
		WalkSpeed:     0.05,
		Gravity:       -0.015,
		JumpImpulse:   0.35,
		BodyHalfWidth: 0.3,
		BodyHeight:    1.8,
	}
}

// RunSpeed returns the Run tier speed.
func (t Tuning) RunSpeed() float32 {
	return t.WalkSpeed * RunFactor
}

// JumpPeak is the highest the feet can rise above the take-off point,
// JumpImpulse²/(2·|Gravity|). Gravity is applied before each vertical move,
// so the integrated arc always peaks a little lower. Level geometry meant to
// contain the player must be taller than this.
func (t Tuning) JumpPeak() float32 {
	if t.Gravity >= 0 {
		return float32(math.Inf(1))
	}
	return t.JumpImpulse * t.JumpImpulse / (2 * -t.Gravity)
}

// Body returns the player box in local space, origin at the feet.
func (t Tuning) Body() physics.AABB {
	return physics.AABB{
		Min: rl.Vector3{X: -t.BodyHalfWidth, Y: 0, Z: -t.BodyHalfWidth},
		Max: rl.Vector3{X: t.BodyHalfWidth, Y: t.BodyHeight, Z: t.BodyHalfWidth},
	}
}
