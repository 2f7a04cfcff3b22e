package locomotion

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"coinarena/internal/physics"
)

// State is the discrete locomotion classification that drives animation.
type State uint8

const (
	Idle State = iota
	Walk
	Run
	Jump
)

func (s State) String() string {
	switch s {
	case Walk:
		return "Walk"
	case Run:
		return "Run"
	case Jump:
		return "Jump"
	default:
		return "Idle"
	}
}

// PlayerState is owned by the integrator and replaced once per frame.
type PlayerState struct {
	Position rl.Vector3
	// Facing is the yaw of the character model in radians.
	Facing           float32
	VerticalVelocity float32
	Box              physics.AABB
	State            State

	// Grounded is the floor contact sampled before the vertical move.
	Grounded bool
	// Moved is true when the horizontal displacement was accepted.
	Moved bool
	// Displacement is the horizontal move applied this frame.
	Displacement rl.Vector3
}
