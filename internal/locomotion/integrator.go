package locomotion

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"coinarena/internal/input"
	"coinarena/internal/physics"
)

var (
	ErrSpawnBelowFloor   = errors.New("spawn point is below the floor")
	ErrSpawnOutsideWorld = errors.New("spawn point is outside the floor footprint")
	ErrSpawnInObstacle   = errors.New("spawn point overlaps an obstacle")
)

// Integrator advances the player one frame at a time: horizontal move with
// obstacle veto, then gravity, jump and floor contact.
type Integrator struct {
	tuning Tuning
	body   physics.AABB
}

func NewIntegrator(t Tuning) *Integrator {
	return &Integrator{tuning: t, body: t.Body()}
}

// Spawn creates the initial state at pos. A spawn below the floor, off the
// floor or inside an obstacle is a level configuration error.
func (in *Integrator) Spawn(pos rl.Vector3, world *physics.CollisionWorld) (PlayerState, error) {
	box := in.body.Offset(pos)
	floor := world.Floor

	if box.Min.Y < floor.Max.Y {
		return PlayerState{}, fmt.Errorf("%w: feet at %.3f, floor top at %.3f", ErrSpawnBelowFloor, box.Min.Y, floor.Max.Y)
	}
	if box.Max.X < floor.Min.X || box.Min.X > floor.Max.X || box.Max.Z < floor.Min.Z || box.Min.Z > floor.Max.Z {
		return PlayerState{}, fmt.Errorf("%w: (%.2f, %.2f)", ErrSpawnOutsideWorld, pos.X, pos.Z)
	}
	for i, o := range world.Obstacles {
		if box.Intersects(o) {
			return PlayerState{}, fmt.Errorf("%w: obstacle %d", ErrSpawnInObstacle, i)
		}
	}

	return PlayerState{
		Position: pos,
		Box:      box,
		State:    Idle,
		Grounded: world.OnFloor(box),
	}, nil
}

// Step returns the state one frame after prev. It never fails: prev is
// assumed to come from Spawn or an earlier Step.
func (in *Integrator) Step(prev PlayerState, intent input.Intent, world *physics.CollisionWorld, dt float32) PlayerState {
	scale := in.frameScale(dt)
	next := prev
	next.Moved = false
	next.Displacement = rl.Vector3{}

	startBox := prev.Box

	// Horizontal: the whole XZ move is vetoed by any obstacle, no sliding.
	if intent.Moving() {
		speed := in.tuning.WalkSpeed
		if intent.Tier == input.Run {
			speed = in.tuning.RunSpeed()
		}
		disp := rl.Vector3{X: intent.Move.X * speed * scale, Z: intent.Move.Z * speed * scale}

		if !world.Blocked(startBox.Translate(disp)) {
			next.Position.X += disp.X
			next.Position.Z += disp.Z
			next.Moved = true
			next.Displacement = disp
		}
	}
	next.Box = in.body.Offset(next.Position)

	// Ground contact is sampled before the vertical move. Ascending through
	// the floor volume does not count.
	vy := prev.VerticalVelocity
	grounded := world.OnFloor(next.Box) && vy <= 0

	if grounded && intent.Jump {
		vy = in.tuning.JumpImpulse
	}
	vy += in.tuning.Gravity * scale

	// Vertical is resolved against the floor only; obstacles never block a
	// fall or a landing.
	dy := vy * scale
	candidate := startBox.Translate(rl.Vector3{Y: dy})
	if dy < 0 {
		candidate = candidate.Union(startBox)
	}

	if world.OnFloor(candidate) {
		next.Position.Y = world.Floor.Max.Y - in.body.Min.Y
		vy = 0
	} else {
		next.Position.Y += dy
	}

	next.VerticalVelocity = vy
	next.Grounded = grounded
	next.Box = in.body.Offset(next.Position)
	return next
}

func (in *Integrator) frameScale(dt float32) float32 {
	if in.tuning.TickRate > 0 {
		return dt * in.tuning.TickRate
	}
	return 1
}
