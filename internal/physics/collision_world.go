package physics

// CollisionWorld is the static geometry the character controller resolves
// against. It is built once per level and never mutated afterwards.
type CollisionWorld struct {
	Floor     AABB
	Obstacles []AABB
}

// NewCollisionWorld copies the obstacle list so later edits by the caller
// cannot leak into the world.
func NewCollisionWorld(floor AABB, obstacles []AABB) *CollisionWorld {
	obs := make([]AABB, len(obstacles))
	copy(obs, obstacles)
	return &CollisionWorld{Floor: floor, Obstacles: obs}
}

// Blocked reports whether box overlaps any obstacle.
func (w *CollisionWorld) Blocked(box AABB) bool {
	for _, o := range w.Obstacles {
		if box.Intersects(o) {
			return true
		}
	}
	return false
}

// OnFloor reports whether box overlaps the floor volume.
func (w *CollisionWorld) OnFloor(box AABB) bool {
	return box.Intersects(w.Floor)
}
