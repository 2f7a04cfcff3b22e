package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestAABBIntersects(t *testing.T) {
	a := AABB{Min: rl.Vector3{X: 0, Y: 0, Z: 0}, Max: rl.Vector3{X: 1, Y: 1, Z: 1}}

	tests := []struct {
		name string
		b    AABB
		want bool
	}{
		{"overlap", AABB{Min: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, Max: rl.Vector3{X: 2, Y: 2, Z: 2}}, true},
		{"touching face", AABB{Min: rl.Vector3{X: 1, Y: 0, Z: 0}, Max: rl.Vector3{X: 2, Y: 1, Z: 1}}, true},
		{"separated on x", AABB{Min: rl.Vector3{X: 1.01, Y: 0, Z: 0}, Max: rl.Vector3{X: 2, Y: 1, Z: 1}}, false},
		{"separated on y", AABB{Min: rl.Vector3{X: 0, Y: -2, Z: 0}, Max: rl.Vector3{X: 1, Y: -0.1, Z: 1}}, false},
		{"contained", AABB{Min: rl.Vector3{X: 0.2, Y: 0.2, Z: 0.2}, Max: rl.Vector3{X: 0.8, Y: 0.8, Z: 0.8}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(a))
		})
	}
}

func TestNewAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{X: 2, Y: 4, Z: 6})

	assert.Equal(t, rl.Vector3{X: 0, Y: 0, Z: 0}, box.Min)
	assert.Equal(t, rl.Vector3{X: 2, Y: 4, Z: 6}, box.Max)
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, box.Center())
	assert.True(t, box.Valid())
}

func TestAABBTranslateAndUnion(t *testing.T) {
	box := AABB{Max: rl.Vector3{X: 1, Y: 1, Z: 1}}
	moved := box.Translate(rl.Vector3{Y: -3})

	assert.Equal(t, float32(-3), moved.Min.Y)
	assert.Equal(t, float32(-2), moved.Max.Y)

	u := box.Union(moved)
	assert.Equal(t, float32(-3), u.Min.Y)
	assert.Equal(t, float32(1), u.Max.Y)
	assert.Equal(t, rl.Vector3{X: 1, Y: 4, Z: 1}, u.Size())
}

func TestCollisionWorldBlocked(t *testing.T) {
	floor := AABB{Min: rl.Vector3{X: -10, Y: -1, Z: -10}, Max: rl.Vector3{X: 10, Y: 0, Z: 10}}
	wall := AABB{Min: rl.Vector3{X: 5, Y: 0, Z: -10}, Max: rl.Vector3{X: 6, Y: 3, Z: 10}}

	obstacles := []AABB{wall}
	w := NewCollisionWorld(floor, obstacles)
	obstacles[0] = AABB{}

	player := AABB{Min: rl.Vector3{X: 4.5, Y: 0, Z: 0}, Max: rl.Vector3{X: 5.1, Y: 1.8, Z: 0.6}}
	assert.True(t, w.Blocked(player), "caller edits must not leak into the world")
	assert.True(t, w.OnFloor(player))

	player = player.Translate(rl.Vector3{X: -2})
	assert.False(t, w.Blocked(player))

	empty := NewCollisionWorld(floor, nil)
	assert.False(t, empty.Blocked(player))
}

func TestNormalizeXZ(t *testing.T) {
	assert.Equal(t, rl.Vector3{}, NormalizeXZ(rl.Vector3{}))
	assert.Equal(t, rl.Vector3{}, NormalizeXZ(rl.Vector3{Y: 5}))

	n := NormalizeXZ(rl.Vector3{X: 1, Y: 3, Z: 1})
	assert.InDelta(t, 1.0, LengthXZ(n), 1e-6)
	assert.Equal(t, float32(0), n.Y)
	assert.InDelta(t, n.X, n.Z, 1e-7)
}
