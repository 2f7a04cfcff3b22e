package world

import (
	"math/rand"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinarena/internal/physics"
)

func TestBuildDefaultArena(t *testing.T) {
	a := DefaultArena()
	level, err := a.Build()
	require.NoError(t, err)

	assert.Equal(t, float32(0), level.Floor.Max.Y)
	assert.Equal(t, float32(-20), level.Floor.Min.X)
	assert.Len(t, level.Walls, 4)
	assert.Len(t, level.Columns, len(a.Columns))
	assert.Len(t, level.Collision.Obstacles, 4+len(a.Columns))
	assert.Equal(t, level.Walls[0], level.Collision.Obstacles[0])

	for i, c := range level.Columns {
		assert.Equal(t, c.Box, level.Collision.Obstacles[4+i])
		assert.Greater(t, c.Torch.Position.Y, c.Box.Max.Y)
	}
}

func TestWallsEncloseFloor(t *testing.T) {
	level, err := DefaultArena().Build()
	require.NoError(t, err)

	// A body pressed against any floor edge touches a wall.
	edges := []rl.Vector3{{X: 19.8, Z: 0}, {X: -19.8, Z: 0}, {X: 0, Z: 19.8}, {X: 0, Z: -19.8}}
	for _, e := range edges {
		body := physics.NewAABBFromCenter(rl.Vector3{X: e.X, Y: 0.9, Z: e.Z}, rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6})
		assert.True(t, level.Collision.Blocked(body), "edge %v is open", e)
	}

	centre := physics.NewAABBFromCenter(rl.Vector3{Y: 0.9}, rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6})
	assert.False(t, level.Collision.Blocked(centre))
}

func TestArenaValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Arena)
	}{
		{"no floor", func(a *Arena) { a.FloorSize = 0 }},
		{"flat floor", func(a *Arena) { a.FloorThickness = 0 }},
		{"no walls", func(a *Arena) { a.WallHeight = -1 }},
		{"thin columns", func(a *Arena) { a.ColumnSize = 0 }},
		{"column off floor", func(a *Arena) { a.Columns = append(a.Columns, Spot{X: 30}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := DefaultArena()
			tt.mutate(&a)
			_, err := a.Build()
			assert.ErrorIs(t, err, ErrInvalidArena)
		})
	}
}

func TestTorchFlicker(t *testing.T) {
	level, err := DefaultArena().Build()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(level.Columns), 2)

	a, b := level.Columns[0].Torch, level.Columns[1].Torch
	varied, distinct := false, false
	first := a.Intensity(0)
	for i := range 200 {
		at := float64(i) * 0.05
		ia := a.Intensity(at)
		assert.GreaterOrEqual(t, ia, float32(0))
		assert.LessOrEqual(t, ia, float32(1))
		assert.Equal(t, ia, a.Intensity(at), "flicker must be deterministic")
		if ia != first {
			varied = true
		}
		if ia != b.Intensity(at) {
			distinct = true
		}
	}
	assert.True(t, varied)
	assert.True(t, distinct, "neighbouring torches pulse in step")

	var unlit Torch
	unlit.style = DefaultTorchStyle()
	assert.Equal(t, unlit.style.Base, unlit.Intensity(3))
}

func TestSpawnCoinsAvoidObstacles(t *testing.T) {
	level, err := DefaultArena().Build()
	require.NoError(t, err)

	s := DefaultCoinSettings()
	s.Count = 200
	field := SpawnCoins(s, level.Collision, rand.New(rand.NewSource(1)))

	assert.Equal(t, 200, field.Remaining())
	ids := map[string]bool{}
	for _, c := range field.Coins() {
		assert.False(t, level.Collision.Blocked(field.box(c)))
		assert.Equal(t, s.Height, c.Position.Y)
		assert.InDelta(t, 0, c.Position.X, float64(s.Spread/2))
		assert.InDelta(t, 0, c.Position.Z, float64(s.Spread/2))
		ids[c.ID.String()] = true
	}
	assert.Len(t, ids, 200)
}

func TestCoinCollect(t *testing.T) {
	field := &CoinField{settings: DefaultCoinSettings()}
	field.coins = []Coin{
		{Position: rl.Vector3{X: 1, Y: 0.3, Z: 1}},
		{Position: rl.Vector3{X: 5, Y: 0.3, Z: 5}},
		{Position: rl.Vector3{X: 1.2, Y: 0.3, Z: 0.8}},
	}

	player := physics.NewAABBFromCenter(rl.Vector3{X: 1, Y: 0.9, Z: 1}, rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6})
	taken := field.Collect(player)

	assert.Len(t, taken, 2)
	assert.Equal(t, 2, field.Collected())
	assert.Equal(t, 1, field.Remaining())
	assert.Equal(t, rl.Vector3{X: 5, Y: 0.3, Z: 5}, field.Coins()[0].Position)

	assert.Empty(t, field.Collect(player))
	assert.Equal(t, 2, field.Collected())
}

func TestCoinSpin(t *testing.T) {
	field := &CoinField{settings: DefaultCoinSettings(), coins: []Coin{{}}}
	field.Spin()
	field.Spin()
	assert.InDelta(t, 1.0, field.Coins()[0].Rotation, 1e-6)
}

func TestFrustumCulling(t *testing.T) {
	cam := rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Z: -1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	f := ExtractFrustum(cam, 16.0/9.0)

	ahead := physics.NewAABBFromCenter(rl.Vector3{Z: -10}, rl.Vector3{X: 1, Y: 1, Z: 1})
	behind := physics.NewAABBFromCenter(rl.Vector3{Z: 10}, rl.Vector3{X: 1, Y: 1, Z: 1})
	wide := physics.NewAABBFromCenter(rl.Vector3{X: 100, Z: -10}, rl.Vector3{X: 1, Y: 1, Z: 1})

	assert.True(t, f.ContainsBox(ahead))
	assert.False(t, f.ContainsBox(behind))
	assert.False(t, f.ContainsBox(wide))

	assert.True(t, f.ContainsSphere(rl.Vector3{Z: -5}, 0.5))
	assert.False(t, f.ContainsSphere(rl.Vector3{Z: 5}, 0.5))
}

func TestRendererCull(t *testing.T) {
	level, err := DefaultArena().Build()
	require.NoError(t, err)

	field := SpawnCoins(CoinSettings{Count: 1, Spread: 0.001, Height: 0.3, Radius: 0.3}, level.Collision, rand.New(rand.NewSource(1)))
	require.Equal(t, 1, field.Remaining())

	cam := rl.Camera3D{
		Position:   rl.Vector3{Y: 1, Z: 4},
		Target:     rl.Vector3{Y: 1, Z: 3},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	r := NewRenderer(DefaultPalette())

	// Looking down -Z the three columns with z < 0 are in view, the three
	// with z > 0 are behind or beside the camera.
	columns, coins := r.Cull(level, field, cam, 16.0/9.0)
	assert.Len(t, columns, 3)
	for _, c := range columns {
		assert.Less(t, c.Box.Center().Z, float32(0))
	}
	assert.Len(t, coins, 1)
	assert.Equal(t, 3, r.Culled)

	// Turned around, the coin at the origin drops out too.
	cam.Target = rl.Vector3{Y: 1, Z: 5}
	_, coins = r.Cull(level, field, cam, 16.0/9.0)
	assert.Empty(t, coins)
	assert.Greater(t, r.Culled, 3)
}
