package world

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	rl "github.com/gen2brain/raylib-go/raylib"

	"coinarena/internal/physics"
)

var ErrInvalidArena = errors.New("invalid arena")

// Spot is a position on the floor plane.
type Spot struct {
	X float32 `yaml:"x"`
	Z float32 `yaml:"z"`
}

// Arena describes the static level: a square floor centred on the origin,
// four boundary walls standing outside its edges and a set of columns, each
// carrying a torch.
type Arena struct {
	FloorSize      float32    `yaml:"floor_size"`
	FloorThickness float32    `yaml:"floor_thickness"`
	WallHeight     float32    `yaml:"wall_height"`
	WallThickness  float32    `yaml:"wall_thickness"`
	ColumnSize     float32    `yaml:"column_size"`
	ColumnHeight   float32    `yaml:"column_height"`
	Columns        []Spot     `yaml:"columns"`
	Spawn          rl.Vector3 `yaml:"spawn"`
	Torch          TorchStyle `yaml:"torch"`
	Seed           int64      `yaml:"seed"`
}

func DefaultArena() Arena {
	return Arena{
		FloorSize:      40,
		FloorThickness: 0.2,
		WallHeight:     5,
		WallThickness:  1,
		ColumnSize:     1.2,
		ColumnHeight:   4,
		Columns: []Spot{
			{X: -8, Z: -8}, {X: 8, Z: -8},
			{X: -8, Z: 8}, {X: 8, Z: 8},
			{X: 0, Z: -14}, {X: 0, Z: 14},
		},
		Spawn: rl.Vector3{X: 10, Y: 0, Z: 10},
		Torch: DefaultTorchStyle(),
		Seed:  7,
	}
}

// Column is a decorative pillar; its torch rides on top of it.
type Column struct {
	Box   physics.AABB
	Torch Torch
}

// Level is the built arena: collision volumes plus the decoration that
// only the renderer looks at.
type Level struct {
	Collision *physics.CollisionWorld
	Floor     physics.AABB
	Walls     []physics.AABB
	Columns   []Column
	Spawn     rl.Vector3
}

// Build validates the arena and lays out its geometry. The floor top sits
// at y = 0. Obstacles are ordered walls first (N, S, W, E), then columns.
func (a Arena) Build() (*Level, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	h := a.FloorSize / 2
	t := a.WallThickness
	floor := physics.AABB{
		Min: rl.Vector3{X: -h, Y: -a.FloorThickness, Z: -h},
		Max: rl.Vector3{X: h, Y: 0, Z: h},
	}

	walls := []physics.AABB{
		{Min: rl.Vector3{X: -h - t, Y: 0, Z: -h - t}, Max: rl.Vector3{X: h + t, Y: a.WallHeight, Z: -h}},
		{Min: rl.Vector3{X: -h - t, Y: 0, Z: h}, Max: rl.Vector3{X: h + t, Y: a.WallHeight, Z: h + t}},
		{Min: rl.Vector3{X: -h - t, Y: 0, Z: -h}, Max: rl.Vector3{X: -h, Y: a.WallHeight, Z: h}},
		{Min: rl.Vector3{X: h, Y: 0, Z: -h}, Max: rl.Vector3{X: h + t, Y: a.WallHeight, Z: h}},
	}

	noise := perlin.NewPerlin(2, 2, 3, a.Seed)
	obstacles := append([]physics.AABB(nil), walls...)
	columns := make([]Column, 0, len(a.Columns))
	for i, spot := range a.Columns {
		box := physics.NewAABBFromCenter(
			rl.Vector3{X: spot.X, Y: a.ColumnHeight / 2, Z: spot.Z},
			rl.Vector3{X: a.ColumnSize, Y: a.ColumnHeight, Z: a.ColumnSize},
		)
		columns = append(columns, Column{
			Box:   box,
			Torch: newTorch(rl.Vector3{X: spot.X, Y: a.ColumnHeight + a.Torch.Lift, Z: spot.Z}, a.Torch, noise, i),
		})
		obstacles = append(obstacles, box)
	}

	return &Level{
		Collision: physics.NewCollisionWorld(floor, obstacles),
		Floor:     floor,
		Walls:     walls,
		Columns:   columns,
		Spawn:     a.Spawn,
	}, nil
}

func (a Arena) validate() error {
	switch {
	case a.FloorSize <= 0:
		return fmt.Errorf("%w: floor_size must be positive", ErrInvalidArena)
	case a.FloorThickness <= 0:
		return fmt.Errorf("%w: floor_thickness must be positive", ErrInvalidArena)
	case a.WallHeight <= 0 || a.WallThickness <= 0:
		return fmt.Errorf("%w: walls need positive height and thickness", ErrInvalidArena)
	case len(a.Columns) > 0 && (a.ColumnSize <= 0 || a.ColumnHeight <= 0):
		return fmt.Errorf("%w: columns need positive size and height", ErrInvalidArena)
	}

	h := a.FloorSize / 2
	for i, c := range a.Columns {
		if c.X < -h || c.X > h || c.Z < -h || c.Z > h {
			return fmt.Errorf("%w: column %d at (%.1f, %.1f) is off the floor", ErrInvalidArena, i, c.X, c.Z)
		}
	}
	return nil
}
