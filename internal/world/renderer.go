package world

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"coinarena/internal/physics"
)

// Palette colours the arena.
type Palette struct {
	Sky    rl.Color
	Floor  rl.Color
	Wall   rl.Color
	Column rl.Color
	Coin   rl.Color
}

func DefaultPalette() Palette {
	return Palette{
		Sky:    rl.SkyBlue,
		Floor:  rl.DarkGreen,
		Wall:   rl.Gray,
		Column: rl.Beige,
		Coin:   rl.Gold,
	}
}

// Renderer draws the static arena and the coins. Calls must happen inside
// rl.BeginMode3D.
type Renderer struct {
	Palette Palette
	// Culled counts objects skipped by the frustum test in the last Draw.
	Culled int
}

func NewRenderer(p Palette) *Renderer {
	return &Renderer{Palette: p}
}

// Cull returns the columns and coins inside the camera frustum and records
// how many were skipped in Culled. The floor and walls are never culled.
func (r *Renderer) Cull(level *Level, coins *CoinField, camera rl.Camera3D, aspect float32) ([]Column, []Coin) {
	frustum := ExtractFrustum(camera, aspect)
	r.Culled = 0

	columns := make([]Column, 0, len(level.Columns))
	for _, c := range level.Columns {
		if !frustum.ContainsBox(c.Box) {
			r.Culled++
			continue
		}
		columns = append(columns, c)
	}

	if coins == nil {
		return columns, nil
	}
	radius := coins.Radius()
	visible := make([]Coin, 0, coins.Remaining())
	for _, c := range coins.Coins() {
		if !frustum.ContainsSphere(c.Position, radius) {
			r.Culled++
			continue
		}
		visible = append(visible, c)
	}
	return columns, visible
}

// Draw renders the level and coins as seen from camera. now drives the
// torch flicker.
func (r *Renderer) Draw(level *Level, coins *CoinField, camera rl.Camera3D, aspect float32, now float64) {
	columns, visible := r.Cull(level, coins, camera, aspect)

	drawBox(level.Floor, r.Palette.Floor, false)
	for _, w := range level.Walls {
		drawBox(w, r.Palette.Wall, true)
	}
	for _, c := range columns {
		drawBox(c.Box, r.Palette.Column, true)
		rl.DrawSphere(c.Torch.Position, 0.2, c.Torch.Color(now))
	}
	for _, c := range visible {
		drawCoin(c, coins.Radius(), r.Palette.Coin)
	}
}

func drawBox(b physics.AABB, col rl.Color, wires bool) {
	center := b.Center()
	size := b.Size()
	rl.DrawCubeV(center, size, col)
	if wires {
		rl.DrawCubeWiresV(center, size, rl.ColorBrightness(col, -0.3))
	}
}

// drawCoin draws a thin upright disc turned by the coin's rotation.
func drawCoin(c Coin, radius float32, col rl.Color) {
	sin, cos := math.Sincos(float64(c.Rotation))
	half := rl.Vector3{X: float32(cos) * 0.04, Z: float32(sin) * 0.04}
	start := rl.Vector3Subtract(c.Position, half)
	end := rl.Vector3Add(c.Position, half)
	rl.DrawCylinderEx(start, end, radius, radius, 16, col)
}
