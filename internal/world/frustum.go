package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"coinarena/internal/physics"
)

const (
	frustumNear float32 = 0.1
	frustumFar  float32 = 500.0
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the culling planes for a perspective camera with
// the given viewport aspect ratio (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	proj := rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, frustumNear, frustumFar)
	vp := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}

	var f Frustum
	for i := range 3 {
		f.planes[2*i] = planeFrom(rows[3], rows[i], 1)
		f.planes[2*i+1] = planeFrom(rows[3], rows[i], -1)
	}
	return f
}

// planeFrom combines row4 with +/- another row and normalizes the result.
func planeFrom(w, r [4]float32, sign float32) Plane {
	p := Plane{
		normal: rl.Vector3{
			X: w[0] + sign*r[0],
			Y: w[1] + sign*r[1],
			Z: w[2] + sign*r[2],
		},
		distance: w[3] + sign*r[3],
	}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}

// ContainsBox tests the box corner furthest along each plane normal; the
// box is culled only when that corner is behind a plane.
func (f *Frustum) ContainsBox(box physics.AABB) bool {
	for _, p := range f.planes {
		corner := box.Min
		if p.normal.X >= 0 {
			corner.X = box.Max.X
		}
		if p.normal.Y >= 0 {
			corner.Y = box.Max.Y
		}
		if p.normal.Z >= 0 {
			corner.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(p.normal, corner)+p.distance < 0 {
			return false
		}
	}
	return true
}
