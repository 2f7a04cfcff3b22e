package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"coinarena/internal/input"
	"coinarena/internal/physics"
)

// Mode selects how the camera offset is derived.
type Mode uint8

const (
	// ModeFixed keeps a constant world-space offset from the player.
	ModeFixed Mode = iota
	// ModeFreeLook orbits the player using the accumulated yaw and pitch.
	ModeFreeLook
)

func (m Mode) String() string {
	if m == ModeFreeLook {
		return "free-look"
	}
	return "fixed"
}

type Settings struct {
	FreeLook     bool       `yaml:"free_look"`
	FixedOffset  rl.Vector3 `yaml:"fixed_offset"`
	Distance     float32    `yaml:"distance"`
	EyeHeight    float32    `yaml:"eye_height"`
	FollowFactor float32    `yaml:"follow_factor"`
	TurnFactor   float32    `yaml:"turn_factor"`
	PitchMin     float32    `yaml:"pitch_min"`
	PitchMax     float32    `yaml:"pitch_max"`
	InitialPitch float32    `yaml:"initial_pitch"`
	Fovy         float32    `yaml:"fovy"`
	// MinHeight is the lowest world Y the camera may sit at. The floor top
	// is y = 0.
	MinHeight float32 `yaml:"min_height"`
}

func DefaultSettings() Settings {
	return Settings{
		FixedOffset:  rl.Vector3{X: 0, Y: 3, Z: 4},
		Distance:     5,
		EyeHeight:    1,
		FollowFactor: 0.1,
		TurnFactor:   0.2,
		PitchMin:     -0.5,
		PitchMax:     0.8,
		InitialPitch: 0.35,
		Fovy:         75,
		MinHeight:    0.3,
	}
}

// Rig is the third-person camera plus the character facing smoother.
type Rig struct {
	Position rl.Vector3
	Target   rl.Vector3
	Yaw      float32
	Pitch    float32

	mode     Mode
	settings Settings
}

// New creates a rig looking down -Z, the same way the fixed offset does.
func New(s Settings) *Rig {
	r := &Rig{
		Yaw:      math.Pi,
		Pitch:    s.InitialPitch,
		settings: s,
	}
	if s.FreeLook {
		r.mode = ModeFreeLook
	}
	return r
}

func (r *Rig) Mode() Mode {
	return r.mode
}

// SetMode switches between fixed and free-look. The position keeps
// lerping from wherever it is, so the switch is smooth.
func (r *Rig) SetMode(m Mode) {
	r.mode = m
	if m == ModeFixed {
		r.Yaw = math.Pi
	}
}

// Look accumulates a look delta. Pitch is clamped so the orbit never flips.
// Fixed mode ignores look input.
func (r *Rig) Look(d input.LookDelta) {
	if r.mode != ModeFreeLook {
		return
	}
	r.Yaw = wrapAngle(r.Yaw + d.Yaw)
	r.Pitch = rl.Clamp(r.Pitch+d.Pitch, r.settings.PitchMin, r.settings.PitchMax)
}

// Face turns current toward the direction of move by TurnFactor of the
// remaining arc. A zero move keeps the current facing.
func (r *Rig) Face(current float32, move rl.Vector3) float32 {
	if physics.IsZeroXZ(move) {
		return current
	}
	target := float32(math.Atan2(float64(move.X), float64(move.Z)))
	if current == target {
		return current
	}

	up := rl.Vector3{Y: 1}
	from := rl.QuaternionFromAxisAngle(up, current)
	to := rl.QuaternionFromAxisAngle(up, target)
	q := rl.QuaternionSlerp(from, to, r.settings.TurnFactor)
	return yawOf(q)
}

// Follow moves the camera a FollowFactor step toward its ideal position
// and aims it at the player's eye point.
func (r *Rig) Follow(player rl.Vector3) {
	r.Target = r.eye(player)
	r.Position = rl.Vector3Lerp(r.Position, r.ideal(player), r.settings.FollowFactor)
}

// Snap places the camera at its ideal position with no lag.
func (r *Rig) Snap(player rl.Vector3) {
	r.Target = r.eye(player)
	r.Position = r.ideal(player)
}

func (r *Rig) eye(player rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(player, rl.Vector3{Y: r.settings.EyeHeight})
}

func (r *Rig) ideal(player rl.Vector3) rl.Vector3 {
	if r.mode == ModeFixed {
		return rl.Vector3Add(player, r.settings.FixedOffset)
	}

	yaw := float64(r.Yaw)
	pitch := float64(r.Pitch)
	d := float64(r.settings.Distance)
	offset := rl.Vector3{
		X: float32(-math.Sin(yaw) * math.Cos(pitch) * d),
		Y: float32(math.Sin(pitch) * d),
		Z: float32(-math.Cos(yaw) * math.Cos(pitch) * d),
	}
	pos := rl.Vector3Add(r.eye(player), offset)
	pos.Y = max(pos.Y, r.settings.MinHeight)
	return pos
}

func (r *Rig) Camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   r.Position,
		Target:     r.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       r.settings.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// yawOf extracts the rotation about +Y from a quaternion that only
// rotates about +Y.
func yawOf(q rl.Quaternion) float32 {
	return wrapAngle(float32(2 * math.Atan2(float64(q.Y), float64(q.W))))
}

func wrapAngle(a float32) float32 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
