package world

import (
	"github.com/aquilax/go-perlin"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// TorchStyle configures the flame drawn on every column.
type TorchStyle struct {
	Lift      float32 `yaml:"lift"`
	Base      float32 `yaml:"base"`
	Amplitude float32 `yaml:"amplitude"`
	// Speed is noise units per second.
	Speed float32 `yaml:"speed"`
}

func DefaultTorchStyle() TorchStyle {
	return TorchStyle{
		Lift:      0.3,
		Base:      0.75,
		Amplitude: 0.35,
		Speed:     3,
	}
}

// Torch is a flickering light source. Flicker comes from 1D Perlin noise so
// neighbouring torches never pulse in step.
type Torch struct {
	Position rl.Vector3
	style    TorchStyle
	noise    *perlin.Perlin
	phase    float64
}

func newTorch(pos rl.Vector3, style TorchStyle, noise *perlin.Perlin, index int) Torch {
	return Torch{
		Position: pos,
		style:    style,
		noise:    noise,
		phase:    float64(index) * 17.31,
	}
}

// Intensity returns the light level in [0, 1] at the given time in seconds.
func (t Torch) Intensity(at float64) float32 {
	if t.noise == nil {
		return t.style.Base
	}
	n := float32(t.noise.Noise1D(at*float64(t.style.Speed) + t.phase))
	return rl.Clamp(t.style.Base+t.style.Amplitude*n, 0, 1)
}

// Color tints a warm flame colour by the current intensity.
func (t Torch) Color(at float64) rl.Color {
	i := t.Intensity(at)
	return rl.NewColor(255, uint8(120+100*i), uint8(40*i), uint8(155+100*i))
}
