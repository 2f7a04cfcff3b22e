package audio

import (
	"encoding/binary"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	sampleRate = 44100
	sampleSize = 16
)

// Settings configures the pickup chime.
type Settings struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float32 `yaml:"volume"`
}

func DefaultSettings() Settings {
	return Settings{Enabled: true, Volume: 0.4}
}

// Chime is the coin pickup sound. It is synthesised at startup, so the
// game ships no audio files. Like the rest of raylib it is used from the
// main thread only.
type Chime struct {
	settings Settings
	sound    rl.Sound
	ready    bool
}

func NewChime(s Settings) *Chime {
	return &Chime{settings: s}
}

// Init opens the audio device and builds the sound. A disabled chime or a
// device that fails to open leaves Play as a no-op.
func (c *Chime) Init() bool {
	if !c.settings.Enabled {
		return false
	}
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return false
	}

	pcm := Synth([]float32{987.77, 1318.51}, 0.09)
	wave := rl.NewWave(uint32(len(pcm)/2), sampleRate, sampleSize, 1, pcm)
	c.sound = rl.LoadSoundFromWave(wave)
	rl.SetSoundVolume(c.sound, c.settings.Volume)
	c.ready = true
	return true
}

func (c *Chime) Play() {
	if c.ready {
		rl.PlaySound(c.sound)
	}
}

// Close shuts down the audio system
func (c *Chime) Close() {
	if !c.ready {
		return
	}
	rl.UnloadSound(c.sound)
	rl.CloseAudioDevice()
	c.ready = false
}

// Synth renders the notes back to back as 16-bit mono little-endian PCM.
// Each note lasts noteSeconds and decays exponentially.
func Synth(notes []float32, noteSeconds float32) []byte {
	perNote := int(noteSeconds * sampleRate)
	out := make([]byte, 0, 2*perNote*len(notes))

	for _, freq := range notes {
		for i := range perNote {
			t := float64(i) / sampleRate
			env := math.Exp(-t * 30)
			v := math.Sin(2*math.Pi*float64(freq)*t) * env * 0.8
			out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
		}
	}
	return out
}
