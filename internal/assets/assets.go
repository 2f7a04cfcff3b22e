package assets

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"coinarena/internal/anim"
	"coinarena/internal/locomotion"
)

var ErrMissingAsset = errors.New("asset not found")

// Color name mapping for config files
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// LookupColor resolves a colour name ("Gold") or a hex triplet ("#87ceeb").
func LookupColor(name string) (rl.Color, error) {
	if c, ok := colorByName[name]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(name, "#"); ok && len(hex) == 6 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return rl.White, fmt.Errorf("colour %q: %w", name, err)
		}
		return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255), nil
	}
	return rl.White, fmt.Errorf("unknown colour %q", name)
}

// CharacterFiles names the model and one animation file per state. Each
// animation file contributes its first clip.
type CharacterFiles struct {
	Model string            `yaml:"model"`
	Clips map[string]string `yaml:"clips"`
	Scale float32           `yaml:"scale"`
	FPS   float32           `yaml:"fps"`
}

func DefaultCharacterFiles() CharacterFiles {
	return CharacterFiles{
		Model: "assets/models/character.glb",
		Clips: map[string]string{
			"idle": "assets/models/idle.glb",
			"walk": "assets/models/walk.glb",
			"jump": "assets/models/jump.glb",
		},
		Scale: 1,
		FPS:   30,
	}
}

// Character is a loaded, animated player model.
type Character struct {
	Model rl.Model
	Clips map[locomotion.State]anim.Clip
	Scale float32

	anims [][]rl.ModelAnimation
}

var stateByName = map[string]locomotion.State{
	"idle": locomotion.Idle,
	"walk": locomotion.Walk,
	"run":  locomotion.Run,
	"jump": locomotion.Jump,
}

// LoadCharacter loads the model and its clips. It must run on the main
// thread after the window exists. A missing model is ErrMissingAsset; a
// missing clip is logged and skipped.
func LoadCharacter(files CharacterFiles, log *zap.Logger) (*Character, error) {
	if _, err := os.Stat(files.Model); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingAsset, files.Model)
	}

	c := &Character{
		Model: rl.LoadModel(files.Model),
		Clips: make(map[locomotion.State]anim.Clip),
		Scale: files.Scale,
	}

	for name, path := range files.Clips {
		state, ok := stateByName[strings.ToLower(name)]
		if !ok {
			log.Warn("unknown animation state", zap.String("state", name))
			continue
		}
		if _, err := os.Stat(path); err != nil {
			log.Warn("animation file missing", zap.String("state", name), zap.String("path", path))
			continue
		}
		anims := rl.LoadModelAnimations(path)
		if len(anims) == 0 {
			log.Warn("animation file has no clips", zap.String("path", path))
			continue
		}
		c.anims = append(c.anims, anims)
		c.Clips[state] = &modelClip{model: c.Model, anim: anims[0], fps: files.FPS}
		log.Debug("animation loaded", zap.Stringer("state", state), zap.Int32("frames", anims[0].FrameCount))
	}
	return c, nil
}

func (c *Character) Unload() {
	for _, a := range c.anims {
		rl.UnloadModelAnimations(a)
	}
	rl.UnloadModel(c.Model)
}

// modelClip plays a skeletal animation on a shared model.
type modelClip struct {
	model   rl.Model
	anim    rl.ModelAnimation
	fps     float32
	frame   float32
	playing bool
}

func (m *modelClip) Play() {
	m.playing = true
}

func (m *modelClip) Stop() {
	m.playing = false
	m.frame = 0
}

func (m *modelClip) Advance(dt float32) {
	if !m.playing || m.anim.FrameCount == 0 {
		return
	}
	m.frame += dt * m.fps
	for m.frame >= float32(m.anim.FrameCount) {
		m.frame -= float32(m.anim.FrameCount)
	}
	rl.UpdateModelAnimation(m.model, m.anim, int32(m.frame))
}
