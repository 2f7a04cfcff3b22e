package config

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"coinarena/internal/assets"
	"coinarena/internal/audio"
	"coinarena/internal/camera"
	"coinarena/internal/input"
	"coinarena/internal/locomotion"
	"coinarena/internal/world"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "ARENA_CONFIG"

var ErrInvalid = errors.New("invalid config")

// wallClearance is the margin the boundary walls keep above the jump peak.
const wallClearance = 0.5

type Config struct {
	Window    WindowConfig          `yaml:"window"`
	Log       LogConfig             `yaml:"log"`
	Movement  locomotion.Tuning     `yaml:"movement"`
	Camera    camera.Settings       `yaml:"camera"`
	Input     InputConfig           `yaml:"input"`
	Arena     world.Arena           `yaml:"arena"`
	Coins     world.CoinSettings    `yaml:"coins"`
	Colors    ColorConfig           `yaml:"colors"`
	Character assets.CharacterFiles `yaml:"character"`
	Audio     audio.Settings        `yaml:"audio"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type InputConfig struct {
	// Sensitivity is radians per pixel of mouse motion.
	Sensitivity float32             `yaml:"sensitivity"`
	Bindings    map[string][]string `yaml:"bindings"`
}

type ColorConfig struct {
	Sky    string `yaml:"sky"`
	Floor  string `yaml:"floor"`
	Wall   string `yaml:"wall"`
	Column string `yaml:"column"`
	Coin   string `yaml:"coin"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Coin Arena",
			TargetFPS: 60,
		},
		Log:      LogConfig{Level: "info"},
		Movement: locomotion.DefaultTuning(),
		Camera:   camera.DefaultSettings(),
		Input: InputConfig{
			Sensitivity: 0.003,
			Bindings:    input.DefaultBindings(),
		},
		Arena: world.DefaultArena(),
		Coins: world.DefaultCoinSettings(),
		Colors: ColorConfig{
			Sky:    "#87ceeb",
			Floor:  "#228b22",
			Wall:   "Gray",
			Column: "Beige",
			Coin:   "#ffd700",
		},
		Character: assets.DefaultCharacterFiles(),
		Audio:     audio.DefaultSettings(),
	}
}

// Load reads a YAML file over the defaults. With an empty path it falls
// back to $ARENA_CONFIG, and with neither it returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the controller cannot run with.
func (c Config) Validate() error {
	m := c.Movement
	cam := c.Camera
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	case m.WalkSpeed <= 0:
		return fmt.Errorf("%w: movement.walk_speed must be positive", ErrInvalid)
	case m.Gravity >= 0:
		return fmt.Errorf("%w: movement.gravity must be negative", ErrInvalid)
	case m.JumpImpulse <= -m.Gravity:
		return fmt.Errorf("%w: movement.jump_impulse must exceed one frame of gravity", ErrInvalid)
	case m.TickRate < 0:
		return fmt.Errorf("%w: movement.tick_rate must not be negative", ErrInvalid)
	case m.BodyHalfWidth <= 0 || m.BodyHeight <= 0:
		return fmt.Errorf("%w: movement body must have positive size", ErrInvalid)
	case c.Arena.WallHeight <= m.JumpPeak()+wallClearance:
		return fmt.Errorf("%w: arena.wall_height %.2f does not contain a %.2f jump", ErrInvalid, c.Arena.WallHeight, m.JumpPeak())
	case cam.PitchMin >= cam.PitchMax:
		return fmt.Errorf("%w: camera.pitch_min must be below pitch_max", ErrInvalid)
	case !unitFactor(cam.FollowFactor) || !unitFactor(cam.TurnFactor):
		return fmt.Errorf("%w: camera factors must be in (0, 1]", ErrInvalid)
	case cam.Distance <= 0 || cam.Fovy <= 0:
		return fmt.Errorf("%w: camera distance and fovy must be positive", ErrInvalid)
	case c.Input.Sensitivity <= 0:
		return fmt.Errorf("%w: input.sensitivity must be positive", ErrInvalid)
	case c.Coins.Count < 0 || c.Coins.Radius <= 0:
		return fmt.Errorf("%w: coins need a non-negative count and positive radius", ErrInvalid)
	}

	if _, err := c.Bindings(); err != nil {
		return fmt.Errorf("%w: input.bindings: %v", ErrInvalid, err)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: colors: %v", ErrInvalid, err)
	}
	return nil
}

// Bindings resolves the configured key names to raylib key codes.
func (c Config) Bindings() (input.Bindings, error) {
	return input.ParseBindings(c.Input.Bindings, input.KeyCodes)
}

// Palette resolves the configured colour names.
func (c Config) Palette() (world.Palette, error) {
	var p world.Palette
	for _, e := range []struct {
		dst  *rl.Color
		name string
	}{
		{&p.Sky, c.Colors.Sky},
		{&p.Floor, c.Colors.Floor},
		{&p.Wall, c.Colors.Wall},
		{&p.Column, c.Colors.Column},
		{&p.Coin, c.Colors.Coin},
	} {
		col, err := assets.LookupColor(e.name)
		if err != nil {
			return world.Palette{}, err
		}
		*e.dst = col
	}
	return p, nil
}

func unitFactor(f float32) bool {
	return f > 0 && f <= 1
}
