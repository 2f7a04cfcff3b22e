package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"coinarena/internal/assets"
	"coinarena/internal/audio"
	"coinarena/internal/config"
	"coinarena/internal/game"
	"coinarena/internal/input"
	"coinarena/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults to $"+config.EnvPath+")")
	logLevel := flag.String("log-level", "", "log level, overrides the config")
	dev := flag.Bool("dev", false, "human-readable development logging")
	freeLook := flag.Bool("free-look", false, "start with the free-look camera")
	flag.Parse()

	if *configPath != "" {
		if abs, err := filepath.Abs(*configPath); err == nil {
			*configPath = abs
		}
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *dev {
		cfg.Log.Development = true
	}
	if *freeLook {
		cfg.Camera.FreeLook = true
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("arena stopped", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}
	g, err := game.New(cfg, log)
	if err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(cfg.Window.TargetFPS)

	// Models need the GL context, so they load after the window opens.
	character, err := assets.LoadCharacter(cfg.Character, log)
	switch {
	case errors.Is(err, assets.ErrMissingAsset):
		log.Warn("no character model, drawing a capsule", zap.Error(err))
	case err != nil:
		return err
	default:
		defer character.Unload()
		g.Attach(character)
	}

	if err := g.Spawn(); err != nil {
		return fmt.Errorf("spawn: %w", err)
	}

	chime := audio.NewChime(cfg.Audio)
	if !chime.Init() && cfg.Audio.Enabled {
		log.Warn("audio device unavailable, pickups are silent")
	}
	defer chime.Close()

	poller := input.RaylibPoller{Bindings: bindings}
	for !rl.WindowShouldClose() {
		handlePointer()
		if rl.IsKeyPressed(rl.KeyC) {
			g.ToggleMode()
		}

		f := g.Frame(poller.Poll(), rl.GetFrameTime())
		if f.Picked > 0 {
			chime.Play()
		}
		if f.StateChanged {
			log.Debug("locomotion state", zap.Stringer("state", f.State))
		}

		g.Draw()
	}

	log.Info("arena closed",
		zap.Int("collected", g.Coins.Collected()),
		zap.Stringer("camera", g.Mode()),
	)
	return nil
}

// handlePointer captures the mouse on a click outside the HUD controls and
// releases it on Tab. Look input only counts while captured.
func handlePointer() {
	switch {
	case !rl.IsCursorHidden() && rl.IsMouseButtonPressed(rl.MouseLeftButton) &&
		!rl.CheckCollisionPointRec(rl.GetMousePosition(), game.HUDControls):
		rl.DisableCursor()
	case rl.IsCursorHidden() && rl.IsKeyPressed(rl.KeyTab):
		rl.EnableCursor()
	}
}
