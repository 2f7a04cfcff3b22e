package game

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"coinarena/internal/anim"
	"coinarena/internal/assets"
	"coinarena/internal/camera"
	"coinarena/internal/config"
	"coinarena/internal/input"
	"coinarena/internal/locomotion"
	"coinarena/internal/world"
)

// Frame is what one call to Game.Frame produced.
type Frame struct {
	// Ready is false while the player has not spawned; nothing else is set.
	Ready        bool
	Player       locomotion.PlayerState
	Camera       rl.Camera3D
	State        locomotion.State
	StateChanged bool
	// Picked is the number of coins collected this frame.
	Picked    int
	Collected int
}

type Game struct {
	Level  *world.Level
	Coins  *world.CoinField
	Player locomotion.PlayerState

	integrator *locomotion.Integrator
	sampler    input.Sampler
	rig        *camera.Rig
	animator   *anim.Animator
	character  *assets.Character
	renderer   *world.Renderer
	ready      bool
	styled     bool
	log        *zap.Logger
}

// New builds the arena and scatters the coins. The player does not exist
// until Spawn.
func New(cfg config.Config, log *zap.Logger) (*Game, error) {
	level, err := cfg.Arena.Build()
	if err != nil {
		return nil, fmt.Errorf("build arena: %w", err)
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	seed := cfg.Coins.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	coins := world.SpawnCoins(cfg.Coins, level.Collision, rand.New(rand.NewSource(seed)))
	if coins.Remaining() < cfg.Coins.Count {
		log.Warn("some coins could not be placed", zap.Int("wanted", cfg.Coins.Count), zap.Int("placed", coins.Remaining()))
	}

	log.Info("arena built",
		zap.Int("obstacles", len(level.Collision.Obstacles)),
		zap.Int("coins", coins.Remaining()),
		zap.Int64("coin_seed", seed),
	)

	return &Game{
		Level:      level,
		Coins:      coins,
		integrator: locomotion.NewIntegrator(cfg.Movement),
		sampler:    input.Sampler{Sensitivity: cfg.Input.Sensitivity},
		rig:        camera.New(cfg.Camera),
		animator:   anim.NewAnimator(nil, log),
		renderer:   world.NewRenderer(palette),
		log:        log,
	}, nil
}

// Attach gives the player a model. Without one the player is drawn as a
// capsule and animation state changes are only reported.
func (g *Game) Attach(c *assets.Character) {
	g.character = c
	g.animator = anim.NewAnimator(c.Clips, g.log)
	if g.ready {
		g.animator.Set(g.Player.State)
	}
}

// Spawn places the player at the level spawn point and snaps the camera
// behind it. Frames before a successful Spawn are no-ops.
func (g *Game) Spawn() error {
	p, err := g.integrator.Spawn(g.Level.Spawn, g.Level.Collision)
	if err != nil {
		return err
	}
	p.Facing = g.rig.Yaw
	g.Player = p
	g.rig.Snap(p.Position)
	g.animator.Set(p.State)
	g.ready = true

	g.log.Info("player spawned",
		zap.Float32("x", p.Position.X),
		zap.Float32("y", p.Position.Y),
		zap.Float32("z", p.Position.Z),
	)
	return nil
}

func (g *Game) Ready() bool {
	return g.ready
}

func (g *Game) Rig() *camera.Rig {
	return g.rig
}

func (g *Game) Mode() camera.Mode {
	return g.rig.Mode()
}

// SetMode switches the camera. Free-look also makes movement camera
// relative; fixed mode moves along world axes.
func (g *Game) SetMode(m camera.Mode) {
	if g.rig.Mode() == m {
		return
	}
	g.rig.SetMode(m)
	g.log.Info("camera mode", zap.Stringer("mode", m))
}

func (g *Game) ToggleMode() {
	if g.rig.Mode() == camera.ModeFreeLook {
		g.SetMode(camera.ModeFixed)
		return
	}
	g.SetMode(camera.ModeFreeLook)
}

func (g *Game) Sensitivity() float32 {
	return g.sampler.Sensitivity
}

func (g *Game) SetSensitivity(s float32) {
	g.sampler.Sensitivity = s
}

// Frame runs one tick: sample input, integrate, orient, classify, then
// pick up coins. dt only matters when the tuning sets a tick rate.
func (g *Game) Frame(snap input.Snapshot, dt float32) Frame {
	if !g.ready {
		return Frame{}
	}

	// This frame's look is applied first so camera-relative movement uses
	// the yaw the player is seeing.
	g.rig.Look(g.sampler.Look(snap))
	g.sampler.CameraRelative = g.rig.Mode() == camera.ModeFreeLook
	intent := g.sampler.Sample(snap, g.rig.Yaw)

	prev := g.Player
	next := g.integrator.Step(prev, intent, g.Level.Collision, dt)
	next.Facing = g.rig.Face(prev.Facing, intent.Move)
	next.State = anim.Classify(next.Grounded, next.Moved, intent.Tier)
	g.rig.Follow(next.Position)
	g.Player = next

	changed := next.State != prev.State
	if changed {
		g.animator.Set(next.State)
	}
	g.animator.Update(dt)

	picked := g.Coins.Collect(next.Box)
	for _, c := range picked {
		g.log.Info("coin collected", zap.Stringer("coin", c.ID), zap.Int("total", g.Coins.Collected()))
	}
	g.Coins.Spin()

	return Frame{
		Ready:        true,
		Player:       next,
		Camera:       g.rig.Camera3D(),
		State:        next.State,
		StateChanged: changed,
		Picked:       len(picked),
		Collected:    g.Coins.Collected(),
	}
}
