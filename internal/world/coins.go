package world

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"coinarena/internal/physics"
)

type CoinSettings struct {
	Count int `yaml:"count"`
	// Spread is the side of the square, centred on the origin, coins land in.
	Spread       float32 `yaml:"spread"`
	Height       float32 `yaml:"height"`
	Radius       float32 `yaml:"radius"`
	SpinPerFrame float32 `yaml:"spin_per_frame"`
	// Seed drives placement; zero picks a fresh seed per run.
	Seed int64 `yaml:"seed"`
}

func DefaultCoinSettings() CoinSettings {
	return CoinSettings{
		Count:        15,
		Spread:       40,
		Height:       0.3,
		Radius:       0.3,
		SpinPerFrame: 0.5,
	}
}

type Coin struct {
	ID       uuid.UUID
	Position rl.Vector3
	Rotation float32
}

// maxPlacementTries bounds the re-rolls for a coin that lands in an obstacle.
const maxPlacementTries = 32

// CoinField is the set of coins still lying in the arena plus the pickup
// counter.
type CoinField struct {
	coins     []Coin
	settings  CoinSettings
	collected int
}

// SpawnCoins scatters coins across the arena, re-rolling any that would sit
// inside an obstacle. A coin that cannot be placed is dropped.
func SpawnCoins(s CoinSettings, world *physics.CollisionWorld, rng *rand.Rand) *CoinField {
	f := &CoinField{settings: s, coins: make([]Coin, 0, s.Count)}
	for range s.Count {
		for range maxPlacementTries {
			pos := rl.Vector3{
				X: (rng.Float32() - 0.5) * s.Spread,
				Y: s.Height,
				Z: (rng.Float32() - 0.5) * s.Spread,
			}
			c := Coin{ID: uuid.New(), Position: pos}
			if !world.Blocked(f.box(c)) {
				f.coins = append(f.coins, c)
				break
			}
		}
	}
	return f
}

func (f *CoinField) box(c Coin) physics.AABB {
	d := 2 * f.settings.Radius
	return physics.NewAABBFromCenter(c.Position, rl.Vector3{X: d, Y: d, Z: d})
}

// Collect removes every coin overlapping player and returns them.
func (f *CoinField) Collect(player physics.AABB) []Coin {
	var taken []Coin
	kept := f.coins[:0]
	for _, c := range f.coins {
		if player.Intersects(f.box(c)) {
			taken = append(taken, c)
			continue
		}
		kept = append(kept, c)
	}
	f.coins = kept
	f.collected += len(taken)
	return taken
}

// Spin advances every coin's rotation by one frame.
func (f *CoinField) Spin() {
	for i := range f.coins {
		f.coins[i].Rotation = float32(math.Mod(float64(f.coins[i].Rotation+f.settings.SpinPerFrame), 2*math.Pi))
	}
}

func (f *CoinField) Coins() []Coin {
	return f.coins
}

func (f *CoinField) Collected() int {
	return f.collected
}

func (f *CoinField) Remaining() int {
	return len(f.coins)
}

func (f *CoinField) Radius() float32 {
	return f.settings.Radius
}
