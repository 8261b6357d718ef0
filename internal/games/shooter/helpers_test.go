package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// fixedRandom always returns the same point of the requested range.
type fixedRandom struct {
	u float64
}

func (f fixedRandom) Range(min, max float64) float64 {
	return min + (max-min)*f.u
}

// recorder is a Presenter that remembers every notification.
type recorder struct {
	sounds    []SoundID
	effects   []EffectKind
	levels    []int
	gameOvers []int
}

func (r *recorder) PlaySound(id SoundID, _ SoundOptions) { r.sounds = append(r.sounds, id) }
func (r *recorder) SpawnEffect(k EffectKind, _ core.Vec, _ float64) {
	r.effects = append(r.effects, k)
}
func (r *recorder) LevelUp(level int)  { r.levels = append(r.levels, level) }
func (r *recorder) GameOver(score int) { r.gameOvers = append(r.gameOvers, score) }

var neverOverlap = OverlapFunc(func(a, b *Entity) bool { return false })

func testConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Stars.Count = 0
	return cfg
}

// newTestSim builds a simulation with no stars and a fixed random source.
func newTestSim(u float64, opts ...Option) *Simulation {
	all := append([]Option{WithRandom(fixedRandom{u: u})}, opts...)
	return NewSimulation(testConfig(), 1, all...)
}

// mustShip returns the player entity, panicking if it is gone.
func mustShip(s *Simulation) *Entity {
	ship, ok := s.Ship()
	if !ok {
		panic("player ship not alive")
	}
	return ship
}
