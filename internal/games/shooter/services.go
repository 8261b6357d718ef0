package shooter

import (
	"math/rand"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Overlapper decides whether two entities touch.
type Overlapper interface {
	Overlaps(a, b *Entity) bool
}

// OverlapFunc adapts a function to the Overlapper interface.
type OverlapFunc func(a, b *Entity) bool

// Overlaps calls f(a, b).
func (f OverlapFunc) Overlaps(a, b *Entity) bool { return f(a, b) }

// CircleOverlapper treats every entity as a circle of BaseRadius*Scale.
type CircleOverlapper struct {
	BaseRadius float64
}

// Overlaps reports whether the two hit circles intersect.
func (c CircleOverlapper) Overlaps(a, b *Entity) bool {
	return core.CirclesOverlap(a.Pos, a.Radius(c.BaseRadius), b.Pos, b.Radius(c.BaseRadius))
}

// Random supplies uniformly distributed numbers.
type Random interface {
	// Range returns a value in [min, max).
	Range(min, max float64) float64
}

// seededRandom is the default Random backed by math/rand.
type seededRandom struct {
	rng *rand.Rand
}

// NewRandom returns a deterministic Random for the given seed.
func NewRandom(seed int64) Random {
	return &seededRandom{rng: rand.New(rand.NewSource(seed))}
}

func (r *seededRandom) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.rng.Float64()*(max-min)
}

// SoundID names a sound cue.
type SoundID int

const (
	SoundShoot SoundID = iota
	SoundEnemyShoot
	SoundHit
	SoundExplosion
	SoundPickup
	SoundLevelUp
	SoundGameOver
)

// String returns the cue name.
func (s SoundID) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundEnemyShoot:
		return "enemy_shoot"
	case SoundHit:
		return "hit"
	case SoundExplosion:
		return "explosion"
	case SoundPickup:
		return "pickup"
	case SoundLevelUp:
		return "level_up"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SoundOptions tune playback of a cue.
type SoundOptions struct {
	Volume float64 // 0..1
	Rate   float64 // playback rate, 1 = normal
}

// EffectKind names a transient visual effect.
type EffectKind int

const (
	EffectExplosion EffectKind = iota
	EffectHit
	EffectPickup
)

// Presenter receives everything the simulation wants shown or played.
// Implementations must not call back into the simulation.
type Presenter interface {
	PlaySound(id SoundID, opts SoundOptions)
	SpawnEffect(kind EffectKind, pos core.Vec, scale float64)
	LevelUp(level int)
	GameOver(score int)
}

// NopPresenter ignores every notification.
type NopPresenter struct{}

func (NopPresenter) PlaySound(SoundID, SoundOptions)            {}
func (NopPresenter) SpawnEffect(EffectKind, core.Vec, float64) {}
func (NopPresenter) LevelUp(int)                                {}
func (NopPresenter) GameOver(int)                               {}

// MultiPresenter fans notifications out to several presenters.
type MultiPresenter []Presenter

func (m MultiPresenter) PlaySound(id SoundID, opts SoundOptions) {
	for _, p := range m {
		p.PlaySound(id, opts)
	}
}

func (m MultiPresenter) SpawnEffect(kind EffectKind, pos core.Vec, scale float64) {
	for _, p := range m {
		p.SpawnEffect(kind, pos, scale)
	}
}

func (m MultiPresenter) LevelUp(level int) {
	for _, p := range m {
		p.LevelUp(level)
	}
}

func (m MultiPresenter) GameOver(score int) {
	for _, p := range m {
		p.GameOver(score)
	}
}
