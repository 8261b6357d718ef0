package shooter

import "github.com/vovakirdan/space-shooter/internal/config"

// DifficultyState is the level counter driven by the difficulty timer.
type DifficultyState struct {
	Level   int
	Max     int
	Elapsed float64 // ms accumulated by the difficulty timer
}

// NewDifficultyState starts at level 1.
func NewDifficultyState(maxLevel int) DifficultyState {
	return DifficultyState{Level: 1, Max: max(1, maxLevel)}
}

// Advance raises the level by one unless capped. Reports whether the level changed.
func (d *DifficultyState) Advance() bool {
	if d.Level >= d.Max {
		return false
	}
	d.Level++
	return true
}

// Capped reports whether the level reached its maximum.
func (d DifficultyState) Capped() bool {
	return d.Level >= d.Max
}

// SpawnRates holds the current spawn interval in ms per patrol category.
type SpawnRates struct {
	Enemy    int
	Asteroid int
	Boss     int
}

// ComputeSpawnRates derives the spawn intervals for a level.
func ComputeSpawnRates(cfg config.ShooterConfig, level int) SpawnRates {
	return SpawnRates{
		Enemy:    cfg.Enemy.Spawn.Interval(level),
		Asteroid: cfg.Asteroid.Spawn.Interval(level),
		Boss:     cfg.Boss.Spawn.Interval(level),
	}
}

// For returns the interval for a patrol category, or 0 for others.
func (r SpawnRates) For(c Category) int {
	switch c {
	case CategoryEnemy:
		return r.Enemy
	case CategoryAsteroid:
		return r.Asteroid
	case CategoryBoss:
		return r.Boss
	default:
		return 0
	}
}

// patrolConfig returns the tuning block for a patrol category.
func patrolConfig(cfg config.ShooterConfig, c Category) config.PatrolConfig {
	switch c {
	case CategoryAsteroid:
		return cfg.Asteroid
	case CategoryBoss:
		return cfg.Boss
	default:
		return cfg.Enemy
	}
}
