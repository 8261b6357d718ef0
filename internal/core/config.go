package core

import "time"

// Runtime defaults used when a field is left zero.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what a game receives on Reset: terminal size, tick rate
// and the seed for its random source.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 means pick one from the clock (see Resolved)
}

// DefaultConfig returns an 80x24 runtime at the default tick rate with no seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// Resolved returns a copy with zero or negative fields replaced by defaults
// and a clock-derived seed when none was given.
func (c RuntimeConfig) Resolved() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = NewSeed()
	}
	return c
}

// TickMillis returns the simulated milliseconds per tick.
func (c RuntimeConfig) TickMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / DefaultTickRate
	}
	return 1000.0 / float64(c.TickRate)
}

// NewSeed returns a non-zero seed taken from the wall clock.
func NewSeed() int64 {
	if s := time.Now().UnixNano(); s != 0 {
		return s
	}
	return 1
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score    int
	Level    int // Current difficulty level
	Health   int // Player health (0-100)
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
