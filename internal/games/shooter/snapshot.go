package shooter

import "math"

// EntitySnapshot is the primitive view of one entity.
type EntitySnapshot struct {
	Category Category
	X, Y     float64
	VX, VY   float64
	Health   int
}

// Snapshot captures the simulation state for replay and determinism checks.
type Snapshot struct {
	NowMs       float64
	Health      int
	Score       int
	Level       int
	GameOver    bool
	Spawning    bool
	SpawnRates  SpawnRates
	Timers      int
	ShotsFired  int
	TotalKills  int
	Entities    []EntitySnapshot // registry order, stars excluded
	EntityCount [categoryCount]int
}

// Snapshot returns the current simulation state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		NowMs:      s.now,
		Health:     s.player.Health,
		Score:      s.player.Score,
		Level:      s.difficulty.Level,
		GameOver:   s.player.GameOver(),
		Spawning:   s.spawning,
		SpawnRates: s.rates,
		Timers:     s.timers.Len(),
		ShotsFired: s.stats.ShotsFired,
		TotalKills: s.stats.TotalKills(),
	}

	for _, c := range Categories {
		for _, e := range s.reg.Each(c) {
			if !e.Active {
				continue
			}
			snap.EntityCount[c]++
			if c == CategoryStar {
				continue
			}
			snap.Entities = append(snap.Entities, EntitySnapshot{
				Category: c,
				X:        e.Pos.X,
				Y:        e.Pos.Y,
				VX:       e.Vel.X,
				VY:       e.Vel.Y,
				Health:   e.Health,
			})
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := math.Float64bits(snap.NowMs)
	h = h*31 + uint64(snap.Health)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)               //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.Spawning)
	h = h*31 + uint64(snap.Timers)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShotsFired)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TotalKills)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnRates.Enemy)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnRates.Asteroid) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnRates.Boss)     //#nosec G115 -- hash computation

	for _, n := range snap.EntityCount {
		h = h*31 + uint64(n) //#nosec G115 -- hash computation
	}

	for _, e := range snap.Entities {
		h = h*31 + uint64(e.Category) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + math.Float64bits(e.VX)
		h = h*31 + math.Float64bits(e.VY)
		h = h*31 + uint64(e.Health) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
