package shooter

import (
	"math"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Autopilot is a simple bot for headless runs: it lines up with the
// closest hostile ahead of the ship, dodges incoming bullets and keeps firing.
type Autopilot struct {
	DodgeDistance float64 // how far ahead enemy bullets are considered, px
}

// NewAutopilot returns an autopilot with default tuning.
func NewAutopilot() Autopilot {
	return Autopilot{DodgeDistance: 120}
}

// Input computes this frame's directional vector and fire state.
func (a Autopilot) Input(s *Simulation) (core.Vec, bool) {
	ship, ok := s.Ship()
	if !ok {
		return core.Vec{}, false
	}
	radius := ship.Radius(s.cfg.World.BaseRadius)

	for _, b := range s.reg.Each(CategoryEnemyBullet) {
		if !b.Active {
			continue
		}
		dx := b.Pos.X - ship.Pos.X
		dy := b.Pos.Y - ship.Pos.Y
		if dx > 0 && dx < a.DodgeDistance && math.Abs(dy) < radius*1.5 {
			if dy >= 0 {
				return core.V(0, -1), true
			}
			return core.V(0, 1), true
		}
	}

	var target *Entity
	for _, c := range patrolCategories {
		for _, e := range s.reg.Each(c) {
			if !e.Active || e.Pos.X < ship.Pos.X {
				continue
			}
			if target == nil || e.Pos.X < target.Pos.X {
				target = e
			}
		}
	}
	if target == nil {
		return core.Vec{}, true
	}

	dy := target.Pos.Y - ship.Pos.Y
	if math.Abs(dy) < radius/2 {
		return core.Vec{}, true
	}
	return core.V(0, math.Copysign(1, dy)), true
}

// Drive feeds the autopilot's input into the simulation and advances one frame.
func (a Autopilot) Drive(s *Simulation, deltaMs float64) {
	dir, fire := a.Input(s)
	s.OnDirectionalInput(dir)
	s.OnFireInput(fire)
	s.OnFrameTick(deltaMs)
}
