package shooter

import (
	"math"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// movePlayer steers the ship by the current directional input. Vectors
// shorter than the deadzone stop the ship; longer ones are normalized.
func (s *Simulation) movePlayer(dt float64) {
	ship, ok := s.reg.Get(s.playerHandle)
	if !ok {
		return
	}

	ship.Vel = core.Vec{}
	if s.dir.Len() < s.cfg.Player.Deadzone || s.dir.Len() == 0 {
		return
	}
	ship.Vel = s.dir.Normalize().Scale(s.cfg.Player.Speed)
	ship.Pos = ship.Pos.Add(ship.Vel.Scale(dt))

	r := ship.Radius(s.cfg.World.BaseRadius)
	ship.Pos.X = core.ClampF(ship.Pos.X, r, s.cfg.World.Width-r)
	ship.Pos.Y = core.ClampF(ship.Pos.Y, r, s.cfg.World.Height-r)
}

// updateMovement integrates every non-player entity for one frame.
// Patrol entities freeze once the game is over; stars never stop.
func (s *Simulation) updateMovement(dt float64) {
	s.moveStars(dt)

	if !s.player.GameOver() {
		ship, tracking := s.reg.Get(s.playerHandle)
		var targetY float64
		if tracking {
			targetY = ship.Pos.Y
		}
		for _, c := range patrolCategories {
			for _, e := range s.reg.Each(c) {
				if e.Active {
					s.movePatrol(e, targetY, tracking, dt)
				}
			}
		}
	}

	s.moveBullets(dt)
	s.moveDrops(dt)
}

func (s *Simulation) moveStars(dt float64) {
	for _, star := range s.reg.Each(CategoryStar) {
		if !star.Active {
			continue
		}
		star.Pos = star.Pos.Add(star.Vel.Scale(dt))
		if star.Pos.X < 0 {
			star.Pos.X = s.cfg.World.Width
			star.Pos.Y = s.rng.Range(0, s.cfg.World.Height)
			star.Vel.X = -s.rng.Range(s.cfg.Stars.MinSpeed, s.cfg.Stars.MaxSpeed)
		}
	}
}

// movePatrol tracks the player's y outside the deadband, clamps the vertical
// excursion to OriginalY±MoveRange and despawns entities that left the screen.
func (s *Simulation) movePatrol(e *Entity, targetY float64, tracking bool, dt float64) {
	e.Vel.Y = 0
	if tracking {
		dy := targetY - e.Pos.Y
		if math.Abs(dy) > s.cfg.Combat.Deadband {
			e.Vel.Y = math.Copysign(e.MoveSpeed, dy)
		}
	}

	e.Pos = e.Pos.Add(e.Vel.Scale(dt))

	lo, hi := e.OriginalY-e.MoveRange, e.OriginalY+e.MoveRange
	switch {
	case e.Pos.Y < lo:
		e.Pos.Y = lo
		e.Vel.Y = 0
	case e.Pos.Y > hi:
		e.Pos.Y = hi
		e.Vel.Y = 0
	}

	if e.Pos.X < s.cfg.World.DespawnX {
		s.reg.Destroy(e)
	}
}

// moveBullets advances bullets and removes those past the horizontal bounds.
func (s *Simulation) moveBullets(dt float64) {
	for _, b := range s.reg.Each(CategoryPlayerBullet) {
		if !b.Active {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		if b.Pos.X > s.cfg.World.Width {
			s.reg.Destroy(b)
		}
	}
	for _, b := range s.reg.Each(CategoryEnemyBullet) {
		if !b.Active {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		if b.Pos.X < 0 {
			s.reg.Destroy(b)
		}
	}
}

// moveDrops drifts energy drops horizontally toward the player.
func (s *Simulation) moveDrops(dt float64) {
	ship, ok := s.reg.Get(s.playerHandle)
	for _, d := range s.reg.Each(CategoryDrop) {
		if !d.Active {
			continue
		}
		d.Vel = core.V(-s.cfg.Drops.Speed, 0)
		if ok {
			dx := ship.Pos.X - d.Pos.X
			step := s.cfg.Drops.Speed * dt
			if math.Abs(dx) <= step {
				d.Vel.X = 0
				d.Pos.X = ship.Pos.X
			} else {
				d.Vel.X = math.Copysign(s.cfg.Drops.Speed, dx)
			}
		}
		d.Pos = d.Pos.Add(d.Vel.Scale(dt))
		if d.Pos.Y < 0 || d.Pos.Y > s.cfg.World.Height {
			s.reg.Destroy(d)
		}
	}
}
