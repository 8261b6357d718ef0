package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// bossShotCount is the number of bullets a boss fires per shoot tick.
const bossShotCount = 2

// trySpawn creates a patrol entity of category c when its interval has elapsed.
func (s *Simulation) trySpawn(c Category, now float64) bool {
	interval := float64(s.rates.For(c))
	if interval <= 0 || now-s.lastSpawn[c] < interval {
		return false
	}
	s.lastSpawn[c] = now
	s.spawnPatrol(c)
	return true
}

// spawnPatrol creates an enemy, asteroid or boss just right of the viewport.
// Speed, patrol speed, health and fire rate scale with the current level.
func (s *Simulation) spawnPatrol(c Category) *Entity {
	pc := patrolConfig(s.cfg, c)
	level := s.difficulty.Level
	speedMul := config.Multiplier(level, pc.SpeedK)

	r := s.cfg.World.BaseRadius * pc.Scale
	y := s.rng.Range(r, s.cfg.World.Height-r)
	health := max(1, config.ScaledHealth(pc.BaseHealth, pc.HealthK, level))

	e := s.reg.Add(&Entity{
		Category:  c,
		Pos:       core.V(s.cfg.World.Width+r, y),
		Vel:       core.V(pc.VelocityX*speedMul, 0),
		Scale:     pc.Scale,
		Health:    health,
		MaxHealth: health,
		OriginalY: y,
		MoveRange: s.rng.Range(pc.MoveRange.Min, pc.MoveRange.Max),
		MoveSpeed: s.rng.Range(pc.MoveSpeed.Min, pc.MoveSpeed.Max) * speedMul,
		SpawnedAt: s.now,
	})

	if pc.ShootDelayMs > 0 {
		s.timers.Every(s.now, float64(pc.ShootDelayMs)/(speedMul*1.5), EventShoot, e.Handle)
	}

	if c == CategoryBoss {
		s.log.Debug("boss spawned", "level", level, "health", health, "y", int(y))
	}
	return e
}

// shootFrom fires the weapon of a live enemy or boss.
func (s *Simulation) shootFrom(e *Entity) {
	if !e.Active || s.player.GameOver() {
		return
	}
	speed := s.cfg.Bullets.EnemySpeed * config.Multiplier(s.difficulty.Level, s.cfg.Bullets.SpeedK)

	if e.Category == CategoryBoss {
		spacing := s.cfg.Boss.ShotSpacing
		for i := range bossShotCount {
			offset := (float64(i) - float64(bossShotCount-1)/2) * spacing
			s.spawnBullet(CategoryEnemyBullet, e.Pos.Add(core.V(0, offset)), -speed)
		}
	} else {
		s.spawnBullet(CategoryEnemyBullet, e.Pos, -speed)
	}
	s.sound(SoundEnemyShoot, 0.6, 1)
}

// fireIfReady emits a player bullet while fire is held and the cooldown has passed.
func (s *Simulation) fireIfReady() {
	if !s.firing || s.now-s.lastShot < float64(s.cfg.Player.FireDelayMs) {
		return
	}
	ship, ok := s.reg.Get(s.playerHandle)
	if !ok {
		return
	}
	s.lastShot = s.now
	nose := ship.Pos.Add(core.V(ship.Radius(s.cfg.World.BaseRadius), 0))
	s.spawnBullet(CategoryPlayerBullet, nose, s.cfg.Bullets.PlayerSpeed)
	s.stats.ShotsFired++
	s.sound(SoundShoot, 0.5, 1)
}

// spawnBullet creates a bullet moving horizontally with velocity vx and
// schedules its time-to-live expiry.
func (s *Simulation) spawnBullet(c Category, pos core.Vec, vx float64) *Entity {
	b := s.reg.Add(&Entity{
		Category:  c,
		Pos:       pos,
		Vel:       core.V(vx, 0),
		Scale:     s.cfg.Bullets.Scale,
		SpawnedAt: s.now,
	})
	s.timers.After(s.now, float64(s.cfg.Bullets.TTLMs), EventExpire, b.Handle)
	return b
}

// maybeDropEnergy rolls the drop chance once for a destroyed enemy or boss.
// A boss that passes the roll leaves several jittered drops.
func (s *Simulation) maybeDropEnergy(e *Entity) {
	if s.rng.Range(0, 1) >= s.cfg.Drops.Chance {
		return
	}
	if e.Category != CategoryBoss {
		s.spawnDrop(e.Pos)
		return
	}
	j := s.cfg.Drops.Jitter
	for range s.cfg.Drops.BossCount {
		s.spawnDrop(e.Pos.Add(core.V(s.rng.Range(-j, j), s.rng.Range(-j, j))))
	}
}

func (s *Simulation) spawnDrop(pos core.Vec) *Entity {
	d := s.reg.Add(&Entity{
		Category:  CategoryDrop,
		Pos:       pos,
		Scale:     s.cfg.Drops.Scale,
		SpawnedAt: s.now,
	})
	s.timers.After(s.now, float64(s.cfg.Drops.LifetimeMs), EventExpire, d.Handle)
	return d
}
