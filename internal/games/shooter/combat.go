package shooter

// resolveCollisions checks every damaging pair once per frame.
// Entities destroyed earlier in the pass are skipped by later checks.
func (s *Simulation) resolveCollisions() {
	for _, b := range s.reg.Each(CategoryPlayerBullet) {
		if b.Active {
			s.resolveBullet(b)
		}
	}

	ship, ok := s.reg.Get(s.playerHandle)
	if !ok {
		return
	}

	for _, b := range s.reg.Each(CategoryEnemyBullet) {
		if !b.Active || !s.overlap.Overlaps(ship, b) {
			continue
		}
		s.reg.Destroy(b)
		s.presenter.SpawnEffect(EffectHit, ship.Pos, s.cfg.Combat.HitFlashScale)
		s.sound(SoundHit, 0.8, 1)
		if s.damagePlayer(s.cfg.Bullets.DamagePct) {
			return
		}
	}

	for _, c := range patrolCategories {
		pct := patrolConfig(s.cfg, c).ContactDamagePct
		for _, e := range s.reg.Each(c) {
			if !e.Active || !s.overlap.Overlaps(ship, e) {
				continue
			}
			s.reg.Destroy(e)
			s.presenter.SpawnEffect(EffectExplosion, e.Pos, e.Scale*s.cfg.Combat.ExplosionScale)
			s.sound(SoundExplosion, 1, 1)
			if s.damagePlayer(pct) {
				return
			}
		}
	}

	for _, d := range s.reg.Each(CategoryDrop) {
		if !d.Active || !s.overlap.Overlaps(ship, d) {
			continue
		}
		s.reg.Destroy(d)
		s.stats.DropsCollected++
		s.stats.HealthRestored += s.player.Heal(s.cfg.Drops.Heal)
		s.presenter.SpawnEffect(EffectPickup, d.Pos, d.Scale)
		s.sound(SoundPickup, 0.8, 1.2)
	}
}

// resolveBullet applies a player bullet to the first target it overlaps.
func (s *Simulation) resolveBullet(b *Entity) {
	for _, c := range patrolCategories {
		for _, target := range s.reg.Each(c) {
			if !target.Active || !s.overlap.Overlaps(b, target) {
				continue
			}
			s.reg.Destroy(b)
			s.hitTarget(target)
			return
		}
	}
}

// hitTarget removes one point of health from a patrol entity and handles
// its destruction. Dead entities are ignored.
func (s *Simulation) hitTarget(e *Entity) {
	if !e.Active || !e.Category.IsPatrol() {
		return
	}
	s.stats.Hits++
	e.Health--
	if e.Health > 0 {
		s.presenter.SpawnEffect(EffectHit, e.Pos, s.cfg.Combat.HitFlashScale)
		s.sound(SoundHit, 0.5, 1.2)
		return
	}

	s.reg.Destroy(e)
	s.player.AddScore(patrolConfig(s.cfg, e.Category).Reward)
	s.stats.Kills[e.Category]++
	s.presenter.SpawnEffect(EffectExplosion, e.Pos, e.Scale*s.cfg.Combat.ExplosionScale)
	s.sound(SoundExplosion, 1, 1)

	if e.Category != CategoryAsteroid {
		s.maybeDropEnergy(e)
	}
}

// damagePlayer applies percentage damage and starts the death sequence on
// the transition to zero health. Reports whether the player died.
func (s *Simulation) damagePlayer(pct int) bool {
	before := s.player.Health
	died := s.player.Damage(pct)
	s.stats.DamageTaken += before - s.player.Health
	if died {
		s.gameOver()
	}
	return died
}

// gameOver runs once when health reaches zero: the ship explodes, every
// pending timer is cancelled, spawners stop and bullets and drops are
// cleared. Patrol entities stay in place until restart.
func (s *Simulation) gameOver() {
	if ship, ok := s.reg.Get(s.playerHandle); ok {
		s.presenter.SpawnEffect(EffectExplosion, ship.Pos, ship.Scale*s.cfg.Combat.ExplosionScale*2)
		s.reg.Destroy(ship)
	}
	s.sound(SoundGameOver, 1, 0.8)

	s.timers.CancelAll()
	s.spawning = false
	s.firing = false
	s.reg.Clear(CategoryPlayerBullet, CategoryEnemyBullet, CategoryDrop)

	s.timers.After(s.now, float64(s.cfg.Combat.DeathDelayMs), EventGameOverNotice, NoHandle)

	s.log.Info("game over",
		"score", s.player.Score,
		"level", s.difficulty.Level,
		"kills", s.stats.TotalKills(),
		"survived_s", int(s.stats.TimeSurvivedMs/1000),
	)
}
