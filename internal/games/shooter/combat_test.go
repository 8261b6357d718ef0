package shooter

import "testing"

// hitWithBullet places a player bullet on the target and resolves collisions.
func hitWithBullet(s *Simulation, target *Entity) {
	s.spawnBullet(CategoryPlayerBullet, target.Pos, s.cfg.Bullets.PlayerSpeed)
	s.resolveCollisions()
	s.reg.Sweep()
}

func TestAsteroidDestroyedOnSixthHit(t *testing.T) {
	s := newTestSim(0.5)
	a := s.spawnPatrol(CategoryAsteroid)

	for i := 1; i <= 5; i++ {
		hitWithBullet(s, a)
		if !a.Active {
			t.Fatalf("asteroid destroyed after %d hits", i)
		}
		if a.Health != 6-i {
			t.Errorf("after %d hits Health = %d, expected %d", i, a.Health, 6-i)
		}
		if s.Player().Score != 0 {
			t.Errorf("score changed before kill: %d", s.Player().Score)
		}
	}

	hitWithBullet(s, a)
	if a.Active {
		t.Fatal("asteroid should be destroyed on the 6th hit")
	}
	if got := s.Player().Score; got != 5 {
		t.Errorf("Score = %d, expected 5", got)
	}
	if got := s.reg.Count(CategoryAsteroid); got != 0 {
		t.Errorf("asteroids = %d, expected 0", got)
	}
	if got := s.reg.Count(CategoryPlayerBullet); got != 0 {
		t.Errorf("player bullets = %d, expected all consumed", got)
	}
	if got := s.reg.Count(CategoryDrop); got != 0 {
		t.Errorf("asteroids should never drop energy, got %d drops", got)
	}
}

func TestKillRewards(t *testing.T) {
	tests := []struct {
		category Category
		reward   int
	}{
		{CategoryEnemy, 10},
		{CategoryAsteroid, 5},
		{CategoryBoss, 50},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			s := newTestSim(0.5)
			e := s.spawnPatrol(tt.category)
			prev := 0
			for e.Active {
				hitWithBullet(s, e)
				score := s.Player().Score
				if score < prev {
					t.Fatalf("score decreased from %d to %d", prev, score)
				}
				prev = score
			}
			if prev != tt.reward {
				t.Errorf("Score = %d, expected %d", prev, tt.reward)
			}
			if got := s.Stats().Kills[tt.category]; got != 1 {
				t.Errorf("Kills = %d, expected 1", got)
			}
		})
	}
}

func TestEnemyKillDropGate(t *testing.T) {
	tests := []struct {
		name  string
		u     float64
		drops int
	}{
		{"roll passes", 0.1, 1},
		{"roll fails", 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(tt.u)
			e := s.spawnPatrol(CategoryEnemy)
			for e.Active {
				hitWithBullet(s, e)
			}
			if got := s.reg.Count(CategoryDrop); got != tt.drops {
				t.Errorf("drops = %d, expected %d", got, tt.drops)
			}
		})
	}
}

func TestBossKillDropsThree(t *testing.T) {
	s := newTestSim(0.1)
	boss := s.spawnPatrol(CategoryBoss)
	for boss.Active {
		hitWithBullet(s, boss)
	}
	if got := s.reg.Count(CategoryDrop); got != 3 {
		t.Errorf("drops = %d, expected 3", got)
	}
}

func TestDestroyedTargetSkipsLaterBullets(t *testing.T) {
	s := newTestSim(0.5)
	e := s.spawnPatrol(CategoryEnemy)
	e.Health = 1

	s.spawnBullet(CategoryPlayerBullet, e.Pos, 0)
	s.spawnBullet(CategoryPlayerBullet, e.Pos, 0)
	s.resolveCollisions()
	s.reg.Sweep()

	if e.Active {
		t.Fatal("enemy should be destroyed")
	}
	if got := s.reg.Count(CategoryPlayerBullet); got != 1 {
		t.Errorf("player bullets = %d, expected 1 (second bullet must not hit a dead enemy)", got)
	}
	if got := len(s.reg.Each(CategoryEnemy)); got != 0 {
		t.Errorf("enemy list length = %d, expected 0 after the resolution step", got)
	}
	if got := s.Player().Score; got != 10 {
		t.Errorf("Score = %d, expected 10", got)
	}
}

func TestHitDestroyedEntityIsNoop(t *testing.T) {
	s := newTestSim(0.5)
	e := s.spawnPatrol(CategoryEnemy)
	s.reg.Destroy(e)

	s.hitTarget(e)

	if e.Health != 3 {
		t.Errorf("Health = %d, expected untouched 3", e.Health)
	}
	if s.Player().Score != 0 {
		t.Errorf("Score = %d, expected 0", s.Player().Score)
	}
}

func TestEnemyBulletDamagesPlayer(t *testing.T) {
	s := newTestSim(0.5)
	ship := mustShip(s)
	b := s.spawnBullet(CategoryEnemyBullet, ship.Pos, -300)

	s.resolveCollisions()

	if b.Active {
		t.Error("enemy bullet should be destroyed on impact")
	}
	if got := s.Player().Health; got != 90 {
		t.Errorf("Health = %d, expected 90", got)
	}
}

func TestContactDamage(t *testing.T) {
	tests := []struct {
		category Category
		health   int
	}{
		{CategoryEnemy, 70},
		{CategoryAsteroid, 85},
		{CategoryBoss, 60},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			s := newTestSim(0.5)
			e := s.spawnPatrol(tt.category)
			e.Pos = mustShip(s).Pos

			s.resolveCollisions()

			if e.Active {
				t.Error("rammed entity should be destroyed unconditionally")
			}
			if got := s.Player().Health; got != tt.health {
				t.Errorf("Health = %d, expected %d", got, tt.health)
			}
			if got := s.Player().Score; got != 0 {
				t.Errorf("Score = %d, expected 0 for collisions", got)
			}
		})
	}
}

func TestBossThenEnemyContact(t *testing.T) {
	s := newTestSim(0.5)
	ship := mustShip(s)

	boss := s.spawnPatrol(CategoryBoss)
	boss.Pos = ship.Pos
	s.resolveCollisions()
	if got := s.Player().Health; got != 60 {
		t.Fatalf("Health after boss = %d, expected 60", got)
	}

	enemy := s.spawnPatrol(CategoryEnemy)
	enemy.Pos = ship.Pos
	s.resolveCollisions()
	if got := s.Player().Health; got != 42 {
		t.Errorf("Health after enemy = %d, expected 42", got)
	}
}

func TestLowHealthEnemyContactNoGameOver(t *testing.T) {
	s := newTestSim(0.5)
	s.player.Health = 5
	e := s.spawnPatrol(CategoryEnemy)
	e.Pos = mustShip(s).Pos

	s.resolveCollisions()

	if got := s.Player().Health; got != 3 {
		t.Errorf("Health = %d, expected 3", got)
	}
	if s.GameOver() {
		t.Error("GameOver() = true, expected false")
	}
}

func TestEnergyDropHealClamped(t *testing.T) {
	s := newTestSim(0.5)
	s.player.Health = 90
	d := s.spawnDrop(mustShip(s).Pos)

	s.resolveCollisions()

	if d.Active {
		t.Error("collected drop should be destroyed")
	}
	if got := s.Player().Health; got != 100 {
		t.Errorf("Health = %d, expected 100", got)
	}
}

func TestGameOverSequence(t *testing.T) {
	rec := &recorder{}
	s := newTestSim(0.5, WithPresenter(rec))
	ship := mustShip(s)
	s.player.Health = 1

	enemy := s.spawnPatrol(CategoryEnemy)
	s.spawnBullet(CategoryPlayerBullet, ship.Pos.Add(ship.Pos), 0)
	s.spawnDrop(enemy.Pos)
	s.spawnBullet(CategoryEnemyBullet, ship.Pos, -300)

	s.resolveCollisions()
	s.reg.Sweep()

	if !s.GameOver() {
		t.Fatal("GameOver() = false, expected true")
	}
	if _, ok := s.Ship(); ok {
		t.Error("player ship should be destroyed")
	}
	for _, c := range []Category{CategoryPlayerBullet, CategoryEnemyBullet, CategoryDrop} {
		if got := s.reg.Count(c); got != 0 {
			t.Errorf("%s count = %d, expected 0", c, got)
		}
	}
	if got := s.reg.Count(CategoryEnemy); got != 1 {
		t.Errorf("enemies = %d, expected them to remain", got)
	}
	if s.Spawning() {
		t.Error("spawners should stop on game over")
	}
	if got := s.PendingTimers(); got != 1 {
		t.Errorf("PendingTimers = %d, expected only the game-over notice", got)
	}

	before := enemy.Pos
	s.OnFrameTick(999)
	if len(rec.gameOvers) != 0 {
		t.Error("game-over notice fired before the death delay")
	}
	if enemy.Pos != before {
		t.Errorf("enemy moved after game over: %v -> %v", before, enemy.Pos)
	}

	s.OnFrameTick(1)
	if len(rec.gameOvers) != 1 {
		t.Fatalf("game-over notices = %d, expected 1", len(rec.gameOvers))
	}
	if !s.GameOverNoticed() {
		t.Error("GameOverNoticed() = false, expected true")
	}

	if s.damagePlayer(50) {
		t.Error("damage after game over reported another death")
	}
	s.OnFrameTick(5000)
	if len(rec.gameOvers) != 1 {
		t.Errorf("game-over notices = %d, expected exactly 1", len(rec.gameOvers))
	}
	if got := s.reg.Count(CategoryEnemy); got != 1 {
		t.Errorf("no new spawns expected after game over, enemies = %d", got)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	s := newTestSim(0.5)
	s.player.AddScore(40)
	s.difficulty.Level = 4
	s.spawnPatrol(CategoryBoss)
	s.damagePlayer(100)
	s.OnFrameTick(500)

	s.OnRestart()

	p := s.Player()
	if p.Health != 100 || p.Score != 0 || p.GameOver() {
		t.Errorf("player = %+v, expected fresh state", p)
	}
	if got := s.Difficulty().Level; got != 1 {
		t.Errorf("Level = %d, expected 1", got)
	}
	for _, c := range []Category{CategoryEnemy, CategoryAsteroid, CategoryBoss, CategoryPlayerBullet, CategoryEnemyBullet, CategoryDrop} {
		if got := s.reg.Count(c); got != 0 {
			t.Errorf("%s count = %d, expected 0", c, got)
		}
	}
	if _, ok := s.Ship(); !ok {
		t.Error("restart should spawn a new ship")
	}
	if !s.Spawning() {
		t.Error("spawners should run after restart")
	}
	if s.Now() != 0 {
		t.Errorf("Now = %v, expected 0", s.Now())
	}
	if got := s.PendingTimers(); got != 1 {
		t.Errorf("PendingTimers = %d, expected only the difficulty timer", got)
	}
}
