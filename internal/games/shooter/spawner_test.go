package shooter

import (
	"math"
	"testing"
)

func TestTrySpawnRespectsInterval(t *testing.T) {
	s := newTestSim(0.5)

	tests := []struct {
		now      float64
		expected bool
	}{
		{1999, false},
		{2000, true},
		{2001, false},
		{3999, false},
		{4000, true},
	}

	for _, tt := range tests {
		if got := s.trySpawn(CategoryEnemy, tt.now); got != tt.expected {
			t.Errorf("trySpawn(enemy, %v) = %v, expected %v", tt.now, got, tt.expected)
		}
	}
	if got := s.reg.Count(CategoryEnemy); got != 2 {
		t.Errorf("enemies = %d, expected 2", got)
	}
}

func TestSpawnPatrolLevelOne(t *testing.T) {
	s := newTestSim(0.5)
	timers := s.PendingTimers()

	e := s.spawnPatrol(CategoryEnemy)

	if e.Health != 3 || e.MaxHealth != 3 {
		t.Errorf("Health = %d/%d, expected 3/3", e.Health, e.MaxHealth)
	}
	if e.Vel.X != -150 {
		t.Errorf("Vel.X = %v, expected -150", e.Vel.X)
	}
	if e.MoveRange != 100 {
		t.Errorf("MoveRange = %v, expected 100", e.MoveRange)
	}
	if e.MoveSpeed != 90 {
		t.Errorf("MoveSpeed = %v, expected 90", e.MoveSpeed)
	}
	if math.Abs(e.OriginalY-300) > 1e-9 || e.Pos.Y != e.OriginalY {
		t.Errorf("OriginalY = %v (pos %v), expected 300", e.OriginalY, e.Pos.Y)
	}
	if e.Pos.X <= s.cfg.World.Width {
		t.Errorf("Pos.X = %v, expected right of the viewport", e.Pos.X)
	}
	if s.PendingTimers() != timers+1 {
		t.Errorf("enemy spawn should schedule a shoot timer")
	}

	s.spawnPatrol(CategoryAsteroid)
	if s.PendingTimers() != timers+1 {
		t.Errorf("asteroids should not get a shoot timer")
	}
}

func TestSpawnPatrolScalesWithLevel(t *testing.T) {
	s := newTestSim(0.5)
	s.difficulty.Level = 3

	e := s.spawnPatrol(CategoryEnemy)

	// speed multiplier 1 + 2*0.4 = 1.8, health multiplier 1 + 2*0.2 = 1.4
	if math.Abs(e.Vel.X-(-270)) > 1e-9 {
		t.Errorf("Vel.X = %v, expected -270", e.Vel.X)
	}
	if math.Abs(e.MoveSpeed-162) > 1e-9 {
		t.Errorf("MoveSpeed = %v, expected 162", e.MoveSpeed)
	}
	if e.Health != 4 {
		t.Errorf("Health = %d, expected floor(3*1.4) = 4", e.Health)
	}
}

func TestAsteroidSpawnHealth(t *testing.T) {
	s := newTestSim(0.5)
	if e := s.spawnPatrol(CategoryAsteroid); e.Health != 6 {
		t.Errorf("asteroid Health = %d, expected 6", e.Health)
	}
}

func TestBossFiresTwoShots(t *testing.T) {
	s := newTestSim(0.5, WithOverlapper(neverOverlap))
	s.spawnPatrol(CategoryBoss)

	// Level 1 boss shoots every 1500 / 1.5 = 1000 ms
	s.OnFrameTick(1000)

	bullets := s.Entities(CategoryEnemyBullet)
	if len(bullets) != 2 {
		t.Fatalf("enemy bullets = %d, expected 2", len(bullets))
	}
	spacing := math.Abs(bullets[0].Pos.Y - bullets[1].Pos.Y)
	if math.Abs(spacing-s.cfg.Boss.ShotSpacing) > 1e-9 {
		t.Errorf("shot spacing = %v, expected %v", spacing, s.cfg.Boss.ShotSpacing)
	}
	for _, b := range bullets {
		if b.Vel.X >= 0 {
			t.Errorf("enemy bullet Vel.X = %v, expected leftward", b.Vel.X)
		}
	}
}

func TestEnemyFiresOneShot(t *testing.T) {
	s := newTestSim(0.5, WithOverlapper(neverOverlap))
	s.spawnPatrol(CategoryEnemy)

	// 2000 / 1.5 = 1333.3 ms
	s.OnFrameTick(1300)
	if got := s.reg.Count(CategoryEnemyBullet); got != 0 {
		t.Errorf("enemy bullets before interval = %d, expected 0", got)
	}
	s.OnFrameTick(100)
	if got := s.reg.Count(CategoryEnemyBullet); got != 1 {
		t.Errorf("enemy bullets = %d, expected 1", got)
	}
}

func TestShootTimerOfDestroyedEnemyIsNoop(t *testing.T) {
	s := newTestSim(0.5, WithOverlapper(neverOverlap))
	e := s.spawnPatrol(CategoryEnemy)
	s.reg.Destroy(e)

	s.OnFrameTick(1500)

	if got := s.reg.Count(CategoryEnemyBullet); got != 0 {
		t.Errorf("enemy bullets = %d, expected 0", got)
	}
	if got := s.PendingTimers(); got != 1 {
		t.Errorf("PendingTimers = %d, expected only the difficulty timer", got)
	}
}

func TestFrameSpawnsOnSchedule(t *testing.T) {
	s := newTestSim(0.5, WithOverlapper(neverOverlap))

	for range 199 {
		s.OnFrameTick(10)
	}
	if got := s.reg.Count(CategoryEnemy); got != 0 {
		t.Errorf("enemies at 1990ms = %d, expected 0", got)
	}
	s.OnFrameTick(10)
	if got := s.reg.Count(CategoryEnemy); got != 1 {
		t.Errorf("enemies at 2000ms = %d, expected 1", got)
	}
}
