package shooter

import (
	"math"
	"testing"

	"github.com/vovakirdan/space-shooter/internal/core"
)

func TestPatrolTracksPlayerAndClamps(t *testing.T) {
	s := newTestSim(0.5)
	e := s.spawnPatrol(CategoryEnemy) // y=300, range 100, speed 90
	startX := e.Pos.X

	s.movePatrol(e, 500, true, 1)
	if math.Abs(e.Pos.Y-390) > 1e-9 {
		t.Errorf("Pos.Y = %v, expected 390", e.Pos.Y)
	}
	if e.Vel.Y != 90 {
		t.Errorf("Vel.Y = %v, expected 90", e.Vel.Y)
	}
	if math.Abs(e.Pos.X-(startX-150)) > 1e-9 {
		t.Errorf("Pos.X = %v, expected %v", e.Pos.X, startX-150)
	}

	s.movePatrol(e, 500, true, 1)
	if math.Abs(e.Pos.Y-400) > 1e-9 {
		t.Errorf("Pos.Y = %v, expected clamp at 400", e.Pos.Y)
	}
	if e.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, expected 0 after clamp", e.Vel.Y)
	}

	s.movePatrol(e, 0, true, 10)
	if math.Abs(e.Pos.Y-200) > 1e-9 {
		t.Errorf("Pos.Y = %v, expected clamp at 200", e.Pos.Y)
	}
}

func TestPatrolDeadband(t *testing.T) {
	s := newTestSim(0.5)
	e := s.spawnPatrol(CategoryEnemy)
	y := e.Pos.Y

	s.movePatrol(e, y+5, true, 0.1)
	if e.Vel.Y != 0 || e.Pos.Y != y {
		t.Errorf("inside deadband: Vel.Y = %v Pos.Y = %v, expected no vertical motion", e.Vel.Y, e.Pos.Y)
	}

	s.movePatrol(e, y-50, true, 0.1)
	if e.Vel.Y >= 0 {
		t.Errorf("Vel.Y = %v, expected upward motion", e.Vel.Y)
	}
}

func TestPatrolDespawnOffscreen(t *testing.T) {
	s := newTestSim(0.5)
	e := s.spawnPatrol(CategoryBoss)
	e.Pos.X = -49

	s.movePatrol(e, e.Pos.Y, true, 0.1)

	if e.Active {
		t.Errorf("entity at x=%v should be despawned", e.Pos.X)
	}
	if e.Health <= 0 {
		t.Error("despawn should not depend on health")
	}
}

func TestBulletsLeaveViewport(t *testing.T) {
	s := newTestSim(0.5)
	pb := s.spawnBullet(CategoryPlayerBullet, core.V(s.cfg.World.Width-1, 100), 500)
	eb := s.spawnBullet(CategoryEnemyBullet, core.V(1, 100), -300)
	inside := s.spawnBullet(CategoryPlayerBullet, core.V(400, 100), 500)

	s.moveBullets(0.01)

	if pb.Active {
		t.Error("player bullet past the right edge should be destroyed")
	}
	if eb.Active {
		t.Error("enemy bullet past the left edge should be destroyed")
	}
	if !inside.Active {
		t.Error("bullet inside the viewport should survive")
	}
}

func TestBulletTimeToLive(t *testing.T) {
	s := newTestSim(0.5, WithOverlapper(neverOverlap))
	b := s.spawnBullet(CategoryPlayerBullet, core.V(100, 100), 0)

	s.OnFrameTick(1999)
	if !b.Active {
		t.Fatal("bullet expired early")
	}
	s.OnFrameTick(1)
	if b.Active {
		t.Error("bullet should expire after 2 seconds")
	}
}

func TestDropLifetimeAndDrift(t *testing.T) {
	s := newTestSim(0.5, WithOverlapper(neverOverlap))
	d := s.spawnDrop(core.V(700, 100))

	s.OnFrameTick(1000)
	if math.Abs(d.Pos.X-600) > 1e-9 {
		t.Errorf("drop Pos.X = %v, expected 600 after drifting toward the player", d.Pos.X)
	}

	s.OnFrameTick(3999)
	if !d.Active {
		t.Fatal("drop expired early")
	}
	s.OnFrameTick(1)
	if d.Active {
		t.Error("drop should expire after 5 seconds")
	}
}

func TestDropLeavingVerticalBounds(t *testing.T) {
	s := newTestSim(0.5)
	d := s.spawnDrop(core.V(400, -1))

	s.moveDrops(0.01)

	if d.Active {
		t.Error("drop above the viewport should be destroyed")
	}
}

func TestStarsWrap(t *testing.T) {
	cfg := testConfig()
	cfg.Stars.Count = 1
	s := NewSimulation(cfg, 1, WithRandom(fixedRandom{u: 0.25}))
	star := s.Entities(CategoryStar)[0]
	star.Pos.X = 1

	s.moveStars(1)

	if star.Pos.X != cfg.World.Width {
		t.Errorf("star Pos.X = %v, expected wrap to %v", star.Pos.X, cfg.World.Width)
	}
	if star.Pos.Y != 150 {
		t.Errorf("star Pos.Y = %v, expected re-randomized 150", star.Pos.Y)
	}
	if star.Vel.X != -35 {
		t.Errorf("star Vel.X = %v, expected -35", star.Vel.X)
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name string
		dir  core.Vec
		x, y float64
	}{
		{"right", core.V(1, 0), 400, 300},
		{"inside deadzone", core.V(0.05, 0), 100, 300},
		{"normalized", core.V(3, 4), 100 + 180, 300 + 240},
		{"clamped left", core.V(-1, 0), 19.2, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(0.5)
			s.OnDirectionalInput(tt.dir)
			s.movePlayer(1)

			ship := mustShip(s)
			if math.Abs(ship.Pos.X-tt.x) > 1e-9 || math.Abs(ship.Pos.Y-tt.y) > 1e-9 {
				t.Errorf("Pos = %v, expected (%v, %v)", ship.Pos, tt.x, tt.y)
			}
		})
	}
}

func TestDirectionalInputAppliedOnTick(t *testing.T) {
	s := newTestSim(0.5, WithOverlapper(neverOverlap))
	start := mustShip(s).Pos

	s.OnDirectionalInput(core.V(1, 0))
	if got := mustShip(s).Pos; got != start {
		t.Errorf("Pos after input = %v, expected %v until the next tick", got, start)
	}

	s.OnFrameTick(frameMs)
	got := mustShip(s).Pos
	if got.X <= start.X || got.Y != start.Y {
		t.Errorf("Pos after tick = %v, expected to the right of %v", got, start)
	}

	s.OnDirectionalInput(core.V(0.05, 0))
	s.OnFrameTick(frameMs)
	if again := mustShip(s).Pos; again != got {
		t.Errorf("Pos after deadzone input = %v, expected %v", again, got)
	}
}

func TestPlayerFireCadence(t *testing.T) {
	s := newTestSim(0.5, WithOverlapper(neverOverlap))
	s.OnFireInput(true)

	for range 10 {
		s.OnFrameTick(100)
	}

	if got := s.Stats().ShotsFired; got != 5 {
		t.Errorf("ShotsFired = %d, expected 5 with a 200ms delay over 1s", got)
	}

	s.OnFireInput(false)
	s.OnFrameTick(1000)
	if got := s.Stats().ShotsFired; got != 5 {
		t.Errorf("ShotsFired = %d after release, expected 5", got)
	}
}
