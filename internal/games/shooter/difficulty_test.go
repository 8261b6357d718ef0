package shooter

import "testing"

func TestDifficultyStateCapped(t *testing.T) {
	d := NewDifficultyState(3)
	if d.Level != 1 {
		t.Fatalf("Level = %d, expected 1", d.Level)
	}
	d.Advance()
	d.Advance()
	if d.Advance() {
		t.Error("Advance past max reported a change")
	}
	if d.Level != 3 || !d.Capped() {
		t.Errorf("Level = %d capped=%v, expected 3 capped", d.Level, d.Capped())
	}
}

func TestSpawnRatesAfterLevelUps(t *testing.T) {
	rec := &recorder{}
	s := newTestSim(0.5, WithOverlapper(neverOverlap), WithPresenter(rec))

	for range 120 {
		s.OnFrameTick(1000)
	}

	if got := s.Difficulty().Level; got != 5 {
		t.Fatalf("Level after 120s = %d, expected 5", got)
	}

	rates := s.SpawnRates()
	expected := SpawnRates{Enemy: 800, Asteroid: 2200, Boss: 11000}
	if rates != expected {
		t.Errorf("SpawnRates = %+v, expected %+v", rates, expected)
	}

	want := []int{2, 3, 4, 5}
	if len(rec.levels) != len(want) {
		t.Fatalf("level notifications = %v, expected %v", rec.levels, want)
	}
	for i := range want {
		if rec.levels[i] != want[i] {
			t.Errorf("notification %d = %d, expected %d", i, rec.levels[i], want[i])
		}
	}
}

func TestDifficultyStopsAtMax(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty.MaxLevel = 3
	cfg.Difficulty.LevelIntervalMs = 1000
	rec := &recorder{}
	s := NewSimulation(cfg, 1,
		WithRandom(fixedRandom{u: 0.5}),
		WithOverlapper(neverOverlap),
		WithPresenter(rec),
	)

	prev := s.Difficulty().Level
	for range 100 {
		s.OnFrameTick(100)
		level := s.Difficulty().Level
		if level < prev {
			t.Fatalf("level decreased from %d to %d", prev, level)
		}
		if level > cfg.Difficulty.MaxLevel {
			t.Fatalf("level %d exceeds max %d", level, cfg.Difficulty.MaxLevel)
		}
		prev = level
	}

	if prev != 3 {
		t.Errorf("Level = %d, expected 3", prev)
	}
	if len(rec.levels) != 2 {
		t.Errorf("level notifications = %v, expected two", rec.levels)
	}
	if got := s.Difficulty().Elapsed; got != 10000 {
		t.Errorf("Elapsed = %v, expected 10000 (timer keeps running when capped)", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty.Enabled = false
	s := NewSimulation(cfg, 1, WithRandom(fixedRandom{u: 0.5}), WithOverlapper(neverOverlap))

	if s.PendingTimers() != 0 {
		t.Errorf("PendingTimers = %d, expected 0", s.PendingTimers())
	}
	for range 100 {
		s.OnFrameTick(1000)
	}
	if got := s.Difficulty().Level; got != 1 {
		t.Errorf("Level = %d, expected 1", got)
	}
}
