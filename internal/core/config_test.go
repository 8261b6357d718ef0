package core

import "testing"

func TestRuntimeResolved(t *testing.T) {
	got := RuntimeConfig{Seed: 7}.Resolved()
	if got.ScreenW != DefaultScreenW || got.ScreenH != DefaultScreenH {
		t.Errorf("size = %dx%d, expected %dx%d", got.ScreenW, got.ScreenH, DefaultScreenW, DefaultScreenH)
	}
	if got.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %d, expected %d", got.TickRate, DefaultTickRate)
	}
	if got.Seed != 7 {
		t.Errorf("Seed = %d, expected 7", got.Seed)
	}

	kept := RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 3}.Resolved()
	if kept != (RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 3}) {
		t.Errorf("Resolved changed explicit fields: %+v", kept)
	}

	if DefaultConfig().Resolved().Seed == 0 {
		t.Error("Resolved left seed at zero")
	}
}

func TestTickMillis(t *testing.T) {
	tests := []struct {
		rate     int
		expected float64
	}{
		{60, 1000.0 / 60},
		{30, 1000.0 / 30},
		{0, 1000.0 / 60},
		{-5, 1000.0 / 60},
	}

	for _, tt := range tests {
		got := RuntimeConfig{TickRate: tt.rate}.TickMillis()
		if got != tt.expected {
			t.Errorf("TickMillis(%d) = %v, expected %v", tt.rate, got, tt.expected)
		}
	}
}
