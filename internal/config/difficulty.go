package config

import "math"

// Multiplier returns the linear difficulty factor 1 + (level-1)*k.
func Multiplier(level int, k float64) float64 {
	if level < 1 {
		level = 1
	}
	return 1 + float64(level-1)*k
}

// ScaledHealth returns floor(base * Multiplier(level, k)).
func ScaledHealth(base int, k float64, level int) int {
	return int(math.Floor(float64(base) * Multiplier(level, k)))
}

// Interval returns the spawn interval in ms at the given level:
// max(floor, base - (level-1)*step).
func (s SpawnIntervalConfig) Interval(level int) int {
	if level < 1 {
		level = 1
	}
	return max(s.FloorMs, s.BaseMs-(level-1)*s.StepMs)
}

// Lerp maps u in [0, 1] onto [r.Min, r.Max].
func (r RangeF) Lerp(u float64) float64 {
	return r.Min + (r.Max-r.Min)*u
}
