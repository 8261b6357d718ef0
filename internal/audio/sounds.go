// Package audio synthesizes the shooter's sound cues with beep.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/space-shooter/internal/games/shooter"
)

// SampleRate is the output sample rate for every cue.
const SampleRate = beep.SampleRate(44100)

// gain keeps full-scale generators comfortably below clipping.
const gain = 0.3

// note is one tone in a cue.
type note struct {
	freq     float64
	duration time.Duration
	wave     wave
}

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveNoise
)

// cues maps each sound to its notes, played in sequence.
var cues = map[shooter.SoundID][]note{
	shooter.SoundShoot:      {{freq: 880, duration: 60 * time.Millisecond, wave: waveSquare}},
	shooter.SoundEnemyShoot: {{freq: 330, duration: 70 * time.Millisecond, wave: waveSquare}},
	shooter.SoundHit:        {{freq: 220, duration: 50 * time.Millisecond, wave: waveSine}},
	shooter.SoundExplosion:  {{duration: 300 * time.Millisecond, wave: waveNoise}},
	shooter.SoundPickup: {
		{freq: 660, duration: 60 * time.Millisecond, wave: waveSine},
		{freq: 990, duration: 90 * time.Millisecond, wave: waveSine},
	},
	shooter.SoundLevelUp: {
		{freq: 523, duration: 90 * time.Millisecond, wave: waveSquare},
		{freq: 659, duration: 90 * time.Millisecond, wave: waveSquare},
		{freq: 784, duration: 140 * time.Millisecond, wave: waveSquare},
	},
	shooter.SoundGameOver: {
		{freq: 392, duration: 200 * time.Millisecond, wave: waveSaw},
		{freq: 330, duration: 200 * time.Millisecond, wave: waveSaw},
		{freq: 262, duration: 400 * time.Millisecond, wave: waveSaw},
	},
}

// Sound builds a finite streamer for a cue. Unknown cues yield nil.
func Sound(id shooter.SoundID, opts shooter.SoundOptions) beep.Streamer {
	notes, ok := cues[id]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, fade(tone(n), SampleRate.N(n.duration)))
	}

	var s beep.Streamer = beep.Seq(parts...)
	if opts.Rate > 0 && opts.Rate != 1 {
		s = beep.ResampleRatio(3, opts.Rate, s)
	}
	return volume(s, opts.Volume*gain)
}

// tone returns exactly n.duration worth of the requested wave.
func tone(n note) beep.Streamer {
	samples := SampleRate.N(n.duration)

	var (
		s   beep.Streamer
		err error
	)
	switch n.wave {
	case waveSquare:
		s, err = generators.SquareTone(SampleRate, n.freq)
	case waveSaw:
		s, err = generators.SawtoothTone(SampleRate, n.freq)
	case waveNoise:
		s = noise(rand.New(rand.NewSource(int64(samples))))
	default:
		s, err = generators.SineTone(SampleRate, n.freq)
	}
	if err != nil {
		return beep.Silence(samples)
	}
	return beep.Take(samples, s)
}

// noise is white noise from a private source.
func noise(rng *rand.Rand) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rng.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	})
}

// fade applies a linear decay over total samples.
func fade(s beep.Streamer, total int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range n {
			env := 1.0
			if total > 0 {
				env = max(0, 1-float64(pos)/float64(total))
			}
			samples[i][0] *= env
			samples[i][1] *= env
			pos++
		}
		return n, ok
	})
}

// volume scales a streamer linearly; zero or negative volume is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v), Silent: false}
}
