package audio

import (
	"math"
	"testing"

	"github.com/vovakirdan/space-shooter/internal/games/shooter"
)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := range n {
			for _, v := range buf[i] {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("invalid sample %v", v)
				}
				peak = math.Max(peak, math.Abs(v))
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream did not terminate")
	return 0, 0
}

func TestEverySoundIsFiniteAndBounded(t *testing.T) {
	ids := []shooter.SoundID{
		shooter.SoundShoot,
		shooter.SoundEnemyShoot,
		shooter.SoundHit,
		shooter.SoundExplosion,
		shooter.SoundPickup,
		shooter.SoundLevelUp,
		shooter.SoundGameOver,
	}

	for _, id := range ids {
		t.Run(id.String(), func(t *testing.T) {
			s := Sound(id, shooter.SoundOptions{Volume: 1, Rate: 1})
			if s == nil {
				t.Fatal("Sound() returned nil")
			}
			n, peak := drain(t, s)
			if n == 0 {
				t.Error("sound produced no samples")
			}
			if peak > 1 {
				t.Errorf("peak amplitude %v exceeds 1", peak)
			}
		})
	}
}

func TestSoundDurationMatchesCue(t *testing.T) {
	s := Sound(shooter.SoundShoot, shooter.SoundOptions{Volume: 1, Rate: 1})
	n, _ := drain(t, s)

	expected := SampleRate.N(cues[shooter.SoundShoot][0].duration)
	if n != expected {
		t.Errorf("samples = %d, expected %d", n, expected)
	}
}

func TestSoundZeroVolumeIsSilent(t *testing.T) {
	s := Sound(shooter.SoundExplosion, shooter.SoundOptions{Volume: 0, Rate: 1})
	if _, peak := drain(t, s); peak != 0 {
		t.Errorf("peak = %v, expected silence", peak)
	}
}

func TestUnknownSound(t *testing.T) {
	if s := Sound(shooter.SoundID(99), shooter.SoundOptions{Volume: 1}); s != nil {
		t.Error("Sound(unknown) should be nil")
	}
}

func TestPlayerIgnoresSoundsBeforeInit(t *testing.T) {
	p := NewPlayer(1)
	p.PlaySound(shooter.SoundShoot, shooter.SoundOptions{Volume: 1, Rate: 1})
	p.Close()
}
