package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
)

// Player plays simulation sound cues on the local speaker.
// It implements shooter.Presenter and ignores every non-audio notification.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      float64
	initialized bool
}

// NewPlayer creates a player with the given master volume (0..1).
func NewPlayer(master float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		master: master,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// PlaySound queues a cue on the mixer. Calls before Init are ignored.
func (p *Player) PlaySound(id shooter.SoundID, opts shooter.SoundOptions) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	opts.Volume *= p.master
	s := Sound(id, opts)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) SpawnEffect(shooter.EffectKind, core.Vec, float64) {}
func (p *Player) LevelUp(int)                                       {}
func (p *Player) GameOver(int)                                      {}

var _ shooter.Presenter = (*Player)(nil)
