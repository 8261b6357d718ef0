package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// effect is a transient visual effect shown on screen.
type effect struct {
	kind  EffectKind
	pos   core.Vec
	scale float64
	ttl   float64 // ms left
}

// Effect lifetimes in ms
const (
	explosionMs = 400
	hitMs       = 120
	pickupMs    = 250
)

// hud is the on-screen Presenter: it keeps effects, the level banner and
// the game-over notice for rendering.
type hud struct {
	cfg         config.ShooterConfig
	effects     []effect
	bannerLevel int
	bannerMs    float64
	gameOver    bool
	finalScore  int
}

func newHUD(cfg config.ShooterConfig) *hud {
	return &hud{cfg: cfg}
}

func (h *hud) reset() {
	h.effects = h.effects[:0]
	h.bannerLevel = 0
	h.bannerMs = 0
	h.gameOver = false
	h.finalScore = 0
}

func (h *hud) PlaySound(SoundID, SoundOptions) {}

func (h *hud) SpawnEffect(kind EffectKind, pos core.Vec, scale float64) {
	ttl := float64(hitMs)
	switch kind {
	case EffectExplosion:
		ttl = explosionMs
	case EffectPickup:
		ttl = pickupMs
	}
	h.effects = append(h.effects, effect{kind: kind, pos: pos, scale: scale, ttl: ttl})
}

func (h *hud) LevelUp(level int) {
	h.bannerLevel = level
	h.bannerMs = float64(h.cfg.Combat.LevelBannerMs)
}

func (h *hud) GameOver(score int) {
	h.gameOver = true
	h.finalScore = score
}

// advance ages effects and the banner by ms.
func (h *hud) advance(ms float64) {
	kept := h.effects[:0]
	for _, e := range h.effects {
		e.ttl -= ms
		if e.ttl > 0 {
			kept = append(kept, e)
		}
	}
	h.effects = kept

	if h.bannerMs > 0 {
		h.bannerMs = max(0, h.bannerMs-ms)
	}
}
