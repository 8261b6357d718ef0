package shooter

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "shooter"

// holdMs is how long a key press counts as held. Terminals only report
// presses and auto-repeat, never releases.
const holdMs = 150

func init() {
	registry.Register(registry.Entry{
		ID:          GameID,
		Title:       "Space Shooter",
		Description: "Dodge, shoot, survive. Enemies speed up every level.",
		Factory:     func() registry.Game { return New() },
	})
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// soundSink receives sound cues in addition to the on-screen presenter
var soundSink Presenter

// gameLogger is handed to every simulation
var gameLogger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetSoundSink installs an extra presenter, typically an audio player.
func SetSoundSink(p Presenter) {
	soundSink = p
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l != nil {
		gameLogger = l
	}
}

// Game adapts the simulation to the arcade host: fixed ticks, held-key
// emulation, pause and terminal rendering.
type Game struct {
	sim     *Simulation
	cfg     config.ShooterConfig
	runtime core.RuntimeConfig
	hud     *hud
	paused  bool
	held    map[core.Action]float64 // remaining hold time in ms
}

// New creates a new shooter game instance.
func New() *Game {
	return &Game{held: make(map[core.Action]float64)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Shooter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		gameLogger.Warn("using default config", "err", err)
		cfg = config.DefaultShooterConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.hud = newHUD(cfg)
	var presenter Presenter = g.hud
	if soundSink != nil {
		presenter = MultiPresenter{g.hud, soundSink}
	}

	g.sim = NewSimulation(cfg, runtime.Seed,
		WithPresenter(presenter),
		WithLogger(gameLogger),
	)
	g.paused = false
	clear(g.held)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.sim.GameOver() {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) && g.sim.GameOver() {
		g.sim.OnRestart()
		g.hud.reset()
		clear(g.held)
	}

	if !g.paused {
		ms := g.runtime.TickMillis()
		g.updateHeld(in, ms)

		g.sim.OnDirectionalInput(g.direction())
		g.sim.OnFireInput(g.isHeld(core.ActionFire))
		g.sim.OnFrameTick(ms)
		g.hud.advance(ms)
	}

	return core.StepResult{State: g.State()}
}

// updateHeld refreshes keys pressed this frame and decays the rest.
func (g *Game) updateHeld(in core.InputFrame, ms float64) {
	for a, left := range g.held {
		if left <= ms {
			delete(g.held, a)
		} else {
			g.held[a] = left - ms
		}
	}
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire} {
		if in.Has(a) {
			g.held[a] = holdMs
		}
	}
}

func (g *Game) isHeld(a core.Action) bool {
	_, ok := g.held[a]
	return ok
}

// direction builds the steering vector from held keys.
func (g *Game) direction() core.Vec {
	in := core.NewInputFrame()
	for a := range g.held {
		in.Set(a)
	}
	return in.Direction()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	p := g.sim.Player()
	return core.GameState{
		Score:    p.Score,
		Level:    g.sim.Difficulty().Level,
		Health:   p.Health,
		GameOver: g.sim.GameOver(),
		Paused:   g.paused,
	}
}

// Simulation exposes the underlying rules engine.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Summary reports the current episode for the run history.
func (g *Game) Summary() registry.Summary {
	st := g.sim.Stats()
	kills := make(map[string]int, 3)
	for _, c := range patrolCategories {
		kills[c.String()] = st.Kills[c]
	}
	return registry.Summary{
		Score:      g.sim.Player().Score,
		MaxLevel:   st.MaxLevel,
		Kills:      kills,
		ShotsFired: st.ShotsFired,
		Duration:   time.Duration(st.TimeSurvivedMs) * time.Millisecond,
		Seed:       g.runtime.Seed,
	}
}

var _ registry.Summarizer = (*Game)(nil)
