package shooter

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// patrolCategories are spawned on timers and move with patrol motion.
var patrolCategories = []Category{CategoryEnemy, CategoryAsteroid, CategoryBoss}

// Stats collects per-episode counters.
type Stats struct {
	Kills          [categoryCount]int
	ShotsFired     int
	Hits           int
	DropsCollected int
	HealthRestored int
	DamageTaken    int
	TimeSurvivedMs float64
	MaxLevel       int
}

// TotalKills returns the number of patrol entities destroyed by bullets.
func (s Stats) TotalKills() int {
	n := 0
	for _, c := range patrolCategories {
		n += s.Kills[c]
	}
	return n
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithOverlapper replaces the default circle overlap test.
func WithOverlapper(o Overlapper) Option {
	return func(s *Simulation) { s.overlap = o }
}

// WithRandom replaces the seeded random source.
func WithRandom(r Random) Option {
	return func(s *Simulation) { s.rng = r }
}

// WithPresenter sets the receiver of sounds, effects and notifications.
func WithPresenter(p Presenter) Option {
	return func(s *Simulation) { s.presenter = p }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) { s.log = l }
}

// Simulation is the shooter rules engine. It is driven entirely by
// OnFrameTick and the input call-ins and is not safe for concurrent use.
type Simulation struct {
	cfg       config.ShooterConfig
	reg       *Registry
	timers    *TimerQueue
	overlap   Overlapper
	rng       Random
	presenter Presenter
	log       *log.Logger

	now          float64 // ms since the episode started
	player       PlayerState
	playerHandle Handle
	difficulty   DifficultyState
	rates        SpawnRates
	lastSpawn    [categoryCount]float64
	spawning     bool

	dir      core.Vec
	firing   bool
	lastShot float64

	stats      Stats
	noticeSent bool
}

// NewSimulation creates a simulation and starts the first episode.
func NewSimulation(cfg config.ShooterConfig, seed int64, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:       cfg,
		reg:       NewRegistry(),
		overlap:   CircleOverlapper{BaseRadius: cfg.World.BaseRadius},
		presenter: NopPresenter{},
		log:       log.New(io.Discard),
	}
	s.timers = NewTimerQueue(s.reg.Alive)

	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRandom(seed)
	}

	s.reset()
	return s
}

// reset reinitializes every piece of episode state.
func (s *Simulation) reset() {
	s.reg.Reset()
	s.timers.CancelAll()

	s.now = 0
	s.player = NewPlayerState(s.cfg.Player.MaxHealth)
	s.difficulty = NewDifficultyState(s.cfg.Difficulty.MaxLevel)
	s.rates = ComputeSpawnRates(s.cfg, s.difficulty.Level)
	s.lastSpawn = [categoryCount]float64{}
	s.spawning = true

	s.dir = core.Vec{}
	s.firing = false
	s.lastShot = -float64(s.cfg.Player.FireDelayMs)

	s.stats = Stats{MaxLevel: s.difficulty.Level}
	s.noticeSent = false

	ship := s.reg.Add(&Entity{
		Category: CategoryPlayer,
		Pos:      core.V(s.cfg.Player.StartX, s.cfg.Player.StartY),
		Scale:    s.cfg.Player.Scale,
	})
	s.playerHandle = ship.Handle

	for range s.cfg.Stars.Count {
		s.reg.Add(&Entity{
			Category: CategoryStar,
			Pos:      core.V(s.rng.Range(0, s.cfg.World.Width), s.rng.Range(0, s.cfg.World.Height)),
			Vel:      core.V(-s.rng.Range(s.cfg.Stars.MinSpeed, s.cfg.Stars.MaxSpeed), 0),
			Scale:    0,
		})
	}

	if s.cfg.Difficulty.Enabled {
		s.timers.Every(s.now, float64(s.cfg.Difficulty.LevelIntervalMs), EventLevelUp, NoHandle)
	}
}

// OnFrameTick advances the simulation by deltaMs milliseconds.
func (s *Simulation) OnFrameTick(deltaMs float64) {
	if deltaMs <= 0 {
		return
	}
	s.now += deltaMs
	dt := deltaMs / 1000

	s.runTimers()

	if s.spawning {
		for _, c := range patrolCategories {
			s.trySpawn(c, s.now)
		}
	}

	if !s.player.GameOver() {
		s.stats.TimeSurvivedMs += deltaMs
		s.movePlayer(dt)
		s.fireIfReady()
	}

	s.updateMovement(dt)
	s.resolveCollisions()
	s.reg.Sweep()
}

// OnDirectionalInput stores the player's steering vector. It takes effect on
// the next OnFrameTick.
func (s *Simulation) OnDirectionalInput(v core.Vec) {
	s.dir = v
}

// OnFireInput sets whether the fire control is held.
func (s *Simulation) OnFireInput(pressed bool) {
	s.firing = pressed
}

// OnRestart starts a fresh episode.
func (s *Simulation) OnRestart() {
	s.log.Debug("restart", "previous_score", s.player.Score)
	s.reset()
}

// runTimers fires every timer due at the current time, in order.
func (s *Simulation) runTimers() {
	for {
		t, ok := s.timers.PopDue(s.now)
		if !ok {
			return
		}
		s.fire(t)
	}
}

func (s *Simulation) fire(t Timer) {
	switch t.Event {
	case EventLevelUp:
		s.levelUp()
	case EventShoot:
		if e, ok := s.reg.Get(t.Owner); ok {
			s.shootFrom(e)
		}
	case EventExpire:
		if e, ok := s.reg.Get(t.Owner); ok {
			s.reg.Destroy(e)
		}
	case EventGameOverNotice:
		s.noticeSent = true
		s.presenter.GameOver(s.player.Score)
	}
}

// levelUp is the difficulty controller transition.
func (s *Simulation) levelUp() {
	s.difficulty.Elapsed += float64(s.cfg.Difficulty.LevelIntervalMs)
	if !s.difficulty.Advance() {
		return
	}
	level := s.difficulty.Level
	s.rates = ComputeSpawnRates(s.cfg, level)
	s.stats.MaxLevel = max(s.stats.MaxLevel, level)

	s.log.Debug("level up",
		"level", level,
		"enemy_ms", s.rates.Enemy,
		"asteroid_ms", s.rates.Asteroid,
		"boss_ms", s.rates.Boss,
	)
	s.presenter.LevelUp(level)
	s.sound(SoundLevelUp, 1, 1)
}

// sound plays a cue relative to the configured base volume.
func (s *Simulation) sound(id SoundID, volume, rate float64) {
	s.presenter.PlaySound(id, SoundOptions{
		Volume: core.ClampF(s.cfg.Combat.SoundVolumeBase*volume, 0, 1),
		Rate:   rate,
	})
}

// Now returns the simulation time in ms.
func (s *Simulation) Now() float64 { return s.now }

// Player returns a copy of the player state.
func (s *Simulation) Player() PlayerState { return s.player }

// Difficulty returns a copy of the difficulty state.
func (s *Simulation) Difficulty() DifficultyState { return s.difficulty }

// SpawnRates returns the current spawn intervals.
func (s *Simulation) SpawnRates() SpawnRates { return s.rates }

// Stats returns the episode counters.
func (s *Simulation) Stats() Stats { return s.stats }

// GameOver reports whether the episode has ended.
func (s *Simulation) GameOver() bool { return s.player.GameOver() }

// GameOverNoticed reports whether the delayed game-over notice has fired.
func (s *Simulation) GameOverNoticed() bool { return s.noticeSent }

// Spawning reports whether spawners are running.
func (s *Simulation) Spawning() bool { return s.spawning }

// Config returns the configuration the simulation runs with.
func (s *Simulation) Config() config.ShooterConfig { return s.cfg }

// Entities returns the live entities of a category.
func (s *Simulation) Entities(c Category) []*Entity { return s.reg.Active(c) }

// Ship returns the player entity while it is alive.
func (s *Simulation) Ship() (*Entity, bool) { return s.reg.Get(s.playerHandle) }

// PendingTimers returns the number of scheduled timers.
func (s *Simulation) PendingTimers() int { return s.timers.Len() }
