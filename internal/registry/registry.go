// Package registry lets games announce themselves to the host.
// Games register an Entry from init(); the host lists entries in
// registration order and creates fresh instances on demand.
package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Game is the contract between a game and the terminal host.
// Games never see Bubble Tea; the host owns input mapping, timing and output.
type Game interface {
	// ID is the stable identifier used on the command line and in score tables.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh episode for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Summary describes a finished episode for the run history.
type Summary struct {
	Score      int
	MaxLevel   int
	Kills      map[string]int // by category name
	ShotsFired int
	Duration   time.Duration
	Seed       int64
}

// Summarizer is implemented by games that can report a finished episode.
type Summarizer interface {
	Summary() Summary
}

// Factory creates a new game instance.
type Factory func() Game

// Entry describes a registered game.
type Entry struct {
	ID          string
	Title       string
	Description string
	Factory     Factory
}

var (
	entries []Entry
	byID    = make(map[string]int)
	mu      sync.RWMutex
)

// Register adds a game. Panics on a duplicate ID or a nil factory.
// An empty Title is taken from a throwaway instance.
func Register(e Entry) {
	mu.Lock()
	defer mu.Unlock()

	if e.Factory == nil {
		panic(fmt.Sprintf("registry: game %q has no factory", e.ID))
	}
	if _, exists := byID[e.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", e.ID))
	}
	if e.Title == "" {
		e.Title = e.Factory().Title()
	}

	byID[e.ID] = len(entries)
	entries = append(entries, e)
}

// List returns all registered games in registration order.
func List() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry for id.
func Lookup(id string) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return Entry{}, false
	}
	return entries[i], true
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	e, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.Factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
