// Package tui hosts registered games in Bubble Tea: the fixed-rate tick
// loop, key mapping, menus, the high-score board and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// TickMsg drives one simulation step of the game model whose tick chain
// produced it. Gen identifies that chain.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextTickGen returns a generation no earlier model has used.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd schedules the next TickMsg of chain gen at tickRate per second.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
