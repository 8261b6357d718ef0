package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Painter turns a Screen into styled terminal output for one renderer.
// SSH sessions get their own renderer so colors match the client terminal.
type Painter struct {
	styles []lipgloss.Style // indexed by core.Color
}

// NewPainter builds a painter for r, or for the default renderer if r is nil.
func NewPainter(r *lipgloss.Renderer) Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	colors := core.Colors()
	styles := make([]lipgloss.Style, len(colors))
	for i, c := range colors {
		st := r.NewStyle()
		if code := c.Code(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		styles[i] = st
	}
	return Painter{styles: styles}
}

func (p Painter) style(c core.Color) lipgloss.Style {
	if int(c) < len(p.styles) {
		return p.styles[c]
	}
	return p.styles[core.ColorDefault]
}

// Render converts the screen to a string, emitting one styled span per run
// of same-colored cells.
func (p Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
