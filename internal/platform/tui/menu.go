package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/registry"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

// MenuItemKind says what selecting an item does.
type MenuItemKind int

const (
	MenuPlay MenuItemKind = iota
	MenuScores
	MenuQuit
)

// MenuItem is one selectable line of the menu.
type MenuItem struct {
	Kind        MenuItemKind
	GameID      string // MenuPlay only
	Label       string
	Description string
}

// MenuModel is the main menu: one Play entry per registered game, then
// High Scores and Quit.
type MenuModel struct {
	items     []MenuItem
	best      map[string]int
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	renderer  *lipgloss.Renderer
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a menu. store may be nil; it is only read for the
// best score shown next to each game.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	entries := registry.List()
	items := make([]MenuItem, 0, len(entries)+2)
	best := make(map[string]int, len(entries))
	for _, e := range entries {
		items = append(items, MenuItem{
			Kind:        MenuPlay,
			GameID:      e.ID,
			Label:       "Play " + e.Title,
			Description: e.Description,
		})
		if store != nil {
			if hs, err := store.HighScore(e.ID); err == nil {
				best[e.ID] = hs
			}
		}
	}
	items = append(items,
		MenuItem{Kind: MenuScores, Label: "High Scores", Description: "Top scores and recent runs"},
		MenuItem{Kind: MenuQuit, Label: "Quit"},
	)

	return MenuModel{
		items:     items,
		best:      best,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		renderer:  r,
	}
}

// Init initializes the menu.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		item := m.items[m.cursor]
		if item.Kind == MenuQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &item

	case MenuActionScoreboard:
		for _, item := range m.items {
			if item.Kind == MenuScores {
				m.selected = &item
				break
			}
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	activeStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("S P A C E   S H O O T E R", m.width)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Label
		if item.Kind == MenuPlay {
			if hs := m.best[item.GameID]; hs > 0 {
				line += fmt.Sprintf("  (best %d)", hs)
			}
		}
		if i == m.cursor {
			line = "> " + strings.TrimPrefix(line, "  ")
			b.WriteString(activeStyle.Render(centerText(line, m.width)))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if desc := m.items[m.cursor].Description; desc != "" {
		b.WriteString(dimStyle.Render(centerText(desc, m.width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen item, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
