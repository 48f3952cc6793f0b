package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/knifefall/internal/config"
	"github.com/vovakirdan/knifefall/internal/core"
	"github.com/vovakirdan/knifefall/internal/storage"
)

// MenuChoice is what the player picked on the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScoreboard
	MenuChoiceQuit
)

// difficulties is the order the Difficulty entry cycles through.
var difficulties = []config.DifficultyPreset{
	config.DifficultyNormal,
	config.DifficultyEasy,
	config.DifficultyHard,
	config.DifficultyFixed,
}

type menuItem struct {
	label  string
	choice MenuChoice // MenuChoiceNone marks the difficulty selector
}

var menuItems = []menuItem{
	{"Play", MenuChoicePlay},
	{"High Scores", MenuChoiceScoreboard},
	{"Difficulty", MenuChoiceNone},
	{"Quit", MenuChoiceQuit},
}

type menuStyles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	footer   lipgloss.Style
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return menuStyles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		subtitle: r.NewStyle().Foreground(lipgloss.Color("245")),
		item:     r.NewStyle().Foreground(lipgloss.Color("252")),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		footer:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor     int
	difficulty int // index into difficulties
	width      int
	height     int
	highScore  int
	config     core.RuntimeConfig
	styles     menuStyles
	quitting   bool
	choice     MenuChoice
}

// NewMenuModel creates a new menu model. The store, if any, supplies the
// high score line.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset, r *lipgloss.Renderer) MenuModel {
	m := MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		styles: newMenuStyles(r),
	}
	for i, d := range difficulties {
		if d == preset {
			m.difficulty = i
		}
	}
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init initializes the menu model.
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.onDifficulty() {
			m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)
		}

	case MenuActionRight:
		if m.onDifficulty() {
			m.difficulty = (m.difficulty + 1) % len(difficulties)
		}

	case MenuActionSelect:
		item := menuItems[m.cursor]
		if item.choice == MenuChoiceNone {
			m.difficulty = (m.difficulty + 1) % len(difficulties)
			return m, nil
		}
		m.choice = item.choice
		m.quitting = item.choice == MenuChoiceQuit
		return m, tea.Quit

	case MenuActionScoreboard:
		m.choice = MenuChoiceScoreboard
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) onDifficulty() bool {
	return menuItems[m.cursor].choice == MenuChoiceNone
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.choice != MenuChoiceNone {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.title.Render("K N I F E F A L L"))
	b.WriteString("\n")
	b.WriteString(m.styles.subtitle.Render("slice the fruit, dodge the bombs"))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		label := item.label
		if item.choice == MenuChoiceNone {
			label = fmt.Sprintf("Difficulty: < %s >", m.Difficulty())
		}

		if i == m.cursor {
			b.WriteString(m.styles.selected.Render("> " + label))
		} else {
			b.WriteString(m.styles.item.Render("  " + label))
		}
		b.WriteString("\n")
	}

	if m.highScore > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.subtitle.Render(fmt.Sprintf("High score: %d", m.highScore)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.footer.Render("↑/↓ navigate  ←/→ difficulty  enter select  tab scores  q quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, b.String()))
}

// Choice returns the picked entry, MenuChoiceNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the currently selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, preset, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Difficulty: preset, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuChoiceQuit, Difficulty: preset, Config: cfg}, nil
	}

	result := MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}
	// Closed without a pick, e.g. by a signal.
	if result.Choice == MenuChoiceNone {
		result.Choice = MenuChoiceQuit
	}
	return result, nil
}
