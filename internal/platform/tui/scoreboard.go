package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/knifefall/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores    = 100 // Max runs to load
	chromeHeight = 9   // Title, stats, borders and help around the table
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Mine key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Mine, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Mine},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Mine: key.NewBinding(
			key.WithKeys("tab", "m"),
			key.WithHelp("tab", "all/mine"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type scoreboardStyles struct {
	title  lipgloss.Style
	stats  lipgloss.Style
	border lipgloss.Style
	help   lipgloss.Style
	table  table.Styles
}

func newScoreboardStyles(r *lipgloss.Renderer) scoreboardStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	t := table.DefaultStyles()
	t.Header = r.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	t.Cell = r.NewStyle().Padding(0, 1)
	t.Selected = r.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	return scoreboardStyles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		stats: r.NewStyle().Foreground(lipgloss.Color("245")),
		border: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		help:  r.NewStyle().Foreground(lipgloss.Color("241")),
		table: t,
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	store     *storage.Store
	player    string // "" hides the all/mine toggle
	mineOnly  bool
	runs      []storage.Run
	stats     *storage.Stats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	styles    scoreboardStyles
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model. player enables the
// toggle between all runs and the player's own.
func NewScoreboardModel(store *storage.Store, player string, width, height int, r *lipgloss.Renderer) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	keys.Mine.SetEnabled(player != "")

	m := ScoreboardModel{
		store:  store,
		player: player,
		keys:   keys,
		help:   help.New(),
		styles: newScoreboardStyles(r),
		width:  width,
		height: height,
	}
	m.help.Width = width

	m.table = m.createTable()
	m.loadRuns()

	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Player", Width: 12},
		{Title: "Speed", Width: 6},
		{Title: "Played", Width: 16},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2 // cell padding
	}
	if spare := m.width - 6 - used; spare > 0 {
		columns[2].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-chromeHeight, 3)),
		table.WithStyles(m.styles.table),
	)
	return t
}

// loadRuns reloads runs and statistics from the store.
func (m *ScoreboardModel) loadRuns() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		if m.mineOnly {
			m.runs, m.loadErr = m.store.PlayerRuns(m.player, maxScores)
		} else {
			m.runs, m.loadErr = m.store.TopRuns(maxScores)
		}
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetStats()
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			humanize.Comma(int64(r.Score)),
			player,
			fmt.Sprintf("%.1fx", r.Speed),
			humanize.Time(r.CreatedAt),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Mine):
			m.mineOnly = !m.mineOnly
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// statsLine summarises every recorded run.
func (m ScoreboardModel) statsLine() string {
	switch {
	case m.store == nil:
		return "Scores are not being recorded"
	case m.loadErr != nil:
		return "Could not load scores: " + m.loadErr.Error()
	case m.stats == nil || m.stats.RunsCount == 0:
		return "No runs yet"
	}

	s := m.stats
	return fmt.Sprintf("%s runs  |  best %s  |  avg %.1f  |  top speed %.1fx  |  last played %s",
		humanize.Comma(int64(s.RunsCount)),
		humanize.Comma(int64(s.HighScore)),
		s.AvgScore,
		s.TopSpeed,
		humanize.Time(s.LastPlayed),
	)
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if m.mineOnly {
		title = fmt.Sprintf("HIGH SCORES - %s", m.player)
	}
	b.WriteString(m.styles.title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.stats.Render(m.statsLine()))
	b.WriteString("\n\n")

	b.WriteString(m.styles.border.Render(m.table.View()))
	b.WriteString("\n")

	b.WriteString(m.styles.help.Render(m.help.View(m.keys)))

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
}

// IsQuitting returns true if user requested to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack returns true if user requested to go back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard runs the scoreboard and returns whether to go back to menu.
func RunScoreboard(store *storage.Store, player string, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, player, width, height, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
