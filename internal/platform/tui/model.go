package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/knifefall/internal/core"
	"github.com/vovakirdan/knifefall/internal/storage"
)

// Minimum terminal size the game is drawn at.
const (
	minCols = 30
	minRows = 10
)

const (
	phaseReady    = "Ready"
	phasePlaying  = "Playing"
	phaseGameOver = "GameOver"
)

// Game is a fixed-tick simulation the model can drive.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options configures a GameModel.
type Options struct {
	Store      *storage.Store // nil disables score saving
	Logger     *log.Logger    // nil discards logs
	Player     string         // recorded with each saved run
	Difficulty string         // preset name recorded with each saved run
	Renderer   *lipgloss.Renderer

	// Embedded models run inside a menu flow; Back returns to it.
	Embedded bool

	// ScreenshotDir overrides ~/.knifefall/screenshots.
	ScreenshotDir string
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	palette    Palette
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	loopID     int64

	runID      string
	played     time.Duration
	scoreSaved bool // Whether the current game over has been recorded
	status     string

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game and resets it with cfg.
func NewGameModel(game Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		game:       game,
		opts:       opts,
		logger:     logger,
		palette:    NewPalette(opts.Renderer),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		loopID:     nextLoopID(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.playRows())

	m.game.Reset(cfg)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.loopID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouse(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.loopID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.playRows())
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Error("screenshot failed", "err", err)
			m.status = "screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.status = "saved " + filepath.Base(path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		// Leaving mid-round would drop the run; pause first.
		// Hosts that switch models in place drop the Quit command.
		if m.opts.Embedded && m.gameState.Phase != phasePlaying {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action := m.keys.MapKey(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the round going; the game rescales on the next render.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.playRows())
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.PhaseChanged {
		m.onPhaseChange(prev.Phase)
	}
	if m.gameState.Phase == phasePlaying {
		m.played += m.config.TickPeriod()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.loopID, m.config.TickRate)
}

func (m *GameModel) onPhaseChange(from string) {
	state := m.gameState
	m.logger.Debug("phase changed",
		"from", from,
		"to", state.Phase,
		"score", state.Score,
		"lives", state.Lives,
		"speed", state.Speed,
	)

	switch {
	case state.Phase == phasePlaying && from == phaseReady:
		m.runID = uuid.NewString()
		m.played = 0
		m.status = ""
	case state.Phase == phaseGameOver:
		m.logger.Info("game over", "run", m.runID, "score", state.Score, "played", m.played)
		if !m.scoreSaved {
			m.saveRun()
		}
	case from == phaseGameOver:
		m.scoreSaved = false
	}
}

// saveRun records the finished round once. Empty rounds are not kept.
func (m *GameModel) saveRun() {
	m.scoreSaved = true
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}

	run := storage.Run{
		RunID:      m.runID,
		Player:     m.opts.Player,
		Score:      m.gameState.Score,
		Speed:      m.gameState.Speed,
		Difficulty: m.opts.Difficulty,
		Duration:   m.played,
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "run", m.runID, "err", err)
		return
	}
	m.logger.Info("run saved", "run", m.runID, "score", run.Score)
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *GameModel) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".knifefall", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	m.game.Render(m.screen)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// helpView renders the help line, with the last status message appended
// when it fits.
func (m GameModel) helpView() string {
	view := m.help.View(m.keys)
	if m.status != "" && !m.help.ShowAll && lipgloss.Width(view)+2+len(m.status) <= m.width {
		view += "  " + m.status
	}
	return view
}

// playRows is the number of rows left for the game below the help view.
func (m GameModel) playRows() int {
	return max(m.height-lipgloss.Height(m.helpView()), 0)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.width < minCols || m.playRows() < minRows {
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			minCols, minRows+lipgloss.Height(m.helpView()), m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return m.palette.Render(m.screen) + "\n" + m.helpView()
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// RunID returns the id of the current or last round, empty before the first start.
func (m GameModel) RunID() string {
	return m.runID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	_, err := RunEmbedded(game, cfg, opts)
	return err
}

// RunEmbedded runs game and returns the final model so a menu loop can
// tell a quit from a return to the menu.
func RunEmbedded(game Game, cfg core.RuntimeConfig, opts Options) (GameModel, error) {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // The player follows the pointer
	)

	finalModel, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := finalModel.(GameModel); ok {
		return m, nil
	}
	return model, nil
}
