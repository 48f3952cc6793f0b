package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/knifefall/internal/config"
	"github.com/vovakirdan/knifefall/internal/core"
	"github.com/vovakirdan/knifefall/internal/storage"
)

func menuKeys(t *testing.T, m MenuModel, keys ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(MenuModel)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 7}
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"play", []tea.KeyMsg{keyEnter}, MenuChoicePlay},
		{"scores", []tea.KeyMsg{keyDown, keyEnter}, MenuChoiceScoreboard},
		{"tab opens scores", []tea.KeyMsg{{Type: tea.KeyTab}}, MenuChoiceScoreboard},
		{"quit entry", []tea.KeyMsg{keyDown, keyDown, keyDown, keyEnter}, MenuChoiceQuit},
		{"cursor stops at bottom", []tea.KeyMsg{keyDown, keyDown, keyDown, keyDown, keyDown, keyEnter}, MenuChoiceQuit},
		{"cursor stops at top", []tea.KeyMsg{keyUp, keyUp, keyEnter}, MenuChoicePlay},
		{"q quits", []tea.KeyMsg{runeKey("q")}, MenuChoiceQuit},
		{"difficulty entry stays open", []tea.KeyMsg{keyDown, keyDown, keyEnter}, MenuChoiceNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(nil, testConfig(), config.DifficultyNormal, nil)
			m = menuKeys(t, m, tc.keys...)
			if m.Choice() != tc.want {
				t.Errorf("Choice() = %v, expected %v", m.Choice(), tc.want)
			}
		})
	}
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), config.DifficultyHard, nil)
	if m.Difficulty() != config.DifficultyHard {
		t.Fatalf("initial difficulty = %s, expected hard", m.Difficulty())
	}

	// Left/right only act on the difficulty entry
	m = menuKeys(t, m, keyRight)
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("right on Play changed difficulty to %s", m.Difficulty())
	}

	m = menuKeys(t, m, keyDown, keyDown, keyRight)
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("after right = %s, expected fixed", m.Difficulty())
	}
	m = menuKeys(t, m, keyRight)
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("right should wrap to normal, got %s", m.Difficulty())
	}
	m = menuKeys(t, m, keyLeft)
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("left should wrap back to fixed, got %s", m.Difficulty())
	}
	m = menuKeys(t, m, keyEnter)
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("enter on the entry should advance, got %s", m.Difficulty())
	}

	if !strings.Contains(m.View(), "Difficulty: < normal >") {
		t.Error("menu should show the selected difficulty")
	}
}

func TestMenuHighScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.Run{Score: 42}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel(store, testConfig(), config.DifficultyNormal, nil)
	if !strings.Contains(m.View(), "High score: 42") {
		t.Error("menu should show the stored high score")
	}
}

func TestScoreboardRows(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.Run{Player: "alice", Score: 1200, Speed: 2.4})
	store.SaveRun(storage.Run{Player: "bob", Score: 300, Speed: 1.0})
	store.SaveRun(storage.Run{Player: "alice", Score: 5, Speed: 1.0})

	m := NewScoreboardModel(store, "bob", 100, 30, nil)

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, expected 3", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "1,200" || rows[0][2] != "alice" || rows[0][3] != "2.4x" {
		t.Errorf("unexpected top row: %v", rows[0])
	}
	if !strings.Contains(m.View(), "3 runs") {
		t.Error("stats line should count every run")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	rows = m.table.Rows()
	if len(rows) != 1 || rows[0][2] != "bob" {
		t.Errorf("mine-only rows = %v, expected bob's run", rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24, nil)
	if len(m.table.Rows()) != 0 {
		t.Error("expected no rows without a store")
	}
	if !strings.Contains(m.View(), "not being recorded") {
		t.Error("expected a notice that scores are not recorded")
	}

	// The mine toggle is disabled without a player
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).mineOnly {
		t.Error("tab should do nothing without a player")
	}
}

func sessionKeys(t *testing.T, m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(SessionModel)
	}
	return m, cmd
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(SessionOptions{
		Store:      store,
		Player:     "carol",
		ConfigPath: "",
		Difficulty: config.DifficultyEasy,
	}, testConfig())

	// Menu -> game
	m, cmd := sessionKeys(t, m, keyEnter)
	if m.screen != screenGame || m.game == nil {
		t.Fatal("enter on Play should open the game")
	}
	if cmd == nil {
		t.Error("opening the game should start its tick loop")
	}
	if m.game.opts.Difficulty != "easy" || m.game.opts.Player != "carol" {
		t.Errorf("game options = %+v", m.game.opts)
	}

	// Game -> menu
	m, _ = sessionKeys(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu || m.game != nil {
		t.Fatal("esc in Ready should return to the menu")
	}
	if m.menu.Difficulty() != config.DifficultyEasy {
		t.Errorf("menu forgot the difficulty: %s", m.menu.Difficulty())
	}

	// Menu -> scores -> menu
	m, _ = sessionKeys(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	m, _ = sessionKeys(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Fatal("esc should leave the scoreboard")
	}

	// Quit
	m, cmd = sessionKeys(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q should end the session")
	}
}
