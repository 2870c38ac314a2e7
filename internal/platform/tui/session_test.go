package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	// Keep user config files out of the test.
	t.Setenv("HOME", t.TempDir())
	return NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "ada", "easy", nil)
}

func TestSessionPlayAndReturn(t *testing.T) {
	m := newTestSession(t)

	if m.SessionID() == "" {
		t.Fatal("session should get an id")
	}
	if m.menu.Difficulty() != "easy" {
		t.Errorf("Difficulty() = %q, expected easy", m.menu.Difficulty())
	}

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenGame {
		t.Fatalf("current = %v, expected game screen", m.current)
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}
	if m.game.player != "ada" || m.game.sessionID != m.SessionID() {
		t.Errorf("game player/session = %q/%q", m.game.player, m.game.sessionID)
	}
	if m.game.State().Lives != 5 {
		t.Errorf("Lives = %d, expected 5 on easy", m.game.State().Lives)
	}

	// Launch, then pause so back is allowed.
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = sessionSend(t, m, TickMsg{Gen: m.game.tickGen})
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = sessionSend(t, m, TickMsg{Gen: m.game.tickGen})
	if !m.game.State().Paused {
		t.Fatal("game should be paused")
	}

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu {
		t.Errorf("current = %v, expected menu after back", m.current)
	}
	if m.quitting {
		t.Error("back should not end the session")
	}
}

func TestSessionScoresAndQuit(t *testing.T) {
	m := newTestSession(t)

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != screenScores {
		t.Fatalf("current = %v, expected scores screen", m.current)
	}

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu {
		t.Errorf("current = %v, expected menu after leaving scores", m.current)
	}

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.quitting || cmd == nil {
		t.Error("q on the menu should end the session")
	}
}

func TestMenuDifficultyCycles(t *testing.T) {
	menu := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "")
	if menu.Difficulty() != "normal" {
		t.Fatalf("Difficulty() = %q, expected normal", menu.Difficulty())
	}

	next, _ := menu.Update(tea.KeyMsg{Type: tea.KeyRight})
	menu = next.(MenuModel)
	if menu.Difficulty() != "hard" {
		t.Errorf("after right: %q, expected hard", menu.Difficulty())
	}

	next, _ = menu.Update(tea.KeyMsg{Type: tea.KeyRight})
	menu = next.(MenuModel)
	if menu.Difficulty() != "easy" {
		t.Errorf("after wrap: %q, expected easy", menu.Difficulty())
	}

	next, cmd := menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu = next.(MenuModel)
	if menu.Choice() != MenuChoicePlay || cmd == nil {
		t.Errorf("Choice() = %v, expected play with quit", menu.Choice())
	}
}
