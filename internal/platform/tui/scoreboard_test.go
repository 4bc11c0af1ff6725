package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/match"
	"github.com/vovakirdan/connectn/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if view := m.View(); !strings.Contains(view, "No matches recorded yet") {
		t.Errorf("empty scoreboard view:\n%s", view)
	}
}

func TestScoreboardShowsResults(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	b, _ := board.FromMoves(7, 6, 4, "0101010")
	res := match.Result{
		MatchID: "m1",
		Players: [2]string{"alpha", "beta"},
		Winner:  board.First,
		Reason:  match.EndWin,
		Turns:   7,
		Board:   b,
	}
	if err := store.SaveMatch(res); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	m := NewScoreboardModel(store, 120, 30)
	view := m.View()
	if !strings.Contains(view, "STANDINGS") || !strings.Contains(view, "alpha") {
		t.Errorf("standings view:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	view = next.(ScoreboardModel).View()
	if !strings.Contains(view, "RECENT MATCHES") || !strings.Contains(view, "1-0") {
		t.Errorf("recent view:\n%s", view)
	}
}
