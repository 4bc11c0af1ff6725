package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/match"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func result(t *testing.T, first, second string, winner board.Player, reason match.EndReason) match.Result {
	t.Helper()
	b, err := board.FromMoves(7, 6, 4, "0101010")
	if err != nil {
		t.Fatalf("FromMoves failed: %v", err)
	}
	return match.Result{
		MatchID:  uuid.NewString(),
		Players:  [2]string{first, second},
		Winner:   winner,
		Reason:   reason,
		Turns:    7,
		Board:    b,
		Duration: 1500 * time.Millisecond,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	res := result(t, "a", "b", board.First, match.EndWin)
	if err := store.SaveMatch(res); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if rec, err := store.MatchByID(res.MatchID); err != nil || rec == nil {
		t.Errorf("match lost across reopen: %v, %v", rec, err)
	}
}

func TestSaveAndRetrieveMatch(t *testing.T) {
	store := openTestStore(t)

	res := result(t, "minimax", "greedy", board.First, match.EndWin)
	if err := store.SaveMatch(res); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	rec, err := store.MatchByID(res.MatchID)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if rec == nil {
		t.Fatal("Expected match to be found")
	}

	if rec.FirstAgent != "minimax" || rec.SecondAgent != "greedy" {
		t.Errorf("Expected minimax vs greedy, got %s vs %s", rec.FirstAgent, rec.SecondAgent)
	}
	if rec.Winner != board.First || rec.Score() != "1-0" {
		t.Errorf("Expected first to win, got %s (%s)", rec.Winner, rec.Score())
	}
	if rec.EndReason != "win" || rec.Forfeit {
		t.Errorf("Expected a normal win, got %q forfeit=%v", rec.EndReason, rec.Forfeit)
	}
	if rec.Turns != 7 || rec.Width != 7 || rec.Height != 6 || rec.WinLength != 4 {
		t.Errorf("Unexpected shape: %+v", rec)
	}
	if rec.Duration != 1500*time.Millisecond {
		t.Errorf("Expected duration 1.5s, got %s", rec.Duration)
	}
	if rec.Board != res.Board.Render(board.First) {
		t.Errorf("Stored board differs:\n%s", rec.Board)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestMatchByIDMissing(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.MatchByID("nope")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if rec != nil {
		t.Errorf("Expected nil for missing match, got %+v", rec)
	}
}

func TestSaveMatchDuplicateID(t *testing.T) {
	store := openTestStore(t)

	res := result(t, "a", "b", board.First, match.EndWin)
	if err := store.SaveMatch(res); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if err := store.SaveMatch(res); err == nil {
		t.Error("Expected error for duplicate match ID")
	}
}

func TestSaveMatchKeepsError(t *testing.T) {
	store := openTestStore(t)

	res := result(t, "broken", "greedy", board.Second, match.EndAgentError)
	res.Err = errors.New("boom")
	if err := store.SaveMatch(res); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	rec, _ := store.MatchByID(res.MatchID)
	if rec == nil || rec.Error != "boom" || !rec.Forfeit {
		t.Errorf("Expected forfeit with error boom, got %+v", rec)
	}
}

func TestRecentMatches(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for _, pair := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}} {
		res := result(t, pair[0], pair[1], board.First, match.EndWin)
		ids = append(ids, res.MatchID)
		if err := store.SaveMatch(res); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	all, err := store.RecentMatches("", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(all))
	}
	if all[0].MatchID != ids[2] {
		t.Errorf("Expected newest match first")
	}

	limited, _ := store.RecentMatches("", 2)
	if len(limited) != 2 {
		t.Errorf("Expected 2 matches with limit, got %d", len(limited))
	}

	forB, _ := store.RecentMatches("b", 10)
	if len(forB) != 2 {
		t.Errorf("Expected 2 matches for b, got %d", len(forB))
	}
}

func TestStandings(t *testing.T) {
	store := openTestStore(t)

	results := []match.Result{
		result(t, "alpha", "beta", board.First, match.EndWin),
		result(t, "beta", "alpha", board.Second, match.EndWin),
		result(t, "alpha", "gamma", board.None, match.EndTie),
		result(t, "gamma", "beta", board.Second, match.EndTimeout),
	}
	for _, r := range results {
		if err := store.SaveMatch(r); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	standings, err := store.Standings()
	if err != nil {
		t.Fatalf("Standings() failed: %v", err)
	}

	want := []Standing{
		{Agent: "alpha", Games: 3, Wins: 2, Losses: 0, Ties: 1, Forfeits: 0},
		{Agent: "beta", Games: 3, Wins: 1, Losses: 2, Ties: 0, Forfeits: 0},
		{Agent: "gamma", Games: 2, Wins: 0, Losses: 1, Ties: 1, Forfeits: 1},
	}
	if len(standings) != len(want) {
		t.Fatalf("Expected %d standings, got %+v", len(want), standings)
	}
	for i := range want {
		if standings[i] != want[i] {
			t.Errorf("standing %d = %+v, want %+v", i, standings[i], want[i])
		}
	}
	if standings[0].Points() != 2.5 {
		t.Errorf("Expected alpha to have 2.5 points, got %v", standings[0].Points())
	}
}

func TestClearMatches(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveMatch(result(t, "a", "b", board.First, match.EndWin)); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}
	if all, _ := store.RecentMatches("", 10); len(all) != 0 {
		t.Errorf("Expected no matches after clear, got %d", len(all))
	}
}
