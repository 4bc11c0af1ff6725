package agent

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/connectn/internal/board"
)

func mustBoard(t *testing.T, moves string) board.Board {
	t.Helper()
	b, err := board.FromMoves(7, 6, 4, moves)
	if err != nil {
		t.Fatalf("FromMoves(%q) failed: %v", moves, err)
	}
	return b
}

// play runs one turn and returns every submission in order.
func play(t *testing.T, a Agent, ctx context.Context, b board.Board, player board.Player) []int {
	t.Helper()
	var got []int
	req := TurnRequest{Board: b, Player: player, Opponent: "test", WinLength: b.WinLength()}
	if err := a.TakeTurn(ctx, req, func(c int) { got = append(got, c) }); err != nil {
		t.Fatalf("TakeTurn failed: %v", err)
	}
	return got
}

func TestRegistry(t *testing.T) {
	for _, id := range []string{"example", "greedy", "minimax"} {
		if !Exists(id) {
			t.Errorf("agent %q not registered", id)
		}
	}

	ids := make([]string, 0)
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.Name == "" {
			t.Errorf("agent %q has no name", info.ID)
		}
	}
	if !slices.IsSorted(ids) {
		t.Errorf("List() not sorted: %v", ids)
	}

	if _, err := Create("nobody", Options{}); err == nil {
		t.Error("expected error for unknown agent")
	}
	if _, err := Create("minimax", Options{Heuristic: "bogus"}); err == nil {
		t.Error("expected error for unknown heuristic")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("example", func(Options) (Agent, error) { return Example{}, nil })
}

func TestExampleLastSubmissionIsLastColumn(t *testing.T) {
	b := mustBoard(t, "666666")
	got := play(t, Example{}, context.Background(), b, board.First)
	if !slices.Equal(got, []int{0, 5}) {
		t.Errorf("submissions = %v, want [0 5]", got)
	}
}

func TestGreedy(t *testing.T) {
	tests := []struct {
		name  string
		moves string
		want  int
	}{
		// First has three in column 6.
		{"wins", "606162", 6},
		// Second has three in column 0 and First cannot win.
		{"blocks", "303050", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := play(t, NewGreedy(1), context.Background(), mustBoard(t, tt.moves), board.First)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("submissions = %v, want [%d]", got, tt.want)
			}
		})
	}
}

func TestGreedyRandomIsSeededAndLegal(t *testing.T) {
	b := mustBoard(t, "000000")
	a, c := NewGreedy(7), NewGreedy(7)
	for range 20 {
		x := play(t, a, context.Background(), b, board.First)
		y := play(t, c, context.Background(), b, board.First)
		if !slices.Equal(x, y) {
			t.Fatalf("same seed diverged: %v vs %v", x, y)
		}
		if x[0] == 0 {
			t.Fatalf("greedy played the full column")
		}
	}
}

func TestMinimaxWinsAndBlocks(t *testing.T) {
	for _, parallel := range []int{0, 3} {
		a, err := NewMinimax(Options{MaxDepth: 1, Parallel: parallel})
		if err != nil {
			t.Fatalf("NewMinimax failed: %v", err)
		}

		got := play(t, a, context.Background(), mustBoard(t, "606162"), board.First)
		if len(got) == 0 || got[len(got)-1] != 6 {
			t.Errorf("parallel %d: winning submissions = %v, want last 6", parallel, got)
		}

		got = play(t, a, context.Background(), mustBoard(t, "303050"), board.First)
		if len(got) == 0 || got[len(got)-1] != 0 {
			t.Errorf("parallel %d: blocking submissions = %v, want last 0", parallel, got)
		}
	}
}

func TestMinimaxPlaysSecond(t *testing.T) {
	// First threatens column 6; Second must block.
	b := mustBoard(t, "60616")
	a, _ := NewMinimax(Options{MaxDepth: 1})
	got := play(t, a, context.Background(), b, board.Second)
	if len(got) == 0 || got[len(got)-1] != 6 {
		t.Errorf("submissions = %v, want last 6", got)
	}
}

func TestMinimaxHonoursMaxDepth(t *testing.T) {
	a, _ := NewMinimax(Options{MaxDepth: 2})
	b, _ := board.Empty(7, 6, 4)
	if got := play(t, a, context.Background(), b, board.First); len(got) != 3 {
		t.Errorf("got %d submissions, want one per depth 0..2", len(got))
	}
}

func TestMinimaxStopsAtDeadline(t *testing.T) {
	a, _ := NewMinimax(Options{MaxDepth: -1})
	b, _ := board.Empty(7, 6, 4)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	got := play(t, a, ctx, b, board.First)
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("TakeTurn ran %v past a 100ms deadline", elapsed)
	}
	if len(got) == 0 {
		t.Error("no move submitted before the deadline")
	}
}

func TestMinimaxCancelledBeforeStart(t *testing.T) {
	a, _ := NewMinimax(Options{MaxDepth: -1})
	b, _ := board.Empty(7, 6, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := play(t, a, ctx, b, board.First); len(got) != 0 {
		t.Errorf("cancelled turn submitted %v", got)
	}
}

func TestMinimaxUnboundedStopsOnForcedWin(t *testing.T) {
	a, _ := NewMinimax(Options{MaxDepth: -1})
	got := play(t, a, context.Background(), mustBoard(t, "606162"), board.First)
	if !slices.Equal(got, []int{6}) {
		t.Errorf("submissions = %v, want [6] from a single proven depth", got)
	}
}
