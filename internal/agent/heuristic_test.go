package agent

import (
	"testing"

	"github.com/vovakirdan/connectn/internal/board"
)

func TestHeuristicByName(t *testing.T) {
	for _, name := range []string{"", "windows", "neighbors"} {
		if _, err := HeuristicByName(name); err != nil {
			t.Errorf("HeuristicByName(%q) failed: %v", name, err)
		}
	}
	if _, err := HeuristicByName("nope"); err == nil {
		t.Error("expected error for unknown heuristic")
	}
}

func TestWindows(t *testing.T) {
	empty, _ := board.Empty(7, 6, 4)
	if got := Windows(empty, board.First); got != 0 {
		t.Errorf("Windows(empty) = %d, want 0", got)
	}

	positions := []string{"3", "33", "3243", "0123456", "332211"}
	for _, moves := range positions {
		b := mustBoard(t, moves)
		if a, z := Windows(b, board.First), Windows(b, board.Second); a != -z {
			t.Errorf("%q: Windows first %d, second %d; want opposites", moves, a, z)
		}
	}

	// A centre piece beats an edge piece.
	centre, edge := mustBoard(t, "3"), mustBoard(t, "0")
	if Windows(centre, board.First) <= Windows(edge, board.First) {
		t.Errorf("centre %d not better than edge %d", Windows(centre, board.First), Windows(edge, board.First))
	}
}

func TestNeighbors(t *testing.T) {
	// First at (0,0) is alone; First at (3,1) sits on Second at (3,0).
	b := mustBoard(t, "033")
	if got := Neighbors(b, board.First); got != 1 {
		t.Errorf("Neighbors(first) = %d, want 1", got)
	}
	if got := Neighbors(b, board.Second); got != 1 {
		t.Errorf("Neighbors(second) = %d, want 1", got)
	}
}
