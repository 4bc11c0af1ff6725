package board

import (
	"errors"
	"slices"
	"testing"
)

func mustEmpty(t *testing.T, width, height, winLength int) Board {
	t.Helper()
	b, err := Empty(width, height, winLength)
	if err != nil {
		t.Fatalf("Empty(%d, %d, %d) failed: %v", width, height, winLength, err)
	}
	return b
}

func mustMove(t *testing.T, b Board, column int, player Player) Board {
	t.Helper()
	next, err := b.ApplyMove(column, player)
	if err != nil {
		t.Fatalf("ApplyMove(%d, %s) failed: %v", column, player, err)
	}
	return next
}

func TestEmpty(t *testing.T) {
	b := mustEmpty(t, 5, 10, 4)

	if b.Width() != 5 || b.Height() != 10 {
		t.Errorf("expected 5x10 board, got %dx%d", b.Width(), b.Height())
	}
	if b.TurnsTaken() != 0 {
		t.Errorf("TurnsTaken() = %d, want 0", b.TurnsTaken())
	}
	if b.Status().Kind != InProgress {
		t.Errorf("Status() = %v, want in progress", b.Status())
	}

	for c := range 5 {
		for r := range 10 {
			if _, occupied, err := b.SlotAt(c, r); err != nil || occupied {
				t.Errorf("SlotAt(%d, %d) = occupied %v, err %v; want empty", c, r, occupied, err)
			}
		}
	}
}

func TestEmptyInvalidDimensions(t *testing.T) {
	tests := []struct {
		name                     string
		width, height, winLength int
	}{
		{"zero width", 0, 5, 4},
		{"zero height", 5, 0, 4},
		{"negative width", -1, 5, 4},
		{"zero win length", 5, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Empty(tt.width, tt.height, tt.winLength)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("Empty(%d, %d, %d) error = %v, want ErrInvalidDimensions", tt.width, tt.height, tt.winLength, err)
			}
		})
	}
}

func TestApplyMoveStacks(t *testing.T) {
	b := mustEmpty(t, 5, 5, 4)
	b = mustMove(t, b, 0, First)
	b = mustMove(t, b, 0, First)
	b = mustMove(t, b, 1, First)

	checks := []struct {
		column, row int
		want        Player
	}{
		{0, 0, First},
		{0, 1, First},
		{1, 0, First},
		{0, 2, None},
		{2, 0, None},
	}
	for _, tc := range checks {
		got, _, err := b.SlotAt(tc.column, tc.row)
		if err != nil {
			t.Fatalf("SlotAt(%d, %d) failed: %v", tc.column, tc.row, err)
		}
		if got != tc.want {
			t.Errorf("SlotAt(%d, %d) = %s, want %s", tc.column, tc.row, got, tc.want)
		}
	}

	if b.TurnsTaken() != 3 {
		t.Errorf("TurnsTaken() = %d, want 3", b.TurnsTaken())
	}
	if b.Status().Kind != InProgress {
		t.Errorf("Status() = %v, want in progress", b.Status())
	}
}

func TestApplyMoveLeavesReceiverUntouched(t *testing.T) {
	before := mustEmpty(t, 4, 4, 4)
	before = mustMove(t, before, 2, First)

	after := mustMove(t, before, 2, Second)

	if p, _, _ := before.SlotAt(2, 1); p != None {
		t.Errorf("original board changed: slot (2,1) = %s", p)
	}
	if before.TurnsTaken() != 1 {
		t.Errorf("original TurnsTaken() = %d, want 1", before.TurnsTaken())
	}
	if p, _, _ := after.SlotAt(2, 1); p != Second {
		t.Errorf("new board slot (2,1) = %s, want second", p)
	}

	// Failed moves leave the receiver usable.
	if _, err := before.ApplyMove(9, First); err == nil {
		t.Fatal("expected error for column 9")
	}
	if _, err := before.ApplyMove(2, First); err != nil {
		t.Errorf("board unusable after failed move: %v", err)
	}
}

func TestApplyMoveErrors(t *testing.T) {
	empty := mustEmpty(t, 5, 5, 4)

	// The column alternates owners, so nobody wins vertically.
	full := empty
	player := First
	for range 5 {
		full = mustMove(t, full, 0, player)
		player = player.Opponent()
	}

	won := empty
	for range 4 {
		won = mustMove(t, won, 3, Second)
	}

	tests := []struct {
		name   string
		board  Board
		column int
		player Player
		want   error
	}{
		{"column past width", empty, 5, First, ErrInvalidColumn},
		{"negative column", empty, -1, First, ErrInvalidColumn},
		{"full column", full, 0, First, ErrColumnFull},
		{"resolved game", won, 1, First, ErrGameAlreadyResolved},
		{"no player", empty, 0, None, ErrInvalidPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.board.ApplyMove(tt.column, tt.player)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ApplyMove(%d, %s) error = %v, want %v", tt.column, tt.player, err, tt.want)
			}
			var moveErr *MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("error %T is not a *MoveError", err)
			}
			if moveErr.Column != tt.column {
				t.Errorf("MoveError.Column = %d, want %d", moveErr.Column, tt.column)
			}
		})
	}
}

func TestSlotAtOutOfBounds(t *testing.T) {
	b := mustEmpty(t, 3, 2, 3)

	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}}
	for _, xy := range coords {
		if _, _, err := b.SlotAt(xy[0], xy[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SlotAt(%d, %d) error = %v, want ErrOutOfBounds", xy[0], xy[1], err)
		}
	}
}

func TestLegalColumns(t *testing.T) {
	b := mustEmpty(t, 4, 2, 3)

	if got := slices.Collect(b.LegalColumns()); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("LegalColumns() on empty board = %v", got)
	}

	b = mustMove(t, b, 1, First)
	b = mustMove(t, b, 1, Second)
	b = mustMove(t, b, 3, First)
	b = mustMove(t, b, 3, Second)

	if got := slices.Collect(b.LegalColumns()); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("LegalColumns() = %v, want [0 2]", got)
	}

	// Early stop is honoured.
	var first []int
	for c := range b.LegalColumns() {
		first = append(first, c)
		break
	}
	if !slices.Equal(first, []int{0}) {
		t.Errorf("first legal column = %v, want [0]", first)
	}
}

func TestLegalColumnsFullBoard(t *testing.T) {
	b, err := FromMoves(2, 2, 3, "0101")
	if err != nil {
		t.Fatalf("FromMoves failed: %v", err)
	}
	if n := len(slices.Collect(b.LegalColumns())); n != 0 {
		t.Errorf("full board has %d legal columns, want 0", n)
	}
}

func TestGravityAndTurnCount(t *testing.T) {
	b := mustEmpty(t, 6, 5, 5)
	moves := []int{2, 2, 0, 5, 2, 1, 0, 3, 3, 4}
	player := First

	for i, c := range moves {
		prev := b
		b = mustMove(t, b, c, player)
		player = player.Opponent()

		if b.TurnsTaken() != prev.TurnsTaken()+1 {
			t.Fatalf("move %d: TurnsTaken went from %d to %d", i, prev.TurnsTaken(), b.TurnsTaken())
		}

		occupied := 0
		for col := range b.Width() {
			seenEmpty := false
			for row := range b.Height() {
				p, ok, _ := b.SlotAt(col, row)
				if !ok {
					seenEmpty = true
					continue
				}
				occupied++
				if seenEmpty {
					t.Fatalf("move %d: floating piece at (%d, %d)", i, col, row)
				}
				if old, wasOccupied, _ := prev.SlotAt(col, row); wasOccupied && old != p {
					t.Fatalf("move %d: slot (%d, %d) changed owner", i, col, row)
				}
			}
		}
		if occupied != b.TurnsTaken() {
			t.Fatalf("move %d: %d occupied slots, TurnsTaken %d", i, occupied, b.TurnsTaken())
		}
	}
}
