package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse builds a board from a text grid such as the output of Render(First).
// Rows are listed top first; X (First), O (Second) and '.' are cells, any
// other character is ignored and lines without cells are skipped. The status
// is derived with Scan, since the board was not built move by move.
func Parse(grid string, winLength int) (Board, error) {
	var rows [][]Player
	for i, line := range strings.Split(grid, "\n") {
		var row []Player
		for _, ch := range line {
			switch unicode.ToUpper(ch) {
			case GlyphOwn:
				row = append(row, First)
			case GlyphOther:
				row = append(row, Second)
			case GlyphEmpty:
				row = append(row, None)
			}
		}
		if len(row) == 0 {
			continue
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return Board{}, fmt.Errorf("line %d has %d cells, expected %d: %w", i+1, len(row), len(rows[0]), ErrMalformedGrid)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return Board{}, fmt.Errorf("no cells found: %w", ErrMalformedGrid)
	}

	b, err := Empty(len(rows[0]), len(rows), winLength)
	if err != nil {
		return Board{}, err
	}

	for i, row := range rows {
		r := b.height - 1 - i
		for c, p := range row {
			b.columns[c][r] = p
		}
	}

	for c := range b.width {
		for r := range b.height {
			p := b.columns[c][r]
			if p == None {
				continue
			}
			if r != b.heights[c] {
				return Board{}, fmt.Errorf("column %d row %d: %w", c, r, ErrFloatingPiece)
			}
			b.heights[c]++
			b.turnsTaken++
		}
	}

	b.status = Scan(b)
	return b, nil
}

// FromMoves replays a move list on an empty board, alternating First and
// Second. Moves are either a string of single digits ("3344") or a list of
// column numbers separated by commas or spaces ("3,3,10,4").
func FromMoves(width, height, winLength int, moves string) (Board, error) {
	b, err := Empty(width, height, winLength)
	if err != nil {
		return Board{}, err
	}

	columns, err := parseColumns(moves)
	if err != nil {
		return Board{}, err
	}

	player := First
	for i, c := range columns {
		b, err = b.ApplyMove(c, player)
		if err != nil {
			return Board{}, &SequenceError{Index: i, Err: err}
		}
		player = player.Opponent()
	}
	return b, nil
}

func parseColumns(moves string) ([]int, error) {
	moves = strings.TrimSpace(moves)
	if moves == "" {
		return nil, nil
	}

	var fields []string
	if strings.ContainsAny(moves, ", ") {
		fields = strings.FieldsFunc(moves, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	} else {
		fields = strings.Split(moves, "")
	}

	columns := make([]int, 0, len(fields))
	for i, f := range fields {
		c, err := strconv.Atoi(f)
		if err != nil {
			return nil, &SequenceError{Index: i, Err: fmt.Errorf("%w: %q", ErrInvalidColumn, f)}
		}
		columns = append(columns, c)
	}
	return columns, nil
}
