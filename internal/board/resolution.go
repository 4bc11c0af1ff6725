package board

// Kind is the tri-state outcome of a position.
type Kind uint8

const (
	InProgress Kind = iota
	Won
	Tie
)

func (k Kind) String() string {
	switch k {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Resolution is the status of a position. Winner is set only when Kind is Won.
type Resolution struct {
	Kind   Kind
	Winner Player
}

// Terminal reports whether the game has ended.
func (r Resolution) Terminal() bool {
	return r.Kind != InProgress
}

func (r Resolution) String() string {
	if r.Kind == Won {
		return "won by " + r.Winner.String()
	}
	return r.Kind.String()
}

// axes are the four line directions as (Δcolumn, Δrow): vertical, horizontal
// and the two diagonals. Each is walked in both senses.
var axes = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// resolveAt computes the status after player was placed at (column, row).
// It only looks at the neighbourhood of that slot, so it is valid only when
// called right after each placement on an incrementally built board.
func (b Board) resolveAt(column, row int, player Player) Resolution {
	for _, axis := range axes {
		dc, dr := axis[0], axis[1]
		count := 1 + b.runFrom(column, row, dc, dr, player) + b.runFrom(column, row, -dc, -dr, player)
		if count >= b.winLength {
			return Resolution{Kind: Won, Winner: player}
		}
	}

	if b.Full() {
		return Resolution{Kind: Tie}
	}
	return Resolution{Kind: InProgress}
}

// runFrom counts consecutive player slots starting one step away from
// (column, row) in direction (dc, dr). It stops after winLength-1 slots.
func (b Board) runFrom(column, row, dc, dr int, player Player) int {
	n := 0
	c, r := column+dc, row+dr
	for n < b.winLength-1 && b.inBounds(c, r) && b.at(c, r) == player {
		n++
		c += dc
		r += dr
	}
	return n
}
