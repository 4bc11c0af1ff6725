package agent

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/connectn/internal/board"
)

// Heuristic scores a non-terminal position for player me. Higher is better.
type Heuristic func(b board.Board, me board.Player) int

// DefaultHeuristic is used when Options.Heuristic is empty.
const DefaultHeuristic = "windows"

var heuristics = map[string]Heuristic{
	"windows":   Windows,
	"neighbors": Neighbors,
}

// HeuristicByName looks up a heuristic. The empty name selects
// DefaultHeuristic.
func HeuristicByName(name string) (Heuristic, error) {
	if name == "" {
		name = DefaultHeuristic
	}
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("agent: unknown heuristic %q (have %v)", name, Heuristics())
	}
	return h, nil
}

// Heuristics returns the known heuristic names, sorted.
func Heuristics() []string {
	out := make([]string, 0, len(heuristics))
	for name := range heuristics {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// lineSteps are the forward directions of the four line axes.
var lineSteps = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// Windows scores every winLength-long window on the board. A window holding
// pieces of only one player is worth the square of its piece count to that
// player; mixed windows are dead and worth nothing. Pieces also earn a bonus
// for sitting near the centre column.
func Windows(b board.Board, me board.Player) int {
	opp := me.Opponent()
	n := b.WinLength()
	score := 0

	for c := range b.Width() {
		for r := range b.Height() {
			for _, step := range lineSteps {
				endC, endR := c+step[0]*(n-1), r+step[1]*(n-1)
				if endC < 0 || endC >= b.Width() || endR < 0 || endR >= b.Height() {
					continue
				}
				mine, theirs := 0, 0
				for i := range n {
					switch b.Owner(c+step[0]*i, r+step[1]*i) {
					case me:
						mine++
					case opp:
						theirs++
					}
				}
				switch {
				case mine > 0 && theirs == 0:
					score += mine * mine
				case theirs > 0 && mine == 0:
					score -= theirs * theirs
				}
			}
		}
	}

	mid := b.Width() / 2
	for c := range b.Width() {
		bonus := mid - abs(c-mid)
		if bonus <= 0 {
			continue
		}
		for r := range b.ColumnHeight(c) {
			if b.Owner(c, r) == me {
				score += bonus
			} else {
				score -= bonus
			}
		}
	}

	return score
}

// Neighbors counts me's pieces that touch at least one other piece.
func Neighbors(b board.Board, me board.Player) int {
	count := 0
	for c := range b.Width() {
		for r := range b.ColumnHeight(c) {
			if b.Owner(c, r) == me && touching(b, c, r) {
				count++
			}
		}
	}
	return count
}

func touching(b board.Board, column, row int) bool {
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if (dc != 0 || dr != 0) && b.Owner(column+dc, row+dr) != board.None {
				return true
			}
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
