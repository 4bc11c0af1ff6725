package board

import "strconv"

// Player identifies the owner of a piece. The zero value None marks an empty
// slot; every other value is an opaque, distinct identity.
type Player uint8

const (
	None Player = iota
	First
	Second
)

// Opponent returns the other conventional player, or None for anything else.
func (p Player) Opponent() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case None:
		return "none"
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "player" + strconv.Itoa(int(p))
	}
}
