package board

import (
	"strconv"
	"strings"
)

// Glyphs used by Render.
const (
	GlyphOwn   = 'X'
	GlyphOther = 'O'
	GlyphEmpty = '.'
)

// Render draws the grid top row first. Pieces owned by perspective are shown
// as X, all other pieces as O, empty slots as a dot. A footer line carries
// the column indices (mod 10). Render(First) output is accepted by Parse.
func (b Board) Render(perspective Player) string {
	var sb strings.Builder
	sb.Grow((b.width*2 + 1) * (b.height + 1))

	for r := b.height - 1; r >= 0; r-- {
		for c := range b.width {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(glyphFor(b.at(c, r), perspective))
		}
		sb.WriteByte('\n')
	}

	for c := range b.width {
		if c > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(c % 10))
	}
	sb.WriteByte('\n')

	return sb.String()
}

func glyphFor(p, perspective Player) rune {
	switch p {
	case None:
		return GlyphEmpty
	case perspective:
		return GlyphOwn
	default:
		return GlyphOther
	}
}
