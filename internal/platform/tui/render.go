package tui

import (
	"strings"

	"github.com/vovakirdan/connectn/internal/board"
)

// RenderBoard draws b from perspective's side with theme colours. The top
// line marks cursor (pass -1 for none), the bottom line numbers columns
// modulo 10 and greys out full ones.
func RenderBoard(b board.Board, perspective board.Player, cursor int, theme Theme) string {
	var sb strings.Builder

	if cursor >= 0 {
		for c := range b.Width() {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if c == cursor {
				sb.WriteString(theme.Cursor.Render("v"))
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	for r := b.Height() - 1; r >= 0; r-- {
		for c := range b.Width() {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(renderSlot(b.Owner(c, r), perspective, theme))
		}
		sb.WriteByte('\n')
	}

	for c := range b.Width() {
		if c > 0 {
			sb.WriteByte(' ')
		}
		idx := string(rune('0' + c%10))
		if b.ColumnHeight(c) >= b.Height() {
			sb.WriteString(theme.FullColumn.Render(idx))
		} else {
			sb.WriteString(theme.ColumnIndex.Render(idx))
		}
	}
	sb.WriteByte('\n')

	return sb.String()
}

func renderSlot(p, perspective board.Player, theme Theme) string {
	switch {
	case p == board.None:
		return theme.Empty.Render(string(board.GlyphEmpty))
	case p == perspective:
		return theme.Own.Render(string(board.GlyphOwn))
	default:
		return theme.Opponent.Render(string(board.GlyphOther))
	}
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
