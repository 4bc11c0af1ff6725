package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles for the board and its surroundings.
type Theme struct {
	// Piece styles, relative to the player looking at the board
	Own      lipgloss.Style
	Opponent lipgloss.Style
	Empty    lipgloss.Style

	// Column markers
	Cursor      lipgloss.Style
	ColumnIndex lipgloss.Style
	FullColumn  lipgloss.Style

	// Text
	Title  lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
	Frame  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Own:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // Bright yellow
		Opponent: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
		Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),            // Dark gray

		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true), // Bright cyan
		ColumnIndex: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FullColumn:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Strikethrough(true),

		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// PlainTheme renders without colour. Used when output is not a terminal.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Own:         plain,
		Opponent:    plain,
		Empty:       plain,
		Cursor:      plain,
		ColumnIndex: plain,
		FullColumn:  plain,
		Title:       plain,
		Status:      plain,
		Help:        plain,
		Frame:       plain,
	}
}
