// Package tui provides the terminal front end: a Bubble Tea column picker
// that backs the human agent, a coloured board renderer and a scoreboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/connectn/internal/agent"
	"github.com/vovakirdan/connectn/internal/board"
)

// PickerModel is the Bubble Tea model for choosing a column on one turn.
type PickerModel struct {
	req    agent.TurnRequest
	cursor int
	keys   PickerKeyMap
	help   help.Model
	theme  Theme
	width  int

	chosen   int
	done     bool
	quitting bool
}

// NewPickerModel creates a picker for req with the cursor on the legal
// column closest to the centre.
func NewPickerModel(req agent.TurnRequest, theme Theme) PickerModel {
	h := help.New()
	h.ShowAll = false

	m := PickerModel{
		req:    req,
		cursor: -1,
		keys:   DefaultPickerKeyMap(),
		help:   h,
		theme:  theme,
	}

	mid := req.Board.Width() / 2
	for c := range req.Board.LegalColumns() {
		if m.cursor < 0 || abs(c-mid) < abs(m.cursor-mid) {
			m.cursor = c
		}
	}
	return m
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for column selection.
func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.cursor = m.step(-1)

	case key.Matches(msg, m.keys.Right):
		m.cursor = m.step(1)

	case key.Matches(msg, m.keys.Jump):
		c := int(msg.String()[0] - '0')
		if m.legal(c) {
			m.cursor = c
		}

	case key.Matches(msg, m.keys.Drop):
		if m.legal(m.cursor) {
			m.chosen = m.cursor
			m.done = true
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// step returns the next legal column from the cursor in direction dir, or
// the cursor itself if there is none.
func (m PickerModel) step(dir int) int {
	for c := m.cursor + dir; c >= 0 && c < m.req.Board.Width(); c += dir {
		if m.legal(c) {
			return c
		}
	}
	return m.cursor
}

func (m PickerModel) legal(c int) bool {
	h := m.req.Board.ColumnHeight(c)
	return h >= 0 && h < m.req.Board.Height()
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("CONNECT %d  you (%c) vs %s (%c)",
		m.req.WinLength, board.GlyphOwn, m.req.Opponent, board.GlyphOther)
	b.WriteString(m.theme.Title.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Frame.Render(RenderBoard(m.req.Board, m.req.Player, m.cursor, m.theme)))
	b.WriteString("\n")

	status := fmt.Sprintf("turn %d, column %d", m.req.Board.TurnsTaken()+1, m.cursor)
	b.WriteString(m.theme.Status.Render(status))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// Chosen returns the dropped column, if any.
func (m PickerModel) Chosen() (int, bool) {
	return m.chosen, m.done
}

// IsQuitting returns true if the player resigned.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
