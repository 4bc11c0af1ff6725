package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/connectn/internal/agent"
)

var (
	// ErrNoTerminal is returned when the human agent is asked to play
	// without an interactive terminal.
	ErrNoTerminal = errors.New("tui: human player needs an interactive terminal")
	// ErrResigned is returned when the player quits the picker.
	ErrResigned = errors.New("tui: player resigned")

	errPickerClosed = errors.New("tui: picker closed without a move")
)

func init() {
	agent.Register("human", func(agent.Options) (agent.Agent, error) {
		return &Human{theme: DefaultTheme()}, nil
	})
}

// Human asks a person for each move through a full-screen column picker.
type Human struct {
	theme Theme
}

func (h *Human) Name() string { return "human" }

// Interactive exempts the human from the turn timeout.
func (h *Human) Interactive() bool { return true }

func (h *Human) TakeTurn(ctx context.Context, req agent.TurnRequest, submit func(column int)) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}

	p := tea.NewProgram(
		NewPickerModel(req, h.theme),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("tui: picker failed: %w", err)
	}

	m, ok := final.(PickerModel)
	if !ok {
		return fmt.Errorf("tui: unexpected model %T", final)
	}
	c, err := pickerOutcome(m)
	if err != nil {
		return err
	}
	submit(c)
	return nil
}

// pickerOutcome reads the column from a finished picker.
func pickerOutcome(m PickerModel) (int, error) {
	if m.IsQuitting() {
		return 0, ErrResigned
	}
	if c, ok := m.Chosen(); ok {
		return c, nil
	}
	return 0, errPickerClosed
}
