// Package search implements depth-limited minimax with alpha-beta pruning
// over any game that can enumerate successor states, recognise terminal
// states and score the rest.
//
// The package knows nothing about boards or players. Callers describe their
// game through the Game interface (or the Funcs adapter) and receive moves
// back. Evaluation heuristics are the caller's concern.
package search

import (
	"iter"
	"math"
)

// Outcome is the result of a finished game from the searching player's view.
type Outcome uint8

const (
	Win Outcome = iota + 1
	Loss
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Values assigned to terminal states. They are the extremes of int, so any
// static score sorts strictly between a loss and a win.
const (
	Inf    = math.MaxInt
	NegInf = math.MinInt
)

// Unlimited disables the depth cutoff; only terminal states stop the search.
const Unlimited = -1

// Game is the capability set the search needs.
//
// Successors yields (move, resulting state) pairs. maximizing tells whose
// turn it is: true for the searching player, false for the opponent. The
// sequence must be finite and its order fixes tie-breaking.
//
// Resolution reports whether a state is terminal, and if so how it ended
// for the searching player.
//
// Score is a heuristic applied at the depth cutoff. Higher is better for the
// searching player. It must not return Inf or NegInf.
type Game[S, M any] interface {
	Successors(state S, maximizing bool) iter.Seq2[M, S]
	Resolution(state S) (Outcome, bool)
	Score(state S) int
}

// Funcs adapts three plain functions to Game.
type Funcs[S, M any] struct {
	SuccessorsFunc func(state S, maximizing bool) iter.Seq2[M, S]
	ResolutionFunc func(state S) (Outcome, bool)
	ScoreFunc      func(state S) int
}

func (f Funcs[S, M]) Successors(state S, maximizing bool) iter.Seq2[M, S] {
	return f.SuccessorsFunc(state, maximizing)
}

func (f Funcs[S, M]) Resolution(state S) (Outcome, bool) {
	return f.ResolutionFunc(state)
}

func (f Funcs[S, M]) Score(state S) int {
	return f.ScoreFunc(state)
}

var _ Game[int, int] = Funcs[int, int]{}

func outcomeValue(o Outcome) int {
	switch o {
	case Win:
		return Inf
	case Loss:
		return NegInf
	default:
		return 0
	}
}
