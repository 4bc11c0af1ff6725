package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/connectn/internal/agent"
	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/config"
	"github.com/vovakirdan/connectn/internal/match"
	"github.com/vovakirdan/connectn/internal/platform/tui"
	"github.com/vovakirdan/connectn/internal/storage"
)

var (
	playWidth      int
	playHeight     int
	playWin        int
	playTimeout    string
	playRounds     int
	playDifficulty string
	playShowBoards bool
	playNoSave     bool
)

var playCmd = &cobra.Command{
	Use:   "play <first> <second>",
	Short: "Play a match between two agents",
	Long: `Play one or more games between two agents. The first agent moves
first in odd rounds and second in even rounds. Results are stored in the
matches database unless --no-save is given.

Examples:
  connectn play human minimax
  connectn play minimax greedy --rounds 10
  connectn play minimax minimax --difficulty easy --show-boards
  connectn play greedy example --width 9 --height 7 --win 5`,
	Args: cobra.ExactArgs(2),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&playWidth, "width", 0, "Board width (overrides config)")
	playCmd.Flags().IntVar(&playHeight, "height", 0, "Board height (overrides config)")
	playCmd.Flags().IntVar(&playWin, "win", 0, "Winning run length (overrides config)")
	playCmd.Flags().StringVar(&playTimeout, "timeout", "", "Turn timeout, e.g. 2s (overrides config)")
	playCmd.Flags().IntVar(&playRounds, "rounds", 0, "Number of games (overrides config)")
	playCmd.Flags().StringVar(&playDifficulty, "difficulty", "", "Search preset: easy, normal, hard, unbounded")
	playCmd.Flags().BoolVar(&playShowBoards, "show-boards", false, "Print the board after every move")
	playCmd.Flags().BoolVar(&playNoSave, "no-save", false, "Do not store results")
}

// errAborted reports a match interrupted from the terminal.
var errAborted = errors.New("match aborted")

func runPlay(cmd *cobra.Command, args []string) {
	// Exit only after playMatches has run its deferred cleanup.
	if code := playMatches(cmd, args); code != 0 {
		os.Exit(code)
	}
}

func playMatches(cmd *cobra.Command, args []string) int {
	for _, id := range args {
		if !agent.Exists(id) {
			fmt.Fprintf(os.Stderr, "Error: unknown agent %q\n", id)
			fmt.Fprintln(os.Stderr, "Run 'connectn agents' to see available agents.")
			return 1
		}
	}

	cfg := loadConfig()
	if err := applyPlayFlags(cmd, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := log.Default()

	// Each seat gets its own seed so two random agents do not mirror each other.
	agents := make([]agent.Agent, len(args))
	for i, id := range args {
		opts := agent.Options{
			MaxDepth:  cfg.Search.MaxDepth,
			Parallel:  cfg.Search.Parallel,
			Heuristic: cfg.Search.Heuristic,
			Seed:      cfg.Search.Seed + uint64(i),
			Logger:    logger.With("agent", id),
		}
		a, err := agent.Create(id, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating agent: %v\n", err)
			return 1
		}
		agents[i] = a
	}

	runner := match.NewRunner(match.Config{
		Width:       cfg.Board.Width,
		Height:      cfg.Board.Height,
		WinLength:   cfg.Board.WinLength,
		TurnTimeout: cfg.Match.TurnTimeout,
	}, logger)

	// Open match storage; a broken database only disables saving
	if !playNoSave {
		store, err := storage.Open(cfg.Storage.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open matches database: %v\n", err)
		} else {
			defer store.Close()
			runner.SetResultSaver(store)
		}
	}

	theme := tui.PlainTheme()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		theme = tui.DefaultTheme()
	}
	if cfg.Match.ShowBoards {
		runner.SetObserver(func(t match.Turn) {
			fmt.Printf("turn %d: %s (%s) drops in column %d [%s]\n", t.Number, t.Agent, glyph(t.Player), t.Column, t.Elapsed.Round(time.Millisecond))
			fmt.Println(tui.RenderBoard(t.Board, board.First, -1, theme))
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tally, err := playRounds(ctx, runner, agents, cfg.Match.Rounds, os.Stdout)
	switch {
	case errors.Is(err, errAborted):
		return 130
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.Match.Rounds > 1 {
		fmt.Println()
		fmt.Printf("Final: %s %g - %g %s\n", args[0], tally[0], tally[1], args[1])
	}
	return 0
}

// playRounds plays rounds games between the two agents, swapping seats every
// round, and returns the points of each agent in argument order. It stops
// with errAborted after a game cut short by ctx.
func playRounds(ctx context.Context, runner *match.Runner, agents []agent.Agent, rounds int, out io.Writer) ([2]float64, error) {
	var tally [2]float64
	for round := range rounds {
		a, b := 0, 1
		if round%2 == 1 {
			a, b = 1, 0
		}

		res, err := runner.Play(ctx, agents[a], agents[b])
		if err != nil && res.MatchID == "" {
			return tally, err
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}

		printResult(out, round+1, res)
		if res.Reason == match.EndAborted {
			return tally, errAborted
		}

		switch res.Winner {
		case board.First:
			tally[a]++
		case board.Second:
			tally[b]++
		default:
			tally[a] += 0.5
			tally[b] += 0.5
		}
	}
	return tally, nil
}

// applyPlayFlags overlays the command line on the loaded configuration.
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) error {
	if playDifficulty != "" {
		preset, err := config.ParsePreset(playDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(cfg, preset)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Board.Width = playWidth
	}
	if flags.Changed("height") {
		cfg.Board.Height = playHeight
	}
	if flags.Changed("win") {
		cfg.Board.WinLength = playWin
	}
	if flags.Changed("timeout") {
		d, err := parseDuration(playTimeout)
		if err != nil {
			return err
		}
		cfg.Match.TurnTimeout = d
	}
	if flags.Changed("rounds") {
		cfg.Match.Rounds = playRounds
	}
	if playShowBoards {
		cfg.Match.ShowBoards = true
	}
	return cfg.Validate()
}

func printResult(out io.Writer, round int, res match.Result) {
	fmt.Fprintf(out, "Game %d: %s (X) vs %s (O)  %s  %s after %d turns in %s\n",
		round, res.Players[0], res.Players[1], res, res.Reason, res.Turns, res.Duration.Round(time.Millisecond))
	if res.Err != nil && !errors.Is(res.Err, context.Canceled) {
		fmt.Fprintf(out, "        %v\n", res.Err)
	}
}

func glyph(p board.Player) string {
	if p == board.First {
		return "X"
	}
	return "O"
}
