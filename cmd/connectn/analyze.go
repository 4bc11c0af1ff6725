package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/connectn/internal/agent"
	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/platform/tui"
	"github.com/vovakirdan/connectn/internal/search"
)

var (
	analyzeWidth     int
	analyzeHeight    int
	analyzeWin       int
	analyzeDepth     int
	analyzeHeuristic string
	analyzeTimeout   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <moves>",
	Short: "Search a position depth by depth",
	Long: `Replay a move list from the empty board, print the position and run
the minimax search on it for the side to move, one line per depth. The
search stops at --depth, when the value is exact, or after --timeout.

Moves are column indices, either as a digit string or separated by commas
or spaces. The first player (X) moves first.

Examples:
  connectn analyze 3344
  connectn analyze "3, 3, 4, 4, 2" --depth 10
  connectn analyze 0110 --width 4 --height 4 --win 3 --depth -1`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeWidth, "width", 0, "Board width (overrides config)")
	analyzeCmd.Flags().IntVar(&analyzeHeight, "height", 0, "Board height (overrides config)")
	analyzeCmd.Flags().IntVar(&analyzeWin, "win", 0, "Winning run length (overrides config)")
	analyzeCmd.Flags().IntVar(&analyzeDepth, "depth", 6, "Deepest search, negative for no limit")
	analyzeCmd.Flags().StringVar(&analyzeHeuristic, "heuristic", "", "Heuristic for cut-off positions (overrides config)")
	analyzeCmd.Flags().StringVar(&analyzeTimeout, "timeout", "30s", "Stop deepening after this long")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Board.Width = analyzeWidth
	}
	if flags.Changed("height") {
		cfg.Board.Height = analyzeHeight
	}
	if flags.Changed("win") {
		cfg.Board.WinLength = analyzeWin
	}
	if analyzeHeuristic != "" {
		cfg.Search.Heuristic = analyzeHeuristic
	}

	timeout, err := parseDuration(analyzeTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	h, err := agent.HeuristicByName(cfg.Search.Heuristic)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b, err := board.FromMoves(cfg.Board.Width, cfg.Board.Height, cfg.Board.WinLength, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme := tui.PlainTheme()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		theme = tui.DefaultTheme()
	}
	fmt.Print(tui.RenderBoard(b, board.First, -1, theme))
	fmt.Println()

	status := b.Status()
	if scanned := board.Scan(b); scanned != status {
		fmt.Fprintf(os.Stderr, "Warning: full scan reports %v, incremental status %v\n", scanned, status)
	}
	fmt.Printf("Turns: %d  Status: %v\n", b.TurnsTaken(), status)
	if b.IsTerminal() {
		return
	}

	toMove := board.First
	if b.TurnsTaken()%2 == 1 {
		toMove = board.Second
	}
	fmt.Printf("To move: %s (%s), heuristic %s\n", toMove, glyph(toMove), cfg.Search.Heuristic)
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	g := agent.BoardGame(ctx, toMove, h)
	start := time.Now()

	fmt.Printf("  %-5s  %-4s  %-12s  %-10s  %-8s  %s\n", "Depth", "Move", "Value", "Nodes", "Prunes", "Time")
	fmt.Printf("  %-5s  %-4s  %-12s  %-10s  %-8s  %s\n", "-----", "----", "-----", "-----", "------", "----")
	for it := range search.Iterate(g, b) {
		if ctx.Err() != nil {
			fmt.Println()
			fmt.Println("Stopped: timeout.")
			return
		}
		fmt.Printf("  %-5d  %-4d  %-12s  %-10d  %-8d  %s\n",
			it.Depth, it.Move, formatValue(it.Value), it.Stats.Nodes, it.Stats.Prunes, time.Since(start).Round(time.Millisecond))
		if it.Exact {
			fmt.Println()
			fmt.Printf("Solved: %s\n", describeExact(it.Value))
			return
		}
		if analyzeDepth >= 0 && it.Depth >= analyzeDepth {
			return
		}
	}
}

func formatValue(v int) string {
	switch v {
	case search.Inf:
		return "+inf"
	case search.NegInf:
		return "-inf"
	default:
		return fmt.Sprintf("%d", v)
	}
}

func describeExact(v int) string {
	switch {
	case v == search.Inf:
		return "side to move wins"
	case v == search.NegInf:
		return "side to move loses"
	default:
		return "draw with best play"
	}
}
