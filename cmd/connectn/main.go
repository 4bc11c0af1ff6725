// connectn plays and analyses connect-N games between search agents and
// humans in the terminal.
//
// Usage:
//
//	connectn agents                    - List available agents and heuristics
//	connectn play <first> <second>     - Play a match between two agents
//	connectn analyze <moves>           - Search a position and print each depth
//	connectn history [agent]           - Show recently stored matches
//	connectn standings                 - Show the agent standings table
//
// Global flags:
//
//	--config <path>     - Read configuration from a YAML file
//	--db <path>         - Set database path (default: ~/.connectn/matches.db)
//	--log-level <level> - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectn/internal/config"

	// Registers the human agent
	_ "github.com/vovakirdan/connectn/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connectn",
	Short: "connectn - Connect-N with minimax agents in your terminal",
	Long: `connectn plays connect-N on boards of any size. Agents take turns
dropping pieces into columns until one of them lines up a run of the
configured length or the board fills up.

Available commands:
  agents     - Show all available agents
  play       - Play a match between two agents
  analyze    - Search a position depth by depth
  history    - Show recently stored matches
  standings  - Show wins, losses and ties per agent

Examples:
  connectn agents
  connectn play human minimax
  connectn play minimax greedy --rounds 10 --difficulty hard
  connectn analyze 3344 --depth 8
  connectn standings`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to matches database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(standingsCmd)
}

// setupLogger installs the process-wide logger on stderr.
func setupLogger() {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "connectn",
		Level:           level,
	})
	log.SetDefault(logger)
}

// loadConfig loads the configuration and applies the --db override.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d, nil
}
