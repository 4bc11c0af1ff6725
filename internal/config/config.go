// Package config provides YAML-based configuration loading and difficulty
// presets for connectn.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the full connectn configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Match   MatchConfig   `yaml:"match"`
	Search  SearchConfig  `yaml:"search"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig defines the board shape and the winning run length.
type BoardConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	WinLength int `yaml:"win_length"`
}

// MatchConfig defines how matches are run.
type MatchConfig struct {
	TurnTimeout time.Duration `yaml:"turn_timeout"` // 0 disables the deadline
	Rounds      int           `yaml:"rounds"`       // games per play command, seats alternate
	ShowBoards  bool          `yaml:"show_boards"`  // print the board after every move
}

// SearchConfig defines the minimax agent parameters.
type SearchConfig struct {
	MaxDepth  int    `yaml:"max_depth"` // negative = deepen until the deadline
	Parallel  int    `yaml:"parallel"`  // root workers, <2 = serial
	Heuristic string `yaml:"heuristic"`
	Seed      uint64 `yaml:"seed"`
}

// StorageConfig defines where match results are kept.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board must be at least 1x1, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Board.WinLength <= 0 {
		errs = append(errs, fmt.Errorf("win_length must be positive, got %d", c.Board.WinLength))
	}
	if c.Match.TurnTimeout < 0 {
		errs = append(errs, fmt.Errorf("turn_timeout must not be negative, got %s", c.Match.TurnTimeout))
	}
	if c.Match.Rounds < 1 {
		errs = append(errs, fmt.Errorf("rounds must be at least 1, got %d", c.Match.Rounds))
	}
	if c.Search.Parallel < 0 {
		errs = append(errs, fmt.Errorf("parallel must not be negative, got %d", c.Search.Parallel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
