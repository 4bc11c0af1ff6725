package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/connectn.yaml
var defaultYAML []byte

// Default returns the built-in configuration: classic 7x6 connect four.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:     7,
			Height:    6,
			WinLength: 4,
		},
		Match: MatchConfig{
			TurnTimeout: 3 * time.Second,
			Rounds:      1,
			ShowBoards:  false,
		},
		Search: SearchConfig{
			MaxDepth:  5,
			Parallel:  0,
			Heuristic: "windows",
			Seed:      1,
		},
		Storage: StorageConfig{
			Path: "~/.connectn/matches.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
