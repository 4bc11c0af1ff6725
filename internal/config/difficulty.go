package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named search strength.
type DifficultyPreset string

const (
	DifficultyEasy      DifficultyPreset = "easy"
	DifficultyNormal    DifficultyPreset = "normal"
	DifficultyHard      DifficultyPreset = "hard"
	DifficultyUnbounded DifficultyPreset = "unbounded"
)

// Presets lists the presets in increasing strength.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyUnbounded}

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, error) {
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or unbounded)", name)
}

// ApplyPreset sets the search depth and turn timeout for a preset.
// Unbounded lets the search deepen until the deadline.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Search.MaxDepth = 2
		cfg.Match.TurnTimeout = time.Second
	case DifficultyNormal:
		cfg.Search.MaxDepth = 5
		cfg.Match.TurnTimeout = 3 * time.Second
	case DifficultyHard:
		cfg.Search.MaxDepth = 8
		cfg.Match.TurnTimeout = 5 * time.Second
	case DifficultyUnbounded:
		cfg.Search.MaxDepth = -1
		cfg.Match.TurnTimeout = 10 * time.Second
	}
}
