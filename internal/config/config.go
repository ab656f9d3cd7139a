// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"fmt"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// Config contains all tunable game parameters.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the playfield dimensions, border included.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the tick pacing.
type SpeedConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	PointsPerFood int `yaml:"points_per_food"`
}

// Validate checks that the config describes a playable game.
func (c Config) Validate() error {
	// The snake starts with 3 horizontal segments left of center and needs
	// at least one interior cell of clearance.
	if c.Board.Width < 8 || c.Board.Height < 5 {
		return fmt.Errorf("config: board %dx%d too small, need at least 8x5", c.Board.Width, c.Board.Height)
	}
	if c.Speed.TickIntervalMS <= 0 {
		return fmt.Errorf("config: tick_interval_ms must be positive, got %d", c.Speed.TickIntervalMS)
	}
	if c.Scoring.PointsPerFood <= 0 {
		return fmt.Errorf("config: points_per_food must be positive, got %d", c.Scoring.PointsPerFood)
	}
	return nil
}

// Runtime converts the config into the runtime form consumed by the game.
// The seed is left zero; callers set it from the --seed flag or the clock.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		BoardW:       c.Board.Width,
		BoardH:       c.Board.Height,
		TickInterval: c.Speed.TickIntervalMS,
		PointsPerEat: c.Scoring.PointsPerFood,
	}
}

// DifficultyPreset represents a named difficulty level. Presets only change
// the tick pacing; the rules stay identical.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// tickIntervalForPreset returns the tick interval in milliseconds.
func tickIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 150
	case DifficultyHard:
		return 60
	default:
		return 100
	}
}

// ApplyPreset overrides the tick pacing for a difficulty preset.
// An empty preset leaves the config untouched; an unknown one is an error.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Speed.TickIntervalMS = tickIntervalForPreset(preset)
		return nil
	default:
		return fmt.Errorf("config: unknown difficulty preset %q", preset)
	}
}
