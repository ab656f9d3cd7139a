package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: the classic 40x20 board
// stepping every 100ms with 10 points per food.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  40,
			Height: 20,
		},
		Speed: SpeedConfig{
			TickIntervalMS: 100,
		},
		Scoring: ScoringConfig{
			PointsPerFood: 10,
		},
	}
}
