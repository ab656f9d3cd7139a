package game

import "github.com/vovakirdan/snake-tui/internal/core"

// Snapshot captures the observable session state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      core.Direction
	FoodX    int
	FoodY    int
	GameOver bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	head := s.snake.Head()
	food := s.food.Position()
	return Snapshot{
		Tick:     s.tick,
		Score:    s.score,
		SnakeLen: s.snake.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      s.snake.Direction(),
		FoodX:    food.X,
		FoodY:    food.Y,
		GameOver: s.gameOver,
	}
}
