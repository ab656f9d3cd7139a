package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this for board dimensions and deterministic simulation.
type RuntimeConfig struct {
	BoardW       int   // Board width in cells, border included
	BoardH       int   // Board height in cells, border included
	TickInterval int   // Milliseconds between simulation ticks
	PointsPerEat int   // Score awarded per food eaten
	Seed         int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig matching the classic game:
// a 40x20 bordered board stepping every 100ms, 10 points per food.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardW:       40,
		BoardH:       20,
		TickInterval: 100,
		PointsPerEat: 10,
		Seed:         0,
	}
}

// GameState represents the current state of the session.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
	Ate   bool // Whether food was eaten on this tick
}
