// Package game implements the snake game rules: food spawning, snake
// movement and growth, collision detection, and session orchestration.
// It contains pure logic with no terminal dependencies.
package game

import (
	"math/rand"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// Food owns a single position on the board and respawns at a random
// interior cell. The board bounds are fixed after construction.
type Food struct {
	position core.Point
	width    int
	height   int
}

// NewFood creates food for a board of the given size and spawns it.
// The rng is owned by the caller so that gameplay stays reproducible.
func NewFood(width, height int, rng *rand.Rand) *Food {
	f := &Food{
		width:  width,
		height: height,
	}
	f.Spawn(rng)
	return f
}

// Spawn moves the food to a uniformly random interior cell:
// 1 <= x <= width-2, 1 <= y <= height-2.
//
// The spawn is not guaranteed to avoid the snake's body. That matches the
// classic behavior; the overlap is harmless since eating simply respawns.
func (f *Food) Spawn(rng *rand.Rand) {
	f.position = core.Point{
		X: rng.Intn(f.width-2) + 1,
		Y: rng.Intn(f.height-2) + 1,
	}
}

// Position returns the current food position.
func (f *Food) Position() core.Point {
	return f.position
}
