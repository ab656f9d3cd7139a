// Package core provides fundamental types for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Point represents a 2D grid coordinate.
type Point struct {
	X, Y int
}

// Add returns the point translated by another point.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction represents the snake's movement direction.
// Constraining direction to an enum (rather than a free (dx, dy) pair)
// makes invalid vectors unrepresentable.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit vector for the direction.
func (d Direction) Delta() Point {
	switch d {
	case DirRight:
		return Point{X: 1, Y: 0}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirUp:
		return Point{X: 0, Y: -1}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return d
	}
}

// IsOpposite reports whether two directions are exact reverses of each other.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
