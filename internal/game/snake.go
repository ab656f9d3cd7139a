package game

import (
	"github.com/vovakirdan/snake-tui/internal/core"
)

// Snake holds the ordered body segments (head first) and the current
// movement direction. The body is backed by a ring buffer so that the
// per-tick prepend-head/drop-tail update is O(1) amortized.
type Snake struct {
	ring      []core.Point // circular storage
	head      int          // index of the head segment within ring
	size      int          // number of live segments
	direction core.Direction
	growing   bool // one-shot: next Move keeps the tail
}

// initialLength is the number of segments a new snake starts with.
const initialLength = 3

// NewSnake creates a snake with its head at start, trailing left,
// moving right.
func NewSnake(start core.Point) *Snake {
	s := &Snake{
		ring:      make([]core.Point, 16),
		direction: core.DirRight,
	}
	for i := 0; i < initialLength; i++ {
		s.pushBack(core.Point{X: start.X - i, Y: start.Y})
	}
	return s
}

// at returns the i-th segment, 0 being the head.
func (s *Snake) at(i int) core.Point {
	return s.ring[(s.head+i)%len(s.ring)]
}

// pushFront inserts a new head segment.
func (s *Snake) pushFront(p core.Point) {
	if s.size == len(s.ring) {
		s.reallocate()
	}
	s.head = (s.head - 1 + len(s.ring)) % len(s.ring)
	s.ring[s.head] = p
	s.size++
}

// pushBack appends a tail segment. Used only during construction.
func (s *Snake) pushBack(p core.Point) {
	if s.size == len(s.ring) {
		s.reallocate()
	}
	s.ring[(s.head+s.size)%len(s.ring)] = p
	s.size++
}

// popBack removes the tail segment.
func (s *Snake) popBack() {
	s.size--
}

// reallocate doubles the ring capacity, rebasing the head to index 0.
func (s *Snake) reallocate() {
	bigger := make([]core.Point, len(s.ring)*2)
	for i := 0; i < s.size; i++ {
		bigger[i] = s.at(i)
	}
	s.ring = bigger
	s.head = 0
}

// ChangeDirection commits a new direction unless it is the exact reverse
// of the current one. Reversing 180 degrees would walk the head straight
// into the neck, so such input is silently ignored.
func (s *Snake) ChangeDirection(d core.Direction) {
	if d.IsOpposite(s.direction) {
		return
	}
	s.direction = d
}

// Move advances the snake one cell: a new head is prepended and, unless a
// grow is pending, the tail is dropped. A pending grow is consumed by
// exactly one move.
func (s *Snake) Move() {
	newHead := s.Head().Add(s.direction.Delta())
	s.pushFront(newHead)

	if s.growing {
		s.growing = false
	} else {
		s.popBack()
	}
}

// Grow marks the snake to keep its tail on the next move. Calling it again
// before that move has no extra effect; the flag is boolean, not a counter.
func (s *Snake) Grow() {
	s.growing = true
}

// CheckCollision reports whether the head touches the border of a
// width x height board or any non-head body segment. Pure predicate,
// no mutation.
func (s *Snake) CheckCollision(width, height int) bool {
	head := s.Head()

	// Wall collision: the border rows/columns are deadly.
	if head.X <= 0 || head.X >= width-1 || head.Y <= 0 || head.Y >= height-1 {
		return true
	}

	// Self collision.
	for i := 1; i < s.size; i++ {
		if s.at(i) == head {
			return true
		}
	}
	return false
}

// Head returns the current head position.
func (s *Snake) Head() core.Point {
	return s.at(0)
}

// Direction returns the current movement direction.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return s.size
}

// Segments returns the body as a head-first slice. The slice is a copy;
// mutating it does not affect the snake.
func (s *Snake) Segments() []core.Point {
	out := make([]core.Point, s.size)
	for i := 0; i < s.size; i++ {
		out[i] = s.at(i)
	}
	return out
}

// Occupies reports whether any body segment sits on the given point.
func (s *Snake) Occupies(p core.Point) bool {
	for i := 0; i < s.size; i++ {
		if s.at(i) == p {
			return true
		}
	}
	return false
}
