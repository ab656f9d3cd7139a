package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// Glyphs used for the full repaint each tick.
const (
	glyphBorder = '#'
	glyphHead   = '0'
	glyphBody   = 'o'
	glyphFood   = 'O'
)

// Session owns the snake, the food, the score and the game-over flag, and
// drives one tick of the game per Step: input, update, render. It holds a
// single explicitly-seeded RNG instead of touching process-global state, so
// runs are reproducible under a fixed seed.
type Session struct {
	rng    *rand.Rand
	tick   uint64
	snake  *Snake
	food   *Food
	width  int
	height int

	score        int
	pointsPerEat int
	gameOver     bool
}

// NewSession creates a session for the given runtime config. The seed must
// be non-zero; the platform layer substitutes wall-clock time for zero.
func NewSession(cfg core.RuntimeConfig) *Session {
	s := &Session{}
	s.Reset(cfg)
	return s
}

// Reset re-initializes the session: fresh snake in the middle of the board,
// fresh food, zero score.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.tick = 0
	s.width = cfg.BoardW
	s.height = cfg.BoardH
	s.pointsPerEat = cfg.PointsPerEat
	s.score = 0
	s.gameOver = false
	s.snake = NewSnake(core.Point{X: s.width / 2, Y: s.height / 2})
	s.food = NewFood(s.width, s.height, s.rng)
}

// HandleInput applies at most one direction change from the frame and honors
// the quit action. Unrecognized input is a no-op.
func (s *Session) HandleInput(input core.InputFrame) {
	if input.Has(core.ActionQuit) {
		s.gameOver = true
		return
	}

	switch {
	case input.Has(core.ActionUp):
		s.snake.ChangeDirection(core.DirUp)
	case input.Has(core.ActionDown):
		s.snake.ChangeDirection(core.DirDown)
	case input.Has(core.ActionLeft):
		s.snake.ChangeDirection(core.DirLeft)
	case input.Has(core.ActionRight):
		s.snake.ChangeDirection(core.DirRight)
	}
}

// Update advances the snake one step, handles eating, and checks collisions.
// Growth triggered by an eat is consumed on the *next* move: the flag is set
// after the current move already happened.
func (s *Session) Update() core.StepResult {
	if s.gameOver {
		return core.StepResult{State: s.State()}
	}

	s.snake.Move()

	var ate bool
	if s.snake.Head() == s.food.Position() {
		s.score += s.pointsPerEat
		s.snake.Grow()
		s.food.Spawn(s.rng)
		ate = true
	}

	if s.snake.CheckCollision(s.width, s.height) {
		s.gameOver = true
	}

	return core.StepResult{State: s.State(), Ate: ate}
}

// Step performs one full tick: input, then simulation.
func (s *Session) Step(input core.InputFrame) core.StepResult {
	s.tick++
	if s.gameOver {
		return core.StepResult{State: s.State()}
	}
	s.HandleInput(input)
	return s.Update()
}

// Render fully repaints the board into the screen buffer: border, snake,
// food and score, plus the end screen once the session is over.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	offX := core.Max(0, (dst.Width()-s.width)/2)
	offY := core.Max(0, (dst.Height()-s.height)/2)

	// Border.
	for x := 0; x < s.width; x++ {
		dst.SetColored(offX+x, offY, glyphBorder, core.ColorGray)
		dst.SetColored(offX+x, offY+s.height-1, glyphBorder, core.ColorGray)
	}
	for y := 0; y < s.height; y++ {
		dst.SetColored(offX, offY+y, glyphBorder, core.ColorGray)
		dst.SetColored(offX+s.width-1, offY+y, glyphBorder, core.ColorGray)
	}

	// Snake, head glyph distinct from body.
	for i, seg := range s.snake.Segments() {
		glyph := glyphBody
		color := core.ColorGreen
		if i == 0 {
			glyph = glyphHead
			color = core.ColorBrightGreen
		}
		dst.SetColored(offX+seg.X, offY+seg.Y, glyph, color)
	}

	// Food.
	food := s.food.Position()
	dst.SetColored(offX+food.X, offY+food.Y, glyphFood, core.ColorRed)

	// Score readout at the top-left interior, overwriting the border.
	dst.DrawTextColored(offX+2, offY, fmt.Sprintf(" Score: %d ", s.score), core.ColorBrightYellow)

	if s.gameOver {
		s.renderGameOver(dst, offY)
	}
}

// renderGameOver paints the end screen over the board.
func (s *Session) renderGameOver(dst *core.Screen, offY int) {
	midY := offY + s.height/2
	dst.DrawTextCentered(midY, "GAME OVER!")
	dst.DrawTextCentered(midY+1, fmt.Sprintf("Final Score: %d", s.score))
	dst.DrawTextCentered(midY+3, "Press any key to exit...")
}

// State returns the current session state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.gameOver,
	}
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Snake exposes the snake for tests and rendering diagnostics.
func (s *Session) Snake() *Snake {
	return s.snake
}

// Food exposes the food for tests.
func (s *Session) Food() *Food {
	return s.food
}
