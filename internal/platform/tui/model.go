package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
	"github.com/vovakirdan/snake-tui/internal/storage"
)

// Model is the Bubble Tea model driving a snake session: one tick per
// interval runs input -> update -> render, until the session ends. On the
// end screen, r restarts and any other key exits.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	store      *storage.Store
	player     string
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a Bubble Tea model for a fresh session. screenW/screenH
// are the terminal dimensions; the board is centered within them.
func NewModel(store *storage.Store, player string, cfg core.RuntimeConfig, screenW, screenH int) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	screenW = core.Max(screenW, cfg.BoardW)
	screenH = core.Max(screenH, cfg.BoardH)

	return Model{
		session:    game.NewSession(cfg),
		screen:     core.NewScreen(screenW, screenH),
		store:      store,
		player:     player,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(core.Max(msg.Width, m.config.BoardW), core.Max(msg.Height, m.config.BoardH))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, hardQuit := m.keys.MapKey(msg)
	if hardQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// On the end screen any key exits, except restart.
	if m.gameState.GameOver {
		if action == core.ActionRestart {
			m.inputFrame.Set(core.ActionRestart)
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if action != core.ActionNone && action != core.ActionRestart {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.session.Reset(m.config)
		m.gameState = m.session.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickInterval)
	}

	result := m.session.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil && m.gameState.Score > 0 {
			//nolint:errcheck // Best-effort save, the end screen shows regardless
			m.store.SaveScore(m.player, m.gameState.Score)
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickInterval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local game.
func Run(store *storage.Store, cfg core.RuntimeConfig, screenW, screenH int) error {
	model := NewModel(store, storage.LocalPlayer, cfg, screenW, screenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
