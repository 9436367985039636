package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Pharap/arduboy-ravine-despoiler/internal/core"
	"github.com/Pharap/arduboy-ravine-despoiler/internal/game"
	"github.com/Pharap/arduboy-ravine-despoiler/internal/storage"
)

// Model is the Bubble Tea model driving the game: the frame driver of the
// system. It owns the game context exclusively and feeds it one tick per
// TickMsg, so all simulation runs on a single logical thread.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      *KeyMapper
	lastState core.GameState
	quitting  bool
}

// NewModel creates a model for the given game. The game is reset here so
// the first tick already runs against initialized state.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	g.Reset(cfg)
	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(cfg.TickRate),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.KeyDown(msg) {
			m.logFlight(m.lastState)
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Body bounds depend on the screen dimensions, so a resize restarts
	// the run.
	m.game.Reset(m.config)
	m.lastState = core.GameState{}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.keys.Frame())

	// A flight ended when the play screen was left; log it once.
	if m.lastState.Flying && !result.State.Flying {
		m.logFlight(m.lastState)
	}
	m.lastState = result.State

	return m, tickCmd(m.config.TickRate)
}

// logFlight saves a finished flight to the flight log, best effort. Only
// states captured mid-flight are logged, so a quit after returning to the
// title cannot double-log the previous flight.
func (m Model) logFlight(st core.GameState) {
	if m.store == nil || !st.Flying || st.Ticks == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveFlight(st.Ticks, st.Passes)
}

// View renders the current display buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
