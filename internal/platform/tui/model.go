package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gem-catcher/internal/core"
	"github.com/vovakirdan/gem-catcher/internal/games/gems"
	"github.com/vovakirdan/gem-catcher/internal/registry"
)

const (
	// holdWindow is how long a direction stays held after its last key event.
	// Terminals report repeats but no releases.
	holdWindow = 250 * time.Millisecond

	// yawStep is the camera rotation per turn key event, in degrees.
	yawStep = 4.0
)

// heldActions are the directions driven by the hold window.
var heldActions = []core.Action{
	core.ActionForward,
	core.ActionBackward,
	core.ActionStrafeLeft,
	core.ActionStrafeRight,
}

// GameModel runs one game with wall-clock ticks and back-to-menu capability.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	renderer  *ScreenRenderer
	logger    *log.Logger
	now       func() time.Time

	held      map[core.Action]time.Time // last key event per direction
	pending   core.InputFrame           // one-shot actions since the last tick
	yaw       float64
	lastTick  time.Time
	gameState core.GameState
	fallbacks int

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		renderer:  defaultScreenRenderer,
		logger:    logger,
		now:       time.Now,
		held:      make(map[core.Action]time.Time),
		pending:   core.NewInputFrame(),
	}
}

// WithRenderer returns the model drawing through r.
func (m GameModel) WithRenderer(r *ScreenRenderer) GameModel {
	m.renderer = r
	return m
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The view follows the body, so a resize never restarts the session.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey records directions in the hold window and queues one-shot actions.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if turn := m.keyMapper.TurnDirection(msg); turn != 0 {
		m.yaw = math.Mod(m.yaw+float64(turn)*yawStep+360, 360)
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		// Standalone programs exit; SessionModel swaps in the menu instead.
		m.backToMenu = true
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	}

	for _, a := range heldActions {
		if a == action {
			m.held[a] = m.now()
			return m, nil
		}
	}
	m.pending.Set(action)
	return m, nil
}

// frame builds the input for a tick at time t.
func (m GameModel) frame(t time.Time) core.InputFrame {
	f := m.pending.Clone()
	f.Yaw = m.yaw
	for _, a := range heldActions {
		if last, ok := m.held[a]; ok && t.Sub(last) < holdWindow {
			f.Set(a)
		}
	}
	return f
}

// handleTick steps the game by the wall time since the previous tick.
func (m GameModel) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(max(m.config.TickRate, 1))
	if !m.lastTick.IsZero() {
		dt = t.Sub(m.lastTick).Seconds()
	}
	m.lastTick = t

	result := m.game.Step(dt, m.frame(t))
	m.gameState = result.State
	m.pending.Clear()

	if src, ok := m.game.(gems.EventSource); ok {
		gems.LogEvents(m.logger, m.game.ID(), src.Events())
		if n := src.Stats().PlacementFallbacks; n > m.fallbacks {
			m.logger.Warn("placement fell back to the arena centre", "game", m.game.ID(), "total", n)
			m.fallbacks = n
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
