package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockshot/internal/core"
	"github.com/vovakirdan/blockshot/internal/logging"
	"github.com/vovakirdan/blockshot/internal/registry"
)

// helpHeight is the number of rows below the game screen used by the help bar.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       PlayKeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool // Player asked to return to the menu
}

// NewModel creates a new Bubble Tea model for the given game. A nil logger
// discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}
	if logger == nil {
		logger = logging.Discard()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		config:     cfg,
		keys:       DefaultPlayKeyMap(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick. Held keys repeat, so an
// action may be recorded several times per frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize follows the terminal size. Games lay themselves out on every
// frame, so the round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("round finished", "game", m.game.ID(), "score", m.gameState.Score)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the game followed by the help bar.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Result describes how a session ended.
type Result struct {
	State  core.GameState
	Back   bool // Return to the menu
	Config core.RuntimeConfig
}

// Run starts the Bubble Tea program with the given game and blocks until
// the player leaves.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Result, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{Config: cfg}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{Config: cfg}, nil
	}
	return Result{State: m.gameState, Back: m.back, Config: m.config}, nil
}
