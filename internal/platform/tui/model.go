package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/circle-arcade/internal/config"
	"github.com/vovakirdan/circle-arcade/internal/core"
	"github.com/vovakirdan/circle-arcade/internal/registry"
)

// Options tune the terminal frontend.
type Options struct {
	Logger     *log.Logger   // nil discards
	AllowBack  bool          // esc/b leaves the game (back to the menu)
	HoldDelay  time.Duration // 0 uses DefaultHoldDelay
	HoldRepeat time.Duration // 0 uses DefaultHoldRepeat
}

// Result describes how a game session ended.
type Result struct {
	Back  bool // the player asked for the menu rather than quitting
	State core.GameState
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	inspector  registry.Inspector // nil if the game exposes no debug values
	screen     *core.Screen
	styles     styleCache
	config     core.RuntimeConfig
	keys       *KeyMapper
	holds      *holdTracker
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	allowBack  bool
	quitting   bool
	back       bool
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	delay, repeat := opts.HoldDelay, opts.HoldRepeat
	if delay <= 0 {
		delay = DefaultHoldDelay
	}
	if repeat <= 0 {
		repeat = DefaultHoldRepeat
	}

	inspector, _ := game.(registry.Inspector)

	game.Reset(cfg)

	return Model{
		game:       game,
		inspector:  inspector,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		styles:     styleCache{},
		config:     cfg,
		keys:       NewKeyMapper(),
		holds:      newHoldTracker(delay, repeat),
		help:       help.New(),
		logger:     logger.With("game", game.ID()),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		allowBack:  opts.AllowBack,
		now:        time.Now,
	}
}

// playHeight leaves the last row for the help footer.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "title", m.game.Title(), "fps", m.config.TickRate)
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		if m.allowBack {
			m.back = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.holds.Press(action, m.now(), &m.inputFrame)
	return m, nil
}

// handleResize processes terminal resize events. Games draw in world
// coordinates, so a resize only changes the cell grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.holds.Expire(now, &m.inputFrame)

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.holds.ReleaseAll(&m.inputFrame)
		m.inputFrame.Clear()
		m.logger.Info("game restarted")
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("round over", "score", result.State.Score)
	}
	m.gameState = result.State

	if m.inspector != nil {
		m.logger.Debug("frame", m.inspector.Inspect()...)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	path, err := writeScreenshot(m.game.ID(), m.screen.String(), m.now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// writeScreenshot stores a plain-text frame under ~/.circles/screenshots.
func writeScreenshot(gameID, frame string, at time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	dir := filepath.Join(home, config.HomeDirName, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", gameID, at.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(frame), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(renderScreen(m.screen, m.styles))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys.Keys())))
	return b.String()
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{Back: m.back, State: m.gameState}, nil
}
