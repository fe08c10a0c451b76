package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pupdash/internal/config"
	"pupdash/internal/core"
	"pupdash/internal/game"
)

// Model is the Bubble Tea model hosting a play session. It is the single
// writer of the world: key events only mark actions on the pending input
// frame, and each TickMsg runs exactly one simulation step with whatever
// input is current.
type Model struct {
	world    *game.World
	screen   *core.Screen
	clock    *Clock
	keys     KeyMap
	help     help.Model
	runtime  core.RuntimeConfig
	frame    core.InputFrame
	quitting bool
}

// NewModel creates a model for the given tunables and runtime config.
func NewModel(cfg config.Config, rt core.RuntimeConfig) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	return Model{
		world:   game.New(cfg, rt.Seed),
		screen:  core.NewScreen(rt.ScreenW, gameRows(rt.ScreenH)),
		clock:   NewClock(cfg.Physics.MaxDT),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		runtime: rt,
		frame:   core.NewInputFrame(),
	}
}

// gameRows reserves the bottom terminal row for the help bar.
func gameRows(screenH int) int {
	return core.Max(1, screenH-1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameRows(msg.Height))
		m.help.Width = msg.Width
		// The world simulates in its own coordinate space, so a resize only
		// changes the projection, never the simulation.
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey marks actions on the pending input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Jump):
		m.frame.Set(core.ActionJump)

	case key.Matches(msg, m.keys.Restart):
		// Restart is only honored on the game over screen.
		if m.world.Over() {
			m.frame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.frame.Has(core.ActionRestart) && m.world.Over() {
		m.world.Reset(time.Now().UnixNano())
		m.clock.Reset()
		m.frame.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	dt := m.clock.Delta(time.Time(msg))
	m.world.Step(dt, m.frame)
	m.frame.Clear()

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current world snapshot plus the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawWorld(m.screen, m.world.Snapshot(), m.world.Config())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for one play session and blocks until
// the player quits.
func Run(cfg config.Config, rt core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(cfg, rt),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
