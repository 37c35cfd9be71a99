package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuigames/fruitcatch/internal/config"
	"github.com/tuigames/fruitcatch/internal/core"
	"github.com/tuigames/fruitcatch/internal/game"
)

// Model is the Bubble Tea model that runs the game: it owns the engine,
// the stage (item/HUD/basket presenters) and the frame schedule.
type Model struct {
	engine *game.Engine
	stage  *stage
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	cfg    core.RuntimeConfig

	lastFrame time.Time
	paused    bool
	quitting  bool
}

// NewModel wires the engine to a fresh stage and the given sound emitter.
func NewModel(cfg core.RuntimeConfig, gameCfg config.Config, emitter game.SoundEmitter) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	st := newStage(gameCfg.Playfield)
	eng := game.New(gameCfg, cfg.Seed, game.Collaborators{
		Items:  st,
		HUD:    st,
		Basket: st,
		Sound:  emitter,
	})

	return Model{
		engine: eng,
		stage:  st,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-1), // Last row is the help footer
		keys:   DefaultKeyMap(),
		help:   help.New(),
		cfg:    cfg,
	}
}

// Init starts the run and schedules the first frame.
func (m Model) Init() tea.Cmd {
	m.engine.Start()
	return frameCmd(m.cfg.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
		return m, nil
	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}
	return m, nil
}

// handleKey maps key presses to lane signals and platform actions. Lane
// signals are applied between ticks; Bubble Tea's single-threaded update
// loop guarantees they never interleave with a running tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if m.engine.Running() {
			m.paused = !m.paused
		}

	case key.Matches(msg, m.keys.Restart):
		if !m.engine.Running() {
			m.engine.Reseed(time.Now().UnixNano())
			m.engine.Start()
			m.paused = false
			m.lastFrame = time.Time{}
			return m, frameCmd(m.cfg.FPS)
		}

	case key.Matches(msg, m.keys.Left):
		m.engine.HandleSignal(core.SignalLeft)
	case key.Matches(msg, m.keys.Center):
		m.engine.HandleSignal(core.SignalCenter)
	case key.Matches(msg, m.keys.Right):
		m.engine.HandleSignal(core.SignalRight)
	}
	return m, nil
}

// handleFrame advances the simulation by the real elapsed time since the
// previous frame. The first frame has no previous timestamp and advances
// by zero.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	delta := 0.0
	if !m.lastFrame.IsZero() {
		delta = now.Sub(m.lastFrame).Seconds()
	}
	m.lastFrame = now

	if m.paused {
		// Keep the frame chain alive but freeze the simulation; the next
		// unpaused frame measures from here, so pause time never counts.
		return m, frameCmd(m.cfg.FPS)
	}

	m.engine.Tick(delta)

	if !m.engine.Running() {
		// Game over: cancel the frame chain. Restart re-issues it.
		return m, nil
	}
	return m, frameCmd(m.cfg.FPS)
}

// View renders the stage and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.stage.Draw(m.screen)
	if m.paused {
		drawCenteredMessage(m.screen, "PAUSED", "Press P to resume")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for one play session.
func Run(cfg core.RuntimeConfig, gameCfg config.Config, emitter game.SoundEmitter) error {
	p := tea.NewProgram(NewModel(cfg, gameCfg, emitter), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
