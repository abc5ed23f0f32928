package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fishfeast/internal/config"
	"github.com/vovakirdan/fishfeast/internal/core"
	"github.com/vovakirdan/fishfeast/internal/games/fishfeast"
	"github.com/vovakirdan/fishfeast/internal/platform/feed"
	"github.com/vovakirdan/fishfeast/internal/storage"
)

// footerRows is the number of rows below the game screen.
const footerRows = 1

// mousePointer is the pointer id used for terminal mouse drags.
const mousePointer = 0

// Options configures a game model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables persistence
	Logger  *log.Logger    // nil discards
	Hub     *feed.Hub      // nil disables spectating
	Player  string
}

// play holds the mutable game state shared by Model copies.
type play struct {
	session  *fishfeast.Session
	driver   *fishfeast.Driver
	sched    *frameScheduler
	sampler  *core.Sampler
	recorder *runRecorder
	proj     fishfeast.Projection
	ticking  bool
}

// Model is the Bubble Tea model for a Fish Feast session.
type Model struct {
	game     *play
	screen   *core.Screen
	cfg      config.Config
	runtime  core.RuntimeConfig
	hub      *feed.Hub
	logger   *log.Logger
	player   string
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a model with an idle session sized to opts.Runtime.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Config.Frame.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		screen:  core.NewScreen(rt.ScreenW, max(1, rt.ScreenH-footerRows)),
		cfg:     opts.Config,
		runtime: rt,
		hub:     opts.Hub,
		logger:  logger,
		player:  opts.Player,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}

	rec := &runRecorder{
		store:  opts.Store,
		key:    opts.Config.Storage.BestKey,
		player: opts.Player,
		logger: logger,
	}
	g := &play{
		sched:    &frameScheduler{},
		sampler:  core.NewSampler(opts.Config.Input.DeadZone, opts.Config.Input.KeyHold()),
		recorder: rec,
	}
	arena := m.arena()
	g.session = fishfeast.NewSession(arena, rt.Seed, rec.loadBest())
	g.proj = fishfeast.NewProjection(arena, m.screen.Width(), m.screen.Height())
	g.driver = fishfeast.NewDriver(g.session, g.sched,
		func() core.Intent { return g.sampler.Intent(time.Now()) },
		m.onFrame(g),
	)
	m.game = g
	return m
}

// arena sizes the playfield for the current screen.
func (m Model) arena() fishfeast.Arena {
	a := m.cfg.Arena
	return fishfeast.ArenaForScreen(m.screen.Width(), m.screen.Height(),
		a.CellWidth, a.CellHeight, a.MinWidth, a.MinHeight)
}

// onFrame handles each simulated frame: spectators get a snapshot and a
// finished run is recorded.
func (m Model) onFrame(g *play) func(fishfeast.StepResult) {
	return func(res fishfeast.StepResult) {
		if m.hub != nil {
			if err := m.hub.Publish(fishfeast.Snapshot(g.session, m.player)); err != nil {
				m.logger.Debug("snapshot publish failed", "err", err)
			}
		}
		if res.Events.GameOver {
			g.recorder.finish(res.State)
		}
	}
}

// Init starts nothing; the tick loop begins with the first run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if dir, ok := m.keys.Direction(msg); ok {
		m.game.sampler.KeyPress(dir, time.Now())
		return m, nil
	}

	g := m.game
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		if g.session.Phase() == fishfeast.PhaseIdle {
			g.sampler.Reset()
			g.recorder.begin()
			g.driver.Start()
			return m, m.ensureTicking()
		}

	case core.ActionRestart:
		if g.session.Phase() == fishfeast.PhaseGameOver {
			g.sampler.Reset()
			g.recorder.begin()
			g.driver.Restart()
			return m, m.ensureTicking()
		}

	case core.ActionPause:
		g.driver.TogglePause()
		return m, m.ensureTicking()
	}

	return m, nil
}

// handleMouse turns left-button drags into pointer events in arena units.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	s := m.game.sampler
	pos := m.game.proj.ToArena(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			s.PointerDown(mousePointer, pos)
		}
	case tea.MouseActionMotion:
		s.PointerMove(mousePointer, pos)
	case tea.MouseActionRelease:
		s.PointerUp(mousePointer)
	}
	return m, nil
}

// handleResize refits the arena. The run continues; entities are pulled
// back inside on the next step.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-footerRows))
	m.help.Width = msg.Width

	arena := m.arena()
	m.game.session.SetArena(arena)
	m.game.proj = fishfeast.NewProjection(arena, m.screen.Width(), m.screen.Height())

	return m, nil
}

// handleTick fires the pending frame and keeps ticking while the driver
// wants frames.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	g := m.game
	g.sched.Fire(t)

	if g.sched.Waiting() {
		return m, tickCmd(m.runtime.TickRate)
	}
	g.ticking = false
	return m, nil
}

// ensureTicking starts the tick loop unless it is already running.
func (m Model) ensureTicking() tea.Cmd {
	if m.game.ticking || !m.game.sched.Waiting() {
		return nil
	}
	m.game.ticking = true
	return tickCmd(m.runtime.TickRate)
}

// State returns the latest session state.
func (m Model) State() fishfeast.State {
	return m.game.session.State()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	fishfeast.Render(m.screen, m.game.session, m.game.proj)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
