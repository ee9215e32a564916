package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameOptions configures a GameModel.
type GameOptions struct {
	Config    config.PlatformerConfig
	Layout    string // Explicit layout name; empty defers to the config
	Store     *storage.Store
	Logger    *log.Logger
	Runtime   core.RuntimeConfig
	Watcher   *config.Watcher // Optional; reloads the world on config changes
	AllowBack bool            // Enables the back-to-menu key
	Clipboard bool            // Screenshots are also copied to the local clipboard
}

// ConfigReloadedMsg carries a configuration re-read after a file change.
type ConfigReloadedMsg struct {
	Path   string
	Config config.PlatformerConfig
	Err    error
}

// GameModel is the Bubble Tea model that hosts a platformer world.
type GameModel struct {
	id       uint64
	cfg      config.PlatformerConfig
	explicit string
	layout   registry.Layout
	world    *game.World
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	runtime  core.RuntimeConfig
	watcher  *config.Watcher
	hold     *HoldTracker
	keys     GameKeyMap
	help     help.Model
	lastTick time.Time
	status   string
	copyShot bool

	paused     bool
	quitting   bool
	backToMenu bool
	saved      bool
}

// NewGameModel creates a game model for the configured layout.
func NewGameModel(opts GameOptions) (GameModel, error) {
	layout, err := registry.Resolve(opts.Layout, opts.Config.PlatformSpecs(), opts.Config.Layout)
	if err != nil {
		return GameModel{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultGameKeyMap()
	keys.Back.SetEnabled(opts.AllowBack)

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	m := GameModel{
		id:       nextGameID(),
		cfg:      opts.Config,
		explicit: opts.Layout,
		layout:   layout,
		store:    opts.Store,
		logger:   logger,
		runtime:  opts.Runtime,
		watcher:  opts.Watcher,
		copyShot: opts.Clipboard,
		hold:     NewHoldTracker(opts.Config.HoldDuration()),
		keys:     keys,
		help:     h,
		screen:   core.NewScreen(opts.Runtime.ScreenW, core.Max(1, opts.Runtime.ScreenH-1)),
	}
	m.world = m.newWorld()

	logger.Info("game started", "layout", layout.ID, "platforms", len(layout.Platforms))
	return m, nil
}

func (m GameModel) newWorld() *game.World {
	return game.NewWorld(m.cfg.GamePhysics(), m.cfg.SpawnPoint(), m.layout.Platforms)
}

// Init starts the tick loop and the config watcher, if any.
func (m GameModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.id, m.runtime.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, watchConfig(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick(msg.Time)

	case ConfigReloadedMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input received at now.
func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveRun()
		m.quitting = true
		m.logger.Info("quit", "layout", m.layout.ID)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.saveRun()
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if m.paused {
			for _, k := range m.hold.ReleaseAll() {
				m.world.KeyReleased(k)
			}
		}
		// Time spent paused is not simulated.
		m.lastTick = time.Time{}
		return m, nil
	}

	if m.paused {
		return m, nil
	}

	switch k := m.keys.GameKey(msg); k {
	case core.KeyReset:
		m.world.KeyPressed(k)
		m.hold.Clear()
		m.logger.Debug("reset", "layout", m.layout.ID)
	case core.KeyLeft, core.KeyRight:
		// Only the last pressed key repeats, so pressing one direction
		// ends a hold on the other.
		if opp := opposite(k); m.hold.Release(opp) {
			m.world.KeyReleased(opp)
		}
		if m.hold.Press(k, now) {
			m.world.KeyPressed(k)
		}
	case core.KeyJump:
		m.world.KeyPressed(k)
	}

	return m, nil
}

// handleTick releases expired keys and advances the world.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	for _, k := range m.hold.Expire(now) {
		m.world.KeyReleased(k)
	}

	dt := frameDelta(m.lastTick, now, m.cfg.MaxFrameDuration(), m.runtime.FrameTime())
	m.lastTick = now

	if !m.paused {
		m.world.Advance(dt)
	}

	return m, tickCmd(m.id, m.runtime.TickRate)
}

// handleReload rebuilds the world from a reloaded configuration.
func (m GameModel) handleReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	next := watchConfig(m.watcher)

	if msg.Err != nil {
		m.logger.Warn("config reload failed", "error", msg.Err)
		m.status = "config error"
		return m, next
	}

	layout, err := registry.Resolve(m.explicit, msg.Config.PlatformSpecs(), msg.Config.Layout)
	if err != nil {
		m.logger.Warn("config reload failed", "error", err)
		m.status = "config error"
		return m, next
	}

	m.saveRun()
	m.cfg = msg.Config
	m.layout = layout
	m.world = m.newWorld()
	m.hold.Clear()
	m.hold.SetWindow(m.cfg.HoldDuration())
	m.saved = false
	m.status = "reloaded"

	m.logger.Info("config reloaded", "path", msg.Path, "layout", layout.ID)
	return m, next
}

// watchConfig waits for the next change reported by w.
func watchConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			cfg, err := config.LoadFile(path)
			return ConfigReloadedMsg{Path: path, Config: cfg, Err: err}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ConfigReloadedMsg{Err: err}
		}
	}
}

// saveRun stores the session statistics once.
func (m *GameModel) saveRun() {
	if m.saved || m.store == nil {
		return
	}
	st := m.world.Stats()
	if st.Frames == 0 {
		return
	}
	if _, err := m.store.SaveRun(m.layout.ID, st); err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.saved = true
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	DrawScene(m.screen, m.world, m.cfg.View.ColsPerUnit, m.cfg.View.RowsPerUnit, m.status)

	name := fmt.Sprintf("%s_%s.txt", m.layout.ID, time.Now().Format("20060102_150405"))
	path, err := xdg.DataFile("platformer/screenshots/" + name)
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.status = "saved " + name
	m.logger.Info("screenshot saved", "path", path)

	if m.copyShot {
		if err := clipboard.WriteAll(m.screen.String()); err != nil {
			m.logger.Debug("clipboard unavailable", "error", err)
			return
		}
		m.status += " (copied)"
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	helpView := helpStyle.Render(m.help.View(m.keys))
	height := core.Max(1, m.runtime.ScreenH-lipgloss.Height(helpView))
	if m.screen.Height() != height {
		m.screen.Resize(m.runtime.ScreenW, height)
	}

	status := m.status
	if m.paused {
		status = "PAUSED"
	}
	DrawScene(m.screen, m.world, m.cfg.View.ColsPerUnit, m.cfg.View.RowsPerUnit, status)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "  PAUSED - press p  ")
	}

	return RenderScreen(m.screen) + "\n" + helpView
}

// World returns the hosted world.
func (m GameModel) World() *game.World {
	return m.world
}

// Layout returns the layout being played.
func (m GameModel) Layout() registry.Layout {
	return m.layout
}

// Paused reports whether the simulation is paused.
func (m GameModel) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a local game.
func Run(opts GameOptions) error {
	model, err := NewGameModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
