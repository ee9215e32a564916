package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

func newTestGame(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	m, err := NewGameModel(GameOptions{
		Config:  config.DefaultPlatformerConfig(),
		Store:   store,
		Logger:  log.New(io.Discard),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
	})
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return gm
}

func tick(t *testing.T, m GameModel, at time.Time) GameModel {
	t.Helper()
	return update(t, m, TickMsg{ID: m.id, Time: at})
}

func TestGameModelDefaultLayout(t *testing.T) {
	m := newTestGame(t, nil)
	if m.Layout().ID != registry.DefaultLayout {
		t.Errorf("layout = %q, expected %q", m.Layout().ID, registry.DefaultLayout)
	}
	if len(m.World().Platforms()) != 3 {
		t.Errorf("expected 3 platforms, got %d", len(m.World().Platforms()))
	}
}

func TestGameModelUnknownLayout(t *testing.T) {
	_, err := NewGameModel(GameOptions{Config: config.DefaultPlatformerConfig(), Layout: "nope"})
	if err == nil {
		t.Error("NewGameModel() should fail for an unknown layout")
	}
}

func TestGameModelHeldKeyIsReleased(t *testing.T) {
	m := newTestGame(t, nil)
	t0 := time.Now()

	m, _ = asGame(m.handleKey(runeKey('d'), t0))
	if got := m.World().Player().Intent(); got != core.Right {
		t.Fatalf("intent after press = %v, expected Right", got)
	}

	// Auto-repeat keeps the key held without adding intent.
	m, _ = asGame(m.handleKey(runeKey('d'), t0.Add(100*time.Millisecond)))
	if got := m.World().Player().Intent(); got != core.Right {
		t.Fatalf("intent after repeat = %v, expected Right", got)
	}

	m = tick(t, m, t0.Add(300*time.Millisecond))
	if got := m.World().Player().Intent(); got != core.Right {
		t.Fatalf("intent before the window = %v, expected Right", got)
	}

	m = tick(t, m, t0.Add(900*time.Millisecond))
	if got := m.World().Player().Intent(); !core.IsZero(got) {
		t.Errorf("intent after the window = %v, expected zero", got)
	}
}

func TestGameModelReversingDirection(t *testing.T) {
	m := newTestGame(t, nil)
	t0 := time.Now()

	// Hold left with auto-repeat.
	for at := time.Duration(0); at <= 300*time.Millisecond; at += 30 * time.Millisecond {
		m, _ = asGame(m.handleKey(runeKey('a'), t0.Add(at)))
		m = tick(t, m, t0.Add(at+time.Millisecond))
	}
	if got := m.World().Player().Intent(); got != core.Left {
		t.Fatalf("intent while holding left = %v, expected Left", got)
	}

	// Switch to right: the terminal stops repeating left.
	m, _ = asGame(m.handleKey(runeKey('d'), t0.Add(350*time.Millisecond)))
	m = tick(t, m, t0.Add(366*time.Millisecond))
	if got := m.World().Player().Intent(); got != core.Right {
		t.Fatalf("intent right after reversing = %v, expected Right", got)
	}
	if m.hold.IsHeld(core.KeyLeft) {
		t.Error("left should no longer be held")
	}

	// Letting go of right must not leave a stale left release behind.
	m = tick(t, m, t0.Add(2*time.Second))
	if got := m.World().Player().Intent(); !core.IsZero(got) {
		t.Errorf("intent after both windows = %v, expected zero", got)
	}
}

func TestGameModelResetForgetsHeldKeys(t *testing.T) {
	m := newTestGame(t, nil)
	t0 := time.Now()

	m, _ = asGame(m.handleKey(runeKey('a'), t0))
	m = tick(t, m, t0.Add(16*time.Millisecond))
	m, _ = asGame(m.handleKey(tea.KeyMsg{Type: tea.KeyEsc}, t0.Add(20*time.Millisecond)))

	p := m.World().Player()
	if !core.IsZero(p.Intent()) || !core.IsZero(p.Position()) {
		t.Fatalf("after reset: intent=%v position=%v", p.Intent(), p.Position())
	}
	if m.World().Stats().Resets != 1 {
		t.Errorf("resets = %d, expected 1", m.World().Stats().Resets)
	}

	// The forgotten key must not produce a release that pushes intent right.
	m = tick(t, m, t0.Add(time.Second))
	if got := m.World().Player().Intent(); !core.IsZero(got) {
		t.Errorf("intent after window = %v, expected zero", got)
	}
}

func TestGameModelPause(t *testing.T) {
	m := newTestGame(t, nil)
	t0 := time.Now()

	m = tick(t, m, t0)
	m = update(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("expected paused")
	}

	before := m.World().Player().Position()
	frames := m.World().Stats().Frames
	m = tick(t, m, t0.Add(16*time.Millisecond))
	m = tick(t, m, t0.Add(32*time.Millisecond))

	if m.World().Player().Position() != before || m.World().Stats().Frames != frames {
		t.Error("world should not advance while paused")
	}

	// Game keys are ignored while paused.
	m, _ = asGame(m.handleKey(runeKey('d'), t0.Add(40*time.Millisecond)))
	if !core.IsZero(m.World().Player().Intent()) {
		t.Error("movement should be ignored while paused")
	}

	m = update(t, m, runeKey('p'))
	m = tick(t, m, t0.Add(48*time.Millisecond))
	if m.World().Stats().Frames != frames+1 {
		t.Errorf("frames = %d, expected %d", m.World().Stats().Frames, frames+1)
	}
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	m := newTestGame(t, nil)

	next, cmd := m.Update(TickMsg{ID: m.id + 1000, Time: time.Now()})
	if cmd != nil {
		t.Error("a foreign tick should not schedule another tick")
	}
	if next.(GameModel).World().Stats().Frames != 0 {
		t.Error("a foreign tick should not advance the world")
	}
}

func TestGameModelQuitSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestGame(t, store)
	t0 := time.Now()
	m = tick(t, m, t0)
	m = tick(t, m, t0.Add(16*time.Millisecond))

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(GameModel).IsQuitting() {
		t.Error("model should be quitting")
	}

	runs, err := store.RecentRuns(registry.DefaultLayout, 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Stats.Frames != 2 {
		t.Errorf("expected one saved run with 2 frames, got %+v", runs)
	}
}

func TestGameModelReload(t *testing.T) {
	m := newTestGame(t, nil)

	cfg := config.DefaultPlatformerConfig()
	cfg.Platforms = []config.PlatformConfig{{X: 0, Y: -1, W: 10, H: 1}}
	cfg.Player.Spawn = [2]float64{1, 2}

	m = update(t, m, ConfigReloadedMsg{Path: "platformer.yaml", Config: cfg})

	if m.Layout().ID != registry.CustomLayout {
		t.Errorf("layout = %q, expected %q", m.Layout().ID, registry.CustomLayout)
	}
	if len(m.World().Platforms()) != 1 {
		t.Errorf("expected 1 platform, got %d", len(m.World().Platforms()))
	}
	if m.World().Player().Spawn() != (core.Vec2{1, 2}) {
		t.Errorf("spawn = %v, expected (1, 2)", m.World().Player().Spawn())
	}

	// A failed reload keeps the current world.
	world := m.World()
	m = update(t, m, ConfigReloadedMsg{Err: io.ErrUnexpectedEOF})
	if m.World() != world {
		t.Error("failed reload should keep the world")
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestGame(t, nil)
	view := m.View()

	if !strings.Contains(view, "@") {
		t.Error("view should contain the player")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should contain the help line")
	}
}

func TestSessionFlow(t *testing.T) {
	rt := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60}
	var m tea.Model = NewSessionModel(nil, config.DefaultPlatformerConfig(), rt, log.New(io.Discard))

	send := func(msg tea.Msg) {
		m, _ = m.Update(msg)
	}
	screen := func() sessionScreen { return m.(SessionModel).screen }

	send(tea.KeyMsg{Type: tea.KeyEnter})
	if screen() != screenGame {
		t.Fatalf("enter should start a game, screen = %d", screen())
	}
	if got := m.(SessionModel).play.Layout().ID; got != "classic" {
		t.Errorf("layout = %q, expected classic", got)
	}

	send(runeKey('b'))
	if screen() != screenMenu {
		t.Fatalf("b should return to the menu, screen = %d", screen())
	}

	send(tea.KeyMsg{Type: tea.KeyTab})
	if screen() != screenRuns {
		t.Fatalf("tab should open runs, screen = %d", screen())
	}

	send(tea.KeyMsg{Type: tea.KeyEsc})
	if screen() != screenMenu {
		t.Fatalf("esc should leave runs, screen = %d", screen())
	}

	send(runeKey('q'))
	if !m.(SessionModel).quitting {
		t.Error("q should quit the session")
	}
}

func asGame(m tea.Model, cmd tea.Cmd) (GameModel, tea.Cmd) {
	return m.(GameModel), cmd
}
