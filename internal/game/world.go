package game

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// PlatformSpec describes a platform by center and size.
type PlatformSpec struct {
	X, Y float64 // Center
	W, H float64 // Size
}

// World owns the players and the static platforms.
// It is driven from a single goroutine: key events are applied as they
// arrive and therefore always before the next Update.
type World struct {
	players   []*Player
	platforms []Platform
	phys      Physics
	stats     Stats
}

// NewWorld creates a world with one player at spawn and the given platforms.
func NewWorld(phys Physics, spawn core.Vec2, specs []PlatformSpec) *World {
	w := &World{
		platforms: make([]Platform, 0, len(specs)),
		phys:      phys,
	}
	for _, s := range specs {
		w.platforms = append(w.platforms, NewPlatform(s.W, s.H, core.Vec2{s.X, s.Y}, phys.EdgeThickness))
	}
	w.players = append(w.players, NewPlayer(spawn, phys))
	return w
}

// AddPlayer adds another player to the world.
func (w *World) AddPlayer(p *Player) {
	w.players = append(w.players, p)
}

// Player returns the first player.
func (w *World) Player() *Player {
	return w.players[0]
}

// Players returns every player in insertion order.
func (w *World) Players() []*Player {
	return w.players
}

// Platforms returns the platforms in iteration order.
func (w *World) Platforms() []Platform {
	return w.platforms
}

// Physics returns the constants the world was built with.
func (w *World) Physics() Physics {
	return w.phys
}

// Stats returns the tally for the session so far.
func (w *World) Stats() Stats {
	return w.stats
}

// Update advances every player by dt seconds in a single step.
// It returns the contacts of the first player.
func (w *World) Update(dt float64) []Contact {
	w.stats.Frames++
	w.stats.Seconds += dt
	return w.step(dt)
}

// Advance advances every player by dt seconds, split into equal steps no
// longer than Physics.MaxStep. It counts as one frame. A step must stay
// short enough that a falling player cannot pass through an edge collider
// between two steps.
// It returns the contacts of the first player across all steps.
func (w *World) Advance(dt float64) []Contact {
	w.stats.Frames++
	w.stats.Seconds += dt

	n := 1
	if w.phys.MaxStep > 0 && dt > w.phys.MaxStep {
		n = int(math.Ceil(dt / w.phys.MaxStep))
	}
	h := dt / float64(n)

	var first []Contact
	for i := 0; i < n; i++ {
		first = append(first, w.step(h)...)
	}
	return first
}

// step moves every player once and folds the results into the stats.
func (w *World) step(dt float64) []Contact {
	var first []Contact
	for i, p := range w.players {
		was := p.Grounded()
		contacts := p.Update(dt, w.platforms)
		w.stats.record(was, p.Grounded(), contacts)
		if i == 0 {
			first = contacts
		}
	}
	return first
}

// KeyPressed dispatches a key press. KeyReset resets every player; other
// keys go to each player.
func (w *World) KeyPressed(k core.Key) {
	if k == core.KeyReset {
		w.Reset()
		return
	}
	for _, p := range w.players {
		if p.Press(k) {
			w.stats.Jumps++
		}
	}
}

// KeyReleased dispatches a key release to each player.
func (w *World) KeyReleased(k core.Key) {
	for _, p := range w.players {
		p.Release(k)
	}
}

// HandleKey dispatches a press or release event.
func (w *World) HandleKey(e core.KeyEvent) {
	if e.Pressed {
		w.KeyPressed(e.Key)
	} else {
		w.KeyReleased(e.Key)
	}
}

// Reset resets every player.
func (w *World) Reset() {
	for _, p := range w.players {
		p.Reset()
	}
	w.stats.Resets++
}
