package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// HoldTracker turns terminal key repeats into press and release pairs.
// Terminals report a held key as a stream of repeated presses and never
// report the release, so a key counts as released once it has not repeated
// for the hold window.
type HoldTracker struct {
	window time.Duration
	held   map[core.Key]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		held:   make(map[core.Key]time.Time),
	}
}

// Press records a key press at now. It returns true when the key was not
// already held, i.e. when the game should see a new press.
func (h *HoldTracker) Press(k core.Key, now time.Time) bool {
	_, already := h.held[k]
	h.held[k] = now
	return !already
}

// Expire returns the keys whose hold window has elapsed at now and forgets
// them. Keys are returned in a stable order.
func (h *HoldTracker) Expire(now time.Time) []core.Key {
	var released []core.Key
	for k, last := range h.held {
		if now.Sub(last) >= h.window {
			released = append(released, k)
		}
	}
	for _, k := range released {
		delete(h.held, k)
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// Release forgets k and reports whether it was held.
func (h *HoldTracker) Release(k core.Key) bool {
	_, ok := h.held[k]
	delete(h.held, k)
	return ok
}

// ReleaseAll forgets every held key and returns them.
func (h *HoldTracker) ReleaseAll() []core.Key {
	released := h.Held()
	clear(h.held)
	return released
}

// Clear forgets every held key without reporting releases. Used after a
// reset, which already zeroes the player's intent.
func (h *HoldTracker) Clear() {
	clear(h.held)
}

// Held returns the currently held keys in a stable order.
func (h *HoldTracker) Held() []core.Key {
	keys := make([]core.Key, 0, len(h.held))
	for k := range h.held {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// IsHeld reports whether k is currently held.
func (h *HoldTracker) IsHeld(k core.Key) bool {
	_, ok := h.held[k]
	return ok
}

// SetWindow changes the hold window, e.g. after a config reload.
func (h *HoldTracker) SetWindow(window time.Duration) {
	h.window = window
}

// opposite returns the other horizontal movement key.
func opposite(k core.Key) core.Key {
	if k == core.KeyLeft {
		return core.KeyRight
	}
	return core.KeyLeft
}
