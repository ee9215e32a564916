package core

import "strings"

// Key represents a semantic game key, abstracted from physical key presses.
// The host maps terminal input onto this fixed enumeration.
type Key int

const (
	KeyNone  Key = iota
	KeyLeft      // A, Left arrow - move left
	KeyRight     // D, Right arrow - move right
	KeyJump      // Space, W, Up - jump (only while grounded)
	KeyReset     // Escape - reset every player
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyJump:
		return "Jump"
	case KeyReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// ParseKey returns the key with the given name, ignoring case.
func ParseKey(name string) (Key, bool) {
	for k := KeyLeft; k <= KeyReset; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return KeyNone, false
}

// KeyEvent is a single press or release delivered by the host.
type KeyEvent struct {
	Key     Key
	Pressed bool // false means released
}

// Press creates a key-press event.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, Pressed: true}
}

// Release creates a key-release event.
func Release(k Key) KeyEvent {
	return KeyEvent{Key: k, Pressed: false}
}
