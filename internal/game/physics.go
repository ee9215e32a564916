// Package game implements the platformer simulation: static platforms with
// four edge colliders, a player driven by intent and gravity, and the world
// that owns them. It has no knowledge of the terminal host.
package game

import "fmt"

// Resolution selects how contacts against several platforms combine within
// one frame.
type Resolution int

const (
	// ResolveAll tests every platform; a later platform's response may
	// overwrite an earlier one in the same frame.
	ResolveAll Resolution = iota
	// ResolveFirst stops at the first platform that reports a contact.
	ResolveFirst
)

// String returns the config name of the resolution mode.
func (r Resolution) String() string {
	switch r {
	case ResolveAll:
		return "all"
	case ResolveFirst:
		return "first"
	default:
		return "unknown"
	}
}

// ParseResolution parses a config name. The empty string means ResolveAll.
func ParseResolution(s string) (Resolution, error) {
	switch s {
	case "", "all":
		return ResolveAll, nil
	case "first":
		return ResolveFirst, nil
	default:
		return ResolveAll, fmt.Errorf("unknown resolution mode %q (want all or first)", s)
	}
}

// Physics holds the tunable constants of the simulation.
type Physics struct {
	Gravity       float64    // Downward acceleration, units/s²
	JumpSpeed     float64    // Upward speed set by a jump
	BumpSpeed     float64    // Downward speed after hitting a platform underside
	MoveSpeed     float64    // Horizontal speed while a direction is held
	PlayerSize    float64    // Side length of the square player
	EdgeThickness float64    // Thickness of platform edge colliders
	Resolution    Resolution // How contacts against several platforms combine
	MaxStep       float64    // Longest single integration step used by Advance, seconds
}

// DefaultPhysics returns the constants of the classic game.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:       9.5,
		JumpSpeed:     9,
		BumpSpeed:     1,
		MoveSpeed:     4,
		PlayerSize:    0.99,
		EdgeThickness: 0.25,
		Resolution:    ResolveAll,
		MaxStep:       0.01,
	}
}
