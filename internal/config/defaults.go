package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:       9.5,
			JumpSpeed:     9,
			BumpSpeed:     1,
			MoveSpeed:     4,
			EdgeThickness: 0.25,
			Resolution:    "all",
			MaxStep:       0.01,
		},
		Player: PlayerConfig{
			Size:  0.99,
			Spawn: [2]float64{0, 0},
		},
		Layout: "classic",
		View: ViewConfig{
			ColsPerUnit:  4,
			RowsPerUnit:  2,
			MaxFrameTime: 0.25,
		},
		Input: InputConfig{
			HoldWindow: 0.7,
		},
	}
}
