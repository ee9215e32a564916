package registry

import "github.com/vovakirdan/tui-platformer/internal/game"

// DefaultLayout is the layout used when none is named.
const DefaultLayout = "classic"

func init() {
	Register("classic", func() Layout {
		return Layout{
			ID:    "classic",
			Title: "Classic",
			Platforms: []game.PlatformSpec{
				{X: 0, Y: -5, W: 3, H: 1},
				{X: 2, Y: -3, W: 3, H: 1},
				{X: -3, Y: -4, W: 3, H: 1},
			},
		}
	})

	// A staircase under a low ceiling.
	Register("steps", func() Layout {
		return Layout{
			ID:    "steps",
			Title: "Steps",
			Platforms: []game.PlatformSpec{
				{X: 0, Y: -5, W: 12, H: 1},
				{X: 3, Y: -3.5, W: 2, H: 1},
				{X: 5.5, Y: -2, W: 2, H: 1},
				{X: 8, Y: -0.5, W: 2, H: 1},
				{X: 2, Y: 1.5, W: 6, H: 0.5},
				{X: -5.5, Y: -3, W: 1, H: 5},
			},
		}
	})
}
