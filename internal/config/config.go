// Package config provides YAML-based configuration loading for the
// platformer: physics constants, player size, layout choice and view scale.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics   PhysicsConfig    `yaml:"physics"`
	Player    PlayerConfig     `yaml:"player"`
	Layout    string           `yaml:"layout"`
	Platforms []PlatformConfig `yaml:"platforms"`
	View      ViewConfig       `yaml:"view"`
	Input     InputConfig      `yaml:"input"`
}

// PhysicsConfig defines the movement constants.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	BumpSpeed     float64 `yaml:"bump_speed"`
	MoveSpeed     float64 `yaml:"move_speed"`
	EdgeThickness float64 `yaml:"edge_thickness"`
	Resolution    string  `yaml:"resolution"` // all | first
	MaxStep       float64 `yaml:"max_step"`   // seconds, longest integration step per frame
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	Size  float64    `yaml:"size"`
	Spawn [2]float64 `yaml:"spawn"`
}

// PlatformConfig is a single platform in world units.
type PlatformConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// ViewConfig controls how world units map onto terminal cells.
type ViewConfig struct {
	ColsPerUnit  float64 `yaml:"cols_per_unit"`
	RowsPerUnit  float64 `yaml:"rows_per_unit"`
	MaxFrameTime float64 `yaml:"max_frame_time"` // seconds, caps dt after a stall
}

// InputConfig controls synthesized key releases.
type InputConfig struct {
	HoldWindow float64 `yaml:"hold_window"` // seconds a movement key stays held without a repeat
}

// Validate checks the configuration for values the game cannot run with.
// All problems are reported together.
func (c PlatformerConfig) Validate() error {
	var errs []error

	if c.Physics.EdgeThickness <= 0 {
		errs = append(errs, fmt.Errorf("physics.edge_thickness must be positive, got %g", c.Physics.EdgeThickness))
	}
	if c.Physics.Gravity < 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must not be negative, got %g", c.Physics.Gravity))
	}
	if c.Physics.MaxStep <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_step must be positive, got %g", c.Physics.MaxStep))
	}
	if _, err := game.ParseResolution(c.Physics.Resolution); err != nil {
		errs = append(errs, fmt.Errorf("physics.resolution: %w", err))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player.size must be positive, got %g", c.Player.Size))
	}
	for i, p := range c.Platforms {
		if p.W <= 0 || p.H <= 0 {
			errs = append(errs, fmt.Errorf("platforms[%d]: size must be positive, got %gx%g", i, p.W, p.H))
		}
	}
	if c.View.ColsPerUnit <= 0 || c.View.RowsPerUnit <= 0 {
		errs = append(errs, fmt.Errorf("view scale must be positive, got %gx%g", c.View.ColsPerUnit, c.View.RowsPerUnit))
	}
	if c.View.MaxFrameTime <= 0 {
		errs = append(errs, fmt.Errorf("view.max_frame_time must be positive, got %g", c.View.MaxFrameTime))
	}
	if c.Input.HoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("input.hold_window must be positive, got %g", c.Input.HoldWindow))
	}

	return errors.Join(errs...)
}

// GamePhysics converts the physics section into simulation constants.
// The config is expected to have passed Validate.
func (c PlatformerConfig) GamePhysics() game.Physics {
	mode, _ := game.ParseResolution(c.Physics.Resolution)
	return game.Physics{
		Gravity:       c.Physics.Gravity,
		JumpSpeed:     c.Physics.JumpSpeed,
		BumpSpeed:     c.Physics.BumpSpeed,
		MoveSpeed:     c.Physics.MoveSpeed,
		PlayerSize:    c.Player.Size,
		EdgeThickness: c.Physics.EdgeThickness,
		Resolution:    mode,
		MaxStep:       c.Physics.MaxStep,
	}
}

// SpawnPoint returns the player's spawn and reset position.
func (c PlatformerConfig) SpawnPoint() core.Vec2 {
	return core.Vec2{c.Player.Spawn[0], c.Player.Spawn[1]}
}

// PlatformSpecs returns the platforms defined in the file, if any.
func (c PlatformerConfig) PlatformSpecs() []game.PlatformSpec {
	if len(c.Platforms) == 0 {
		return nil
	}
	specs := make([]game.PlatformSpec, len(c.Platforms))
	for i, p := range c.Platforms {
		specs[i] = game.PlatformSpec{X: p.X, Y: p.Y, W: p.W, H: p.H}
	}
	return specs
}

// MaxFrameDuration returns the dt cap as a duration.
func (c PlatformerConfig) MaxFrameDuration() time.Duration {
	return time.Duration(c.View.MaxFrameTime * float64(time.Second))
}

// HoldDuration returns the synthesized key-release window as a duration.
func (c PlatformerConfig) HoldDuration() time.Duration {
	return time.Duration(c.Input.HoldWindow * float64(time.Second))
}
