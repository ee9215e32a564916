// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies on the terminal host (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

// Vec2 is a 2D vector in world units. The y axis points up.
type Vec2 = mgl64.Vec2

// Unit directions.
var (
	Zero  = Vec2{0, 0}
	Up    = Vec2{0, 1}
	Down  = Vec2{0, -1}
	Left  = Vec2{-1, 0}
	Right = Vec2{1, 0}
)

// IsZero reports whether both components of v are exactly zero.
// Normalize must never be called on such a vector.
func IsZero(v Vec2) bool {
	return v[0] == 0 && v[1] == 0
}

// Rect is an axis-aligned rectangle used for collision detection.
// Edges are stored directly so that assigning an edge reads back exactly.
type Rect struct {
	Min Vec2 // Bottom-left corner
	Max Vec2 // Top-right corner
}

// NewRect creates a rectangle centered on c with the given width and height.
func NewRect(c Vec2, w, h float64) Rect {
	half := Vec2{w / 2, h / 2}
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Max[1] }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Min[1] }

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.Min[0] }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.Max[0] }

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max[0] - r.Min[0] }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max[1] - r.Min[1] }

// HalfWidth returns half of the horizontal extent.
func (r Rect) HalfWidth() float64 { return r.Width() / 2 }

// HalfHeight returns half of the vertical extent.
func (r Rect) HalfHeight() float64 { return r.Height() / 2 }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

// SetCenter moves the rectangle so its center is c.
func (r *Rect) SetCenter(c Vec2) {
	*r = NewRect(c, r.Width(), r.Height())
}

// Translate moves the rectangle by d.
func (r *Rect) Translate(d Vec2) {
	r.Min = r.Min.Add(d)
	r.Max = r.Max.Add(d)
}

// SetTop moves the rectangle vertically so its top edge equals y.
func (r *Rect) SetTop(y float64) {
	h := r.Height()
	r.Max[1] = y
	r.Min[1] = y - h
}

// SetBottom moves the rectangle vertically so its bottom edge equals y.
func (r *Rect) SetBottom(y float64) {
	h := r.Height()
	r.Min[1] = y
	r.Max[1] = y + h
}

// SetLeft moves the rectangle horizontally so its left edge equals x.
func (r *Rect) SetLeft(x float64) {
	w := r.Width()
	r.Min[0] = x
	r.Max[0] = x + w
}

// SetRight moves the rectangle horizontally so its right edge equals x.
func (r *Rect) SetRight(x float64) {
	w := r.Width()
	r.Max[0] = x
	r.Min[0] = x - w
}

// OverlapsX returns true if the horizontal extents overlap.
// Touching edges do not count as overlap.
func (r Rect) OverlapsX(o Rect) bool {
	return !(r.Right() <= o.Left() || r.Left() >= o.Right())
}

// OverlapsY returns true if the vertical extents overlap.
// Touching edges do not count as overlap.
func (r Rect) OverlapsY(o Rect) bool {
	return !(r.Top() <= o.Bottom() || r.Bottom() >= o.Top())
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(o Rect) bool {
	return r.OverlapsX(o) && r.OverlapsY(o)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
