package game

import "github.com/vovakirdan/tui-platformer/internal/core"

// Side classifies which edge of a platform a moving rectangle touches.
type Side int

const (
	SideNone   Side = iota
	SideTop         // Standing on the top surface
	SideBottom      // Head in the underside
	SideLeft        // Pushing into the left wall
	SideRight       // Pushing into the right wall
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Platform is a static rectangle with a thin collider along each edge.
// The colliders are derived once at construction; platforms never move.
type Platform struct {
	rect      core.Rect
	top       core.Rect
	bottom    core.Rect
	leftWall  core.Rect
	rightWall core.Rect
}

// NewPlatform creates a platform of the given size centered on pos.
// thickness is the depth of each edge collider.
func NewPlatform(width, height float64, pos core.Vec2, thickness float64) Platform {
	p := Platform{rect: core.NewRect(pos, width, height)}

	p.top = core.NewRect(pos, width, thickness)
	p.top.SetTop(p.rect.Top())

	p.bottom = core.NewRect(pos, width, thickness)
	p.bottom.SetBottom(p.rect.Bottom())

	p.rightWall = core.NewRect(pos, thickness, height)
	p.rightWall.SetRight(p.rect.Right())

	p.leftWall = core.NewRect(pos, thickness, height)
	p.leftWall.SetLeft(p.rect.Left())

	return p
}

// Rect returns the platform's bounding rectangle.
func (p Platform) Rect() core.Rect { return p.rect }

// TopSurface returns the collider along the top edge.
func (p Platform) TopSurface() core.Rect { return p.top }

// BottomSurface returns the collider along the bottom edge.
func (p Platform) BottomSurface() core.Rect { return p.bottom }

// LeftWall returns the collider along the left edge.
func (p Platform) LeftWall() core.Rect { return p.leftWall }

// RightWall returns the collider along the right edge.
func (p Platform) RightWall() core.Rect { return p.rightWall }

// Top returns the y-coordinate of the platform's top edge.
func (p Platform) Top() float64 { return p.rect.Top() }

// Bottom returns the y-coordinate of the platform's bottom edge.
func (p Platform) Bottom() float64 { return p.rect.Bottom() }

// Left returns the x-coordinate of the platform's left edge.
func (p Platform) Left() float64 { return p.rect.Left() }

// Right returns the x-coordinate of the platform's right edge.
func (p Platform) Right() float64 { return p.rect.Right() }

// InSurface reports whether s has its feet inside the top band while
// horizontally overlapping the platform.
func (p Platform) InSurface(s core.Rect) bool {
	return within(s.Bottom(), p.top.Bottom(), p.top.Top()) && s.OverlapsX(p.rect)
}

// InBottom reports whether s has its head inside the bottom band while
// horizontally overlapping the platform.
func (p Platform) InBottom(s core.Rect) bool {
	return within(s.Top(), p.bottom.Bottom(), p.bottom.Top()) && s.OverlapsX(p.rect)
}

// InLeft reports whether s has its right edge inside the left wall band
// while vertically overlapping the platform.
func (p Platform) InLeft(s core.Rect) bool {
	return within(s.Right(), p.leftWall.Left(), p.leftWall.Right()) && s.OverlapsY(p.rect)
}

// InRight reports whether s has its left edge inside the right wall band
// while vertically overlapping the platform.
func (p Platform) InRight(s core.Rect) bool {
	return within(s.Left(), p.rightWall.Left(), p.rightWall.Right()) && s.OverlapsY(p.rect)
}

// Contact classifies s against the platform. Sides are tested in order
// top, bottom, left, right and the first match wins.
func (p Platform) Contact(s core.Rect) Side {
	switch {
	case p.InSurface(s):
		return SideTop
	case p.InBottom(s):
		return SideBottom
	case p.InLeft(s):
		return SideLeft
	case p.InRight(s):
		return SideRight
	default:
		return SideNone
	}
}

// within reports lo <= v <= hi.
func within(v, lo, hi float64) bool {
	return lo <= v && v <= hi
}
