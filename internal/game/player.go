package game

import "github.com/vovakirdan/tui-platformer/internal/core"

// Contact records a side response applied during a frame.
type Contact struct {
	Platform int  // Index into the platform slice
	Side     Side // Side that matched
}

// Player is the single dynamic body of the world.
type Player struct {
	rect         core.Rect
	spawn        core.Vec2
	intent       core.Vec2 // Sum of held direction keys
	jumpVelocity core.Vec2
	grounded     bool
	phys         Physics
}

// NewPlayer creates a player centered on spawn.
func NewPlayer(spawn core.Vec2, phys Physics) *Player {
	return &Player{
		rect:  core.NewRect(spawn, phys.PlayerSize, phys.PlayerSize),
		spawn: spawn,
		phys:  phys,
	}
}

// Rect returns the player's bounding rectangle.
func (p *Player) Rect() core.Rect { return p.rect }

// Position returns the player's center.
func (p *Player) Position() core.Vec2 { return p.rect.Center() }

// SetPosition moves the player's center to pos.
func (p *Player) SetPosition(pos core.Vec2) { p.rect.SetCenter(pos) }

// Intent returns the accumulated direction of held movement keys.
func (p *Player) Intent() core.Vec2 { return p.intent }

// JumpVelocity returns the velocity integrated on top of intent movement.
func (p *Player) JumpVelocity() core.Vec2 { return p.jumpVelocity }

// SetJumpVelocity overrides the current jump velocity.
func (p *Player) SetJumpVelocity(v core.Vec2) { p.jumpVelocity = v }

// Grounded reports whether the player stood on a top surface last frame.
func (p *Player) Grounded() bool { return p.grounded }

// Spawn returns the position Reset restores.
func (p *Player) Spawn() core.Vec2 { return p.spawn }

// Press applies a key press. It returns true if the press started a jump.
func (p *Player) Press(k core.Key) bool {
	switch k {
	case core.KeyLeft:
		p.intent = p.intent.Add(core.Left)
	case core.KeyRight:
		p.intent = p.intent.Add(core.Right)
	case core.KeyJump:
		if p.grounded {
			p.jumpVelocity = core.Up.Mul(p.phys.JumpSpeed)
			return true
		}
	}
	return false
}

// Release applies a key release, undoing the matching press.
func (p *Player) Release(k core.Key) {
	switch k {
	case core.KeyLeft:
		p.intent = p.intent.Sub(core.Left)
	case core.KeyRight:
		p.intent = p.intent.Sub(core.Right)
	}
}

// Reset returns the player to its spawn point with no intent or velocity.
// Grounded is left for the next frame to recompute.
func (p *Player) Reset() {
	p.rect.SetCenter(p.spawn)
	p.intent = core.Zero
	p.jumpVelocity = core.Zero
}

// Update advances the player by dt seconds and resolves contacts against
// platforms. It returns the contacts that were applied, in order.
func (p *Player) Update(dt float64, platforms []Platform) []Contact {
	if !core.IsZero(p.intent) {
		p.rect.Translate(p.intent.Normalize().Mul(p.phys.MoveSpeed * dt))
	}
	p.rect.Translate(p.jumpVelocity.Mul(dt))
	p.jumpVelocity = p.jumpVelocity.Add(core.Down.Mul(p.phys.Gravity * dt))

	p.grounded = false
	var contacts []Contact
	for i := range platforms {
		side := p.resolve(&platforms[i])
		if side == SideNone {
			continue
		}
		contacts = append(contacts, Contact{Platform: i, Side: side})
		if p.phys.Resolution == ResolveFirst {
			break
		}
	}

	if p.grounded {
		p.jumpVelocity = core.Zero
	}
	return contacts
}

// resolve snaps the player against one platform.
func (p *Player) resolve(pl *Platform) Side {
	side := pl.Contact(p.rect)
	switch side {
	case SideTop:
		p.rect.SetBottom(pl.Top())
		p.grounded = true
	case SideBottom:
		p.rect.SetTop(pl.Bottom())
		p.jumpVelocity = core.Down.Mul(p.phys.BumpSpeed)
	case SideLeft:
		p.rect.SetRight(pl.Left())
	case SideRight:
		p.rect.SetLeft(pl.Right())
	}
	return side
}
