package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const frame = 1.0 / 60

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPlayerIntentAccumulates(t *testing.T) {
	p := NewPlayer(core.Zero, DefaultPhysics())

	p.Press(core.KeyLeft)
	p.Press(core.KeyRight)
	if !core.IsZero(p.Intent()) {
		t.Fatalf("holding left and right should cancel, got %v", p.Intent())
	}

	p.Release(core.KeyLeft)
	if p.Intent() != core.Right {
		t.Errorf("after releasing left, intent = %v, expected right", p.Intent())
	}

	p.Release(core.KeyRight)
	if !core.IsZero(p.Intent()) {
		t.Errorf("after releasing both, intent = %v, expected zero", p.Intent())
	}
}

func TestPlayerOpposingKeysDoNotMove(t *testing.T) {
	p := NewPlayer(core.Zero, DefaultPhysics())
	p.Press(core.KeyRight)
	p.Press(core.KeyLeft)

	x := p.Position().X()
	for i := 0; i < 30; i++ {
		p.Update(frame, nil)
		if p.Position().X() != x {
			t.Fatalf("frame %d: x moved from %v to %v", i, x, p.Position().X())
		}
	}
}

func TestPlayerDiagonalIntentIsNormalized(t *testing.T) {
	phys := DefaultPhysics()
	phys.Gravity = 0
	p := NewPlayer(core.Zero, phys)
	p.intent = core.Vec2{1, 1}

	p.Update(0.5, nil)

	moved := p.Position().Len()
	if !approx(moved, phys.MoveSpeed*0.5) {
		t.Errorf("diagonal move distance = %v, expected %v", moved, phys.MoveSpeed*0.5)
	}
}

func TestPlayerGravity(t *testing.T) {
	p := NewPlayer(core.Zero, DefaultPhysics())

	// Gravity applies after integration, so the first frame does not move.
	p.Update(frame, nil)
	if p.Position().Y() != 0 {
		t.Errorf("first frame y = %v, expected 0", p.Position().Y())
	}
	if !approx(p.JumpVelocity().Y(), -9.5*frame) {
		t.Errorf("velocity after one frame = %v, expected %v", p.JumpVelocity().Y(), -9.5*frame)
	}

	p.Update(frame, nil)
	if p.Position().Y() >= 0 {
		t.Errorf("gravity should pull player down, y = %v", p.Position().Y())
	}
	if p.Grounded() {
		t.Error("player with no platforms should not be grounded")
	}
}

func TestPlayerJumpVelocityIncludesHorizontal(t *testing.T) {
	p := NewPlayer(core.Zero, DefaultPhysics())
	p.SetJumpVelocity(core.Vec2{2, 0})

	p.Update(0.5, nil)

	if !approx(p.Position().X(), 1) {
		t.Errorf("x = %v, expected horizontal jump velocity to apply", p.Position().X())
	}
}

func TestPlayerRestsOnPlatform(t *testing.T) {
	platforms := []Platform{classicPlatform()}
	p := NewPlayer(core.Zero, DefaultPhysics())
	p.SetPosition(core.Vec2{0, -4.51 + p.Rect().HalfHeight()})

	for i := 0; i < 120; i++ {
		p.Update(frame, platforms)
		if !p.Grounded() {
			t.Fatalf("frame %d: player should stay grounded", i)
		}
		if p.Rect().Bottom() != -4.5 {
			t.Fatalf("frame %d: bottom = %v, expected -4.5", i, p.Rect().Bottom())
		}
		if !core.IsZero(p.JumpVelocity()) {
			t.Fatalf("frame %d: jump velocity = %v, expected zero", i, p.JumpVelocity())
		}
	}
}

func TestPlayerJumpOnlyWhenGrounded(t *testing.T) {
	platforms := []Platform{classicPlatform()}
	p := NewPlayer(core.Zero, DefaultPhysics())

	// Airborne: jump is ignored.
	p.Update(frame, platforms)
	before := p.JumpVelocity()
	if p.Press(core.KeyJump) {
		t.Error("jump should not start while airborne")
	}
	if p.JumpVelocity() != before {
		t.Errorf("airborne jump changed velocity from %v to %v", before, p.JumpVelocity())
	}

	// Grounded: jump sets upward velocity.
	p.SetPosition(core.Vec2{0, -4.51 + p.Rect().HalfHeight()})
	p.Update(frame, platforms)
	if !p.Press(core.KeyJump) {
		t.Fatal("jump should start while grounded")
	}
	if p.JumpVelocity() != core.Up.Mul(9) {
		t.Errorf("jump velocity = %v, expected (0, 9)", p.JumpVelocity())
	}

	p.Update(frame, platforms)
	if p.Grounded() {
		t.Error("player should leave the ground after jumping")
	}
	if p.Rect().Bottom() <= -4.5 {
		t.Errorf("player should have moved up, bottom = %v", p.Rect().Bottom())
	}
}

func TestPlayerReset(t *testing.T) {
	platforms := []Platform{classicPlatform()}
	p := NewPlayer(core.Zero, DefaultPhysics())

	// Mid-jump with keys held.
	p.SetPosition(core.Vec2{0, -4.51 + p.Rect().HalfHeight()})
	p.Update(frame, platforms)
	p.Press(core.KeyJump)
	p.Press(core.KeyRight)
	for i := 0; i < 10; i++ {
		p.Update(frame, platforms)
	}

	p.Reset()

	if p.Position() != core.Zero {
		t.Errorf("position = %v, expected origin", p.Position())
	}
	if !core.IsZero(p.Intent()) {
		t.Errorf("intent = %v, expected zero", p.Intent())
	}
	if !core.IsZero(p.JumpVelocity()) {
		t.Errorf("jump velocity = %v, expected zero", p.JumpVelocity())
	}
}

func TestPlayerResetKeepsGrounded(t *testing.T) {
	platforms := []Platform{classicPlatform()}
	p := NewPlayer(core.Zero, DefaultPhysics())
	p.SetPosition(core.Vec2{0, -4.51 + p.Rect().HalfHeight()})
	p.Update(frame, platforms)

	p.Reset()
	if !p.Grounded() {
		t.Error("Reset should not clear grounded until the next frame")
	}

	p.Update(frame, platforms)
	if p.Grounded() {
		t.Error("player at origin should not be grounded after the next frame")
	}
}

func TestPlayerResetToSpawn(t *testing.T) {
	spawn := core.Vec2{2, 3}
	p := NewPlayer(spawn, DefaultPhysics())
	p.Press(core.KeyLeft)
	p.Update(0.5, nil)

	p.Reset()
	if pos := p.Position(); !approx(pos.X(), spawn.X()) || !approx(pos.Y(), spawn.Y()) {
		t.Errorf("position = %v, expected spawn %v", p.Position(), spawn)
	}
}

func TestPlayerHeadBump(t *testing.T) {
	platforms := []Platform{NewPlatform(3, 1, core.Vec2{0, 2}, 0.25)} // bottom at 1.5
	p := NewPlayer(core.Zero, DefaultPhysics())
	p.SetJumpVelocity(core.Up.Mul(9))

	var bumped bool
	for i := 0; i < 30 && !bumped; i++ {
		for _, c := range p.Update(frame, platforms) {
			if c.Side == SideBottom {
				bumped = true
			}
		}
	}

	if !bumped {
		t.Fatal("player should hit the underside of the platform")
	}
	if p.Rect().Top() != 1.5 {
		t.Errorf("top = %v, expected snap to 1.5", p.Rect().Top())
	}
	if p.JumpVelocity() != core.Down {
		t.Errorf("jump velocity = %v, expected (0, -1)", p.JumpVelocity())
	}
}

func TestPlayerBlockedByLeftWall(t *testing.T) {
	// Platform x [0.5, 3.5], y [-3.5, -2.5].
	platforms := []Platform{NewPlatform(3, 1, core.Vec2{2, -3}, 0.25)}
	p := NewPlayer(core.Zero, DefaultPhysics())
	p.SetPosition(core.Vec2{0.2 - p.Rect().HalfWidth(), -3})
	p.Press(core.KeyRight)

	contacts := p.Update(0.1, platforms)

	if len(contacts) != 1 || contacts[0].Side != SideLeft {
		t.Fatalf("contacts = %v, expected one left-wall contact", contacts)
	}
	if p.Rect().Right() != 0.5 {
		t.Errorf("right edge = %v, expected exactly 0.5", p.Rect().Right())
	}
}

func TestPlayerBlockedByRightWall(t *testing.T) {
	// Platform x [-4.5, -1.5], y [-4.5, -3.5].
	platforms := []Platform{NewPlatform(3, 1, core.Vec2{-3, -4}, 0.25)}
	p := NewPlayer(core.Zero, DefaultPhysics())
	p.SetPosition(core.Vec2{-1.2 + p.Rect().HalfWidth(), -4})
	p.Press(core.KeyLeft)

	contacts := p.Update(0.1, platforms)

	if len(contacts) != 1 || contacts[0].Side != SideRight {
		t.Fatalf("contacts = %v, expected one right-wall contact", contacts)
	}
	if p.Rect().Left() != -1.5 {
		t.Errorf("left edge = %v, expected exactly -1.5", p.Rect().Left())
	}
}

func TestPlayerFallsOntoPlatform(t *testing.T) {
	platforms := []Platform{classicPlatform()}
	p := NewPlayer(core.Zero, DefaultPhysics())

	landed := -1
	for i := 0; i < 600; i++ {
		p.Update(frame, platforms)
		if p.Grounded() {
			landed = i
			break
		}
	}

	if landed < 0 {
		t.Fatal("player never landed")
	}
	if p.Rect().Bottom() != -4.5 {
		t.Errorf("bottom = %v, expected exactly -4.5", p.Rect().Bottom())
	}
	if !core.IsZero(p.JumpVelocity()) {
		t.Errorf("jump velocity = %v, expected zero on landing", p.JumpVelocity())
	}
}

func TestPlayerResolutionModes(t *testing.T) {
	// A: floor with top at -4.5. B: block whose left edge is at 0.9.
	floor := NewPlatform(3, 1, core.Vec2{0, -5}, 0.25)
	block := NewPlatform(2, 2, core.Vec2{1.9, -4}, 0.25)
	start := core.Vec2{0.5, -4.6 + 0.495}

	tests := []struct {
		name      string
		mode      Resolution
		contacts  int
		wantRight float64
	}{
		{"all platforms", ResolveAll, 2, 0.9},
		{"first contact only", ResolveFirst, 1, start.X() + 0.495},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			phys := DefaultPhysics()
			phys.Resolution = tc.mode
			p := NewPlayer(start, phys)

			contacts := p.Update(frame, []Platform{floor, block})

			if len(contacts) != tc.contacts {
				t.Fatalf("contacts = %v, expected %d", contacts, tc.contacts)
			}
			if contacts[0].Side != SideTop || contacts[0].Platform != 0 {
				t.Errorf("first contact = %+v, expected top of platform 0", contacts[0])
			}
			if !p.Grounded() {
				t.Error("player should be grounded on the floor")
			}
			if !approx(p.Rect().Right(), tc.wantRight) {
				t.Errorf("right edge = %v, expected %v", p.Rect().Right(), tc.wantRight)
			}
		})
	}
}

func TestPlayerLaterPlatformOverwrites(t *testing.T) {
	low := NewPlatform(3, 1, core.Vec2{0, -5}, 0.25)    // top -4.5
	high := NewPlatform(3, 1, core.Vec2{0, -4.9}, 0.25) // top -4.4
	start := core.Vec2{0, -4.55 + 0.495}

	all := NewPlayer(start, DefaultPhysics())
	all.Update(frame, []Platform{low, high})
	if all.Rect().Bottom() != -4.4 {
		t.Errorf("resolve all: bottom = %v, expected later platform to win at -4.4", all.Rect().Bottom())
	}

	phys := DefaultPhysics()
	phys.Resolution = ResolveFirst
	first := NewPlayer(start, phys)
	first.Update(frame, []Platform{low, high})
	if first.Rect().Bottom() != -4.5 {
		t.Errorf("resolve first: bottom = %v, expected first platform to win at -4.5", first.Rect().Bottom())
	}
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		in      string
		want    Resolution
		wantErr bool
	}{
		{"", ResolveAll, false},
		{"all", ResolveAll, false},
		{"first", ResolveFirst, false},
		{"nearest", ResolveAll, true},
	}

	for _, tc := range tests {
		got, err := ParseResolution(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseResolution(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseResolution(%q) = %v, expected %v", tc.in, got, tc.want)
		}
		if !tc.wantErr && got.String() != tc.in && tc.in != "" {
			t.Errorf("String() = %q, expected %q", got.String(), tc.in)
		}
	}
}
