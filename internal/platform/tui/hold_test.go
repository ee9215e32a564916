package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestHoldTrackerRepeatsAreOnePress(t *testing.T) {
	h := NewHoldTracker(500 * time.Millisecond)
	t0 := time.Now()

	if !h.Press(core.KeyLeft, t0) {
		t.Fatal("first press should be reported")
	}
	for i := 1; i <= 5; i++ {
		if h.Press(core.KeyLeft, t0.Add(time.Duration(i)*30*time.Millisecond)) {
			t.Fatalf("repeat %d should not be reported as a new press", i)
		}
	}
	if !h.IsHeld(core.KeyLeft) {
		t.Error("key should be held")
	}
}

func TestHoldTrackerExpire(t *testing.T) {
	window := 500 * time.Millisecond
	h := NewHoldTracker(window)
	t0 := time.Now()

	h.Press(core.KeyLeft, t0)
	h.Press(core.KeyRight, t0.Add(300*time.Millisecond))

	tests := []struct {
		name string
		at   time.Duration
		want []core.Key
	}{
		{"nothing yet", 400 * time.Millisecond, nil},
		{"left expires", 500 * time.Millisecond, []core.Key{core.KeyLeft}},
		{"left already gone", 600 * time.Millisecond, nil},
		{"right expires", 800 * time.Millisecond, []core.Key{core.KeyRight}},
	}

	for _, tc := range tests {
		got := h.Expire(t0.Add(tc.at))
		if len(got) != len(tc.want) {
			t.Fatalf("%s: Expire() = %v, expected %v", tc.name, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: Expire()[%d] = %v, expected %v", tc.name, i, got[i], tc.want[i])
			}
		}
	}
}

func TestHoldTrackerRepeatExtendsHold(t *testing.T) {
	h := NewHoldTracker(500 * time.Millisecond)
	t0 := time.Now()

	h.Press(core.KeyRight, t0)
	h.Press(core.KeyRight, t0.Add(400*time.Millisecond))

	if got := h.Expire(t0.Add(700 * time.Millisecond)); len(got) != 0 {
		t.Errorf("repeat should extend the hold, got releases %v", got)
	}
	if got := h.Expire(t0.Add(900 * time.Millisecond)); len(got) != 1 {
		t.Errorf("expected release after the window, got %v", got)
	}
}

func TestHoldTrackerReleaseAllAndClear(t *testing.T) {
	h := NewHoldTracker(time.Second)
	now := time.Now()

	h.Press(core.KeyRight, now)
	h.Press(core.KeyLeft, now)

	got := h.ReleaseAll()
	if len(got) != 2 || got[0] != core.KeyLeft || got[1] != core.KeyRight {
		t.Errorf("ReleaseAll() = %v, expected [Left Right]", got)
	}
	if len(h.Held()) != 0 {
		t.Error("ReleaseAll() should forget every key")
	}

	h.Press(core.KeyLeft, now)
	h.Clear()
	if h.IsHeld(core.KeyLeft) {
		t.Error("Clear() should forget every key")
	}
	if !h.Press(core.KeyLeft, now) {
		t.Error("press after Clear() should be reported as new")
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(time.Second)
	now := time.Now()

	h.Press(core.KeyLeft, now)
	if !h.Release(core.KeyLeft) {
		t.Error("Release() of a held key should report true")
	}
	if h.Release(core.KeyLeft) {
		t.Error("Release() of a forgotten key should report false")
	}
	if got := h.Expire(now.Add(2 * time.Second)); len(got) != 0 {
		t.Errorf("Expire() = %v, expected nothing after Release()", got)
	}
}

func TestOpposite(t *testing.T) {
	if opposite(core.KeyLeft) != core.KeyRight || opposite(core.KeyRight) != core.KeyLeft {
		t.Error("opposite() should swap left and right")
	}
}
