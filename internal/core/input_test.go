package core

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{KeyNone, "None"},
		{KeyLeft, "Left"},
		{KeyRight, "Right"},
		{KeyJump, "Jump"},
		{KeyReset, "Reset"},
		{Key(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.key.String(); got != tc.expected {
			t.Errorf("Key(%d).String() = %q, expected %q", tc.key, got, tc.expected)
		}
	}
}

func TestParseKey(t *testing.T) {
	for k := KeyLeft; k <= KeyReset; k++ {
		got, ok := ParseKey(k.String())
		if !ok || got != k {
			t.Errorf("ParseKey(%q) = %v, %v", k.String(), got, ok)
		}
	}

	if k, ok := ParseKey("right"); !ok || k != KeyRight {
		t.Errorf("ParseKey(\"right\") = %v, %v", k, ok)
	}

	if _, ok := ParseKey("Duck"); ok {
		t.Error("ParseKey should reject unknown names")
	}
}

func TestKeyEvents(t *testing.T) {
	if e := Press(KeyJump); !e.Pressed || e.Key != KeyJump {
		t.Errorf("Press(KeyJump) = %+v", e)
	}
	if e := Release(KeyLeft); e.Pressed || e.Key != KeyLeft {
		t.Errorf("Release(KeyLeft) = %+v", e)
	}
}
