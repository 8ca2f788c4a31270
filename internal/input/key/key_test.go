package key

import "testing"

func TestKeyModifier(t *testing.T) {
	tests := []struct {
		key  Key
		want Modifier
	}{
		{KeyShift, ModShift},
		{KeyCtrl, ModCtrl},
		{KeyAlt, ModAlt},
		{KeyMeta, ModMeta},
		{KeyEscape, ModNone},
		{KeyRune, ModNone},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := tt.key.Modifier(); got != tt.want {
				t.Errorf("Modifier() = %v, want %v", got, tt.want)
			}
			if got := tt.key.IsModifier(); got != (tt.want != ModNone) {
				t.Errorf("IsModifier() = %v", got)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	if got := KeyEscape.String(); got != "Escape" {
		t.Errorf("KeyEscape.String() = %q", got)
	}
	if got := Key(200).String(); got != "Key(200)" {
		t.Errorf("unknown key String() = %q", got)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewRuneEvent('z', ModCtrl), "Ctrl+z"},
		{NewRuneEvent('Z', ModCtrl|ModShift), "Ctrl+Z"},
		{NewSpecialEvent(KeyUp, ModShift), "Shift+Up"},
		{NewSpecialEvent(KeyEscape, ModNone), "Escape"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEventReleased(t *testing.T) {
	ev := NewSpecialEvent(KeyAlt, ModAlt)
	if ev.Action != ActionPress {
		t.Fatalf("new event action = %v, want press", ev.Action)
	}
	up := ev.Released()
	if up.Action != ActionRelease || up.Key != KeyAlt {
		t.Errorf("Released() = %+v", up)
	}
	if ev.Action != ActionPress {
		t.Error("Released() must not modify the receiver")
	}
}

func TestEventIsEscape(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"plain", NewSpecialEvent(KeyEscape, ModNone), true},
		{"shifted", NewSpecialEvent(KeyEscape, ModShift), false},
		{"rune", NewRuneEvent('q', ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsEscape(); got != tt.want {
				t.Errorf("IsEscape() = %v, want %v", got, tt.want)
			}
		})
	}
}
