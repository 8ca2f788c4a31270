package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/penstroke/internal/editor"
	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/input/key"
	"github.com/dshills/penstroke/internal/input/mouse"
	"github.com/dshills/penstroke/internal/scene"
)

func newSimTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(term.Shutdown)
	return term, screen
}

func TestConvertMouseTransitions(t *testing.T) {
	term := NewTerminalWithScreen(tcell.NewSimulationScreen(""))

	tests := []struct {
		name    string
		buttons tcell.ButtonMask
		mods    tcell.ModMask
		want    mouse.Action
	}{
		{"move", tcell.ButtonNone, tcell.ModNone, mouse.ActionMove},
		{"press", tcell.Button1, tcell.ModNone, mouse.ActionPress},
		{"drag", tcell.Button1, tcell.ModNone, mouse.ActionDrag},
		{"drag with shift", tcell.Button1, tcell.ModShift, mouse.ActionDrag},
		{"release", tcell.ButtonNone, tcell.ModNone, mouse.ActionRelease},
		{"move again", tcell.ButtonNone, tcell.ModNone, mouse.ActionMove},
		{"right button", tcell.Button2, tcell.ModNone, mouse.ActionMove},
	}

	for i, tt := range tests {
		ev := term.Convert(tcell.NewEventMouse(i, 2*i, tt.buttons, tt.mods))
		if ev.Type != EventMouse {
			t.Fatalf("%s: type = %v, want mouse", tt.name, ev.Type)
		}
		if ev.Mouse.Action != tt.want {
			t.Errorf("%s: action = %v, want %v", tt.name, ev.Mouse.Action, tt.want)
		}
		if ev.Mouse.Point != geom.Pt(float64(i), float64(2*i)) {
			t.Errorf("%s: point = %v", tt.name, ev.Mouse.Point)
		}
		if ev.Mouse.Timestamp.IsZero() {
			t.Errorf("%s: zero timestamp", tt.name)
		}
	}
}

func TestConvertMouseModifiers(t *testing.T) {
	term := NewTerminalWithScreen(tcell.NewSimulationScreen(""))
	ev := term.Convert(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModShift|tcell.ModAlt))

	m := ev.Mouse.Modifiers
	if !m.HasShift() || !m.HasAlt() || m.HasCtrl() {
		t.Errorf("modifiers = %v, want shift+alt", m)
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModNone), key.NewRuneEvent('v', key.ModNone)},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModShift), key.NewRuneEvent('R', key.ModShift)},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), key.NewSpecialEvent(key.KeySpace, key.ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEscape, key.ModNone)},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl), key.NewSpecialEvent(key.KeyLeft, key.ModCtrl)},
		{"ctrl chord", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), key.NewRuneEvent('q', key.ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertKey(tt.ev)
			if got != tt.want {
				t.Errorf("convertKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvertOther(t *testing.T) {
	term := NewTerminalWithScreen(tcell.NewSimulationScreen(""))

	ev := term.Convert(tcell.NewEventResize(80, 24))
	if ev.Type != EventResize || ev.Width != 80 || ev.Height != 24 {
		t.Errorf("resize = %+v", ev)
	}

	ev = term.Convert(tcell.NewEventInterrupt("reload"))
	if ev.Type != EventInterrupt || ev.Data != "reload" {
		t.Errorf("interrupt = %+v", ev)
	}
}

func TestPostInterrupt(t *testing.T) {
	term, _ := newSimTerminal(t, 20, 10)

	if err := term.PostInterrupt(42); err != nil {
		t.Fatalf("PostInterrupt() error = %v", err)
	}
	for {
		ev, ok := term.PollEvent()
		if !ok {
			t.Fatal("screen closed before interrupt")
		}
		if ev.Type == EventInterrupt {
			if ev.Data != 42 {
				t.Errorf("data = %v, want 42", ev.Data)
			}
			return
		}
	}
}

func cellAt(s tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return r
}

func TestRender(t *testing.T) {
	term, screen := newSimTerminal(t, 40, 12)

	store := scene.NewMemory()
	layer := store.AddLayer()
	rect, _ := store.AddRectangle(layer, geom.RectFromPoints(geom.Pt(2, 2), geom.Pt(8, 5)))
	path, _ := store.AddPath(layer, scene.Path{Segments: []scene.Segment{
		{Point: geom.Pt(20, 2)},
		{Point: geom.Pt(30, 2)},
	}})

	band := geom.RectFromPoints(geom.Pt(1, 7), geom.Pt(5, 9))
	term.Render(View{
		Scene:  store,
		Band:   &band,
		Status: "select",
	})

	checks := []struct {
		name string
		x, y int
		want rune
	}{
		{"rect corner", 2, 2, glyphCorner},
		{"rect edge", 5, 2, glyphHorizontal},
		{"rect side", 2, 4, glyphVertical},
		{"path", 25, 2, glyphCurve},
		{"band", 3, 7, glyphBand},
		{"status", 0, 11, 's'},
		{"empty", 15, 6, ' '},
	}
	for _, c := range checks {
		if got := cellAt(screen, c.x, c.y); got != c.want {
			t.Errorf("%s: cell(%d,%d) = %q, want %q", c.name, c.x, c.y, got, c.want)
		}
	}

	// Selection handles are drawn on top of the selected rectangle.
	term.Render(View{Scene: store, Selection: editor.NewSelection(rect)})
	if got := cellAt(screen, 5, 5); got != glyphBounds {
		t.Errorf("bounds handle = %q, want %q", got, glyphBounds)
	}

	f := editor.NewFocus(path)
	f.SelectedSegments = editor.NewIndexSet(1)
	term.Render(View{Scene: store, Focus: f})

	if got := cellAt(screen, 20, 2); got != glyphAnchor {
		t.Errorf("anchor = %q, want %q", got, glyphAnchor)
	}
	if got := cellAt(screen, 30, 2); got != glyphAnchorSelected {
		t.Errorf("selected anchor = %q, want %q", got, glyphAnchorSelected)
	}
	if got := cellAt(screen, 5, 5); got == glyphBounds {
		t.Error("bounds handles should not be drawn in edit-path mode")
	}
}
