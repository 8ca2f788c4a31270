package mouse

import (
	"testing"
	"time"

	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/input/key"
)

func TestNames(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{ButtonNone.String(), "none"},
		{ButtonLeft.String(), "left"},
		{ButtonRight.String(), "right"},
		{Button(9).String(), "Button(9)"},
		{ActionPress.String(), "press"},
		{ActionRelease.String(), "release"},
		{ActionMove.String(), "move"},
		{ActionDrag.String(), "drag"},
		{Action(9).String(), "Action(9)"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestEventConstructors(t *testing.T) {
	p := geom.Pt(3, 4)
	tests := []struct {
		ev     Event
		action Action
		button Button
	}{
		{Press(p, key.ModShift), ActionPress, ButtonLeft},
		{Drag(p, key.ModShift), ActionDrag, ButtonLeft},
		{Release(p, key.ModShift), ActionRelease, ButtonLeft},
		{Move(p, key.ModShift), ActionMove, ButtonNone},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			if tt.ev.Action != tt.action || tt.ev.Button != tt.button {
				t.Errorf("event = %v/%v, want %v/%v", tt.ev.Action, tt.ev.Button, tt.action, tt.button)
			}
			if tt.ev.Point != p || !tt.ev.Modifiers.HasShift() || tt.ev.Timestamp.IsZero() {
				t.Errorf("event = %+v", tt.ev)
			}
		})
	}

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if got := Press(p, key.ModNone).At(ts).Timestamp; !got.Equal(ts) {
		t.Errorf("At() timestamp = %v, want %v", got, ts)
	}
}

func press(x, y float64, ts time.Time) Event {
	return Press(geom.Pt(x, y), key.ModNone).At(ts)
}

func TestClickDetectorSingleClick(t *testing.T) {
	d := NewClickDetector(DefaultClickConfig())

	d.Record(press(100, 100, time.Now()))
	if d.IsDoubleClick() {
		t.Error("first press should not be a double click")
	}
	if d.ClickType() != ClickSingle {
		t.Errorf("ClickType() = %v, want single", d.ClickType())
	}
}

func TestClickDetectorDoubleClick(t *testing.T) {
	d := NewClickDetector(DefaultClickConfig())
	now := time.Now()

	d.Record(press(100, 100, now))
	d.Record(Release(geom.Pt(100, 100), key.ModNone).At(now.Add(50 * time.Millisecond)))
	d.Record(press(101, 100, now.Add(100*time.Millisecond)))

	if !d.IsDoubleClick() {
		t.Errorf("second nearby press within window should be a double click, got %v", d.ClickType())
	}
}

func TestClickDetectorTripleAndWrap(t *testing.T) {
	d := NewClickDetector(DefaultClickConfig())
	now := time.Now()

	want := []ClickType{ClickSingle, ClickDouble, ClickTriple, ClickSingle}
	for i, w := range want {
		d.Record(press(10, 10, now.Add(time.Duration(i)*100*time.Millisecond)))
		if got := d.ClickType(); got != w {
			t.Errorf("press %d: ClickType() = %v, want %v", i+1, got, w)
		}
	}
}

func TestClickDetectorSequenceBreaks(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name   string
		second Event
	}{
		{"timeout", press(100, 100, now.Add(500*time.Millisecond))},
		{"distance", press(200, 200, now.Add(100*time.Millisecond))},
		{"clock skew", press(100, 100, now.Add(-100*time.Millisecond))},
		{"other button", Event{Point: geom.Pt(100, 100), Button: ButtonRight, Action: ActionPress, Timestamp: now.Add(100 * time.Millisecond)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewClickDetector(DefaultClickConfig())
			d.Record(press(100, 100, now))
			d.Record(tt.second)
			if d.IsDoubleClick() {
				t.Error("sequence should have restarted")
			}
		})
	}
}

func TestClickDetectorIgnoresNonPress(t *testing.T) {
	d := NewClickDetector(DefaultClickConfig())
	d.Record(Move(geom.Pt(1, 1), key.ModNone))
	d.Record(Drag(geom.Pt(2, 2), key.ModNone))
	if d.ClickType() != ClickNone {
		t.Errorf("ClickType() = %v, want none", d.ClickType())
	}
}

func TestClickDetectorReset(t *testing.T) {
	d := NewClickDetector(DefaultClickConfig())
	now := time.Now()

	d.Record(press(5, 5, now))
	d.Reset()
	d.Record(press(5, 5, now.Add(50*time.Millisecond)))
	if d.IsDoubleClick() {
		t.Error("press after Reset should start a new sequence")
	}
}

func TestClickDetectorZeroTimestamp(t *testing.T) {
	d := NewClickDetector(DefaultClickConfig())

	d.Record(press(100, 100, time.Time{}))
	if d.ClickType() != ClickSingle {
		t.Errorf("ClickType() = %v, want single", d.ClickType())
	}

	// The first press used time.Now() as a fallback, so a fixed past time
	// reads as clock skew.
	d.Record(press(100, 100, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
	if d.IsDoubleClick() {
		t.Error("press long before the previous one should not be a double click")
	}
}

func TestDragTracker(t *testing.T) {
	var tracker DragTracker

	if tracker.Active() {
		t.Error("zero tracker should not be active")
	}
	if d := tracker.Update(geom.Pt(5, 5)); !d.IsZero() {
		t.Errorf("Update before Start = %v, want zero", d)
	}

	tracker.Start(geom.Pt(100, 100))
	if !tracker.Active() || tracker.Dragged() {
		t.Error("tracker should be active and not dragged after Start")
	}

	if d := tracker.Update(geom.Pt(150, 120)); d != geom.Pt(50, 20) {
		t.Errorf("first Update delta = %v, want (50,20)", d)
	}
	if d := tracker.Update(geom.Pt(151, 120)); d != geom.Pt(1, 0) {
		t.Errorf("second Update delta = %v, want (1,0)", d)
	}
	if !tracker.Dragged() {
		t.Error("tracker should report a drag")
	}
	if tracker.Delta() != geom.Pt(51, 20) {
		t.Errorf("Delta() = %v, want (51,20)", tracker.Delta())
	}

	r := tracker.Rect()
	if r.Min != geom.Pt(100, 100) || r.Max != geom.Pt(151, 120) {
		t.Errorf("Rect() = %v", r)
	}

	tracker.End()
	if tracker.Active() {
		t.Error("tracker should not be active after End")
	}
	if tracker.StartPoint() != geom.Pt(100, 100) {
		t.Error("End should keep the start point")
	}
}
