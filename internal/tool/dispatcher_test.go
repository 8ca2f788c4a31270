package tool

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dshills/penstroke/internal/editor"
	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/gesture"
	"github.com/dshills/penstroke/internal/hittest"
	"github.com/dshills/penstroke/internal/input/key"
	"github.com/dshills/penstroke/internal/input/mouse"
	"github.com/dshills/penstroke/internal/scene"
)

func kindOf(d *Dispatcher) gesture.Kind {
	return d.Current().Variant().Kind()
}

func TestDispatcherStartsIdle(t *testing.T) {
	d := NewDispatcher(editor.NewMemory(newFakeStore()), newFakeOracle())
	if d.Active() {
		t.Error("new dispatcher is active")
	}
	if kindOf(d) != gesture.KindHover {
		t.Errorf("Current() = %v, want hover", kindOf(d))
	}
}

func TestDispatcherAlternation(t *testing.T) {
	state := editor.NewMemory(newFakeStore())
	d := NewDispatcher(state, newFakeOracle())

	steps := []struct {
		ev         mouse.Event
		wantActive bool
		wantKind   gesture.Kind
	}{
		{mouse.Move(geom.Pt(1, 1), key.ModNone), false, gesture.KindHover},
		{mouse.Drag(geom.Pt(2, 2), key.ModNone), false, gesture.KindHover},
		{mouse.Release(geom.Pt(2, 2), key.ModNone), false, gesture.KindHover},
		{mouse.Press(geom.Pt(0, 0), key.ModNone), true, gesture.KindBatchSelectItems},
		{mouse.Drag(geom.Pt(5, 5), key.ModNone), true, gesture.KindBatchSelectItems},
		{mouse.Move(geom.Pt(6, 6), key.ModNone), true, gesture.KindBatchSelectItems},
		{mouse.Release(geom.Pt(6, 6), key.ModNone), false, gesture.KindHover},
		{mouse.Move(geom.Pt(7, 7), key.ModNone), false, gesture.KindHover},
	}

	for i, s := range steps {
		if err := d.HandleMouse(s.ev); err != nil {
			t.Fatalf("step %d (%v): %v", i, s.ev.Action, err)
		}
		if d.Active() != s.wantActive {
			t.Errorf("step %d (%v): Active() = %v, want %v", i, s.ev.Action, d.Active(), s.wantActive)
		}
		if kindOf(d) != s.wantKind {
			t.Errorf("step %d (%v): Current() = %v, want %v", i, s.ev.Action, kindOf(d), s.wantKind)
		}
	}
}

func TestDispatcherForwardsToActiveGestureOnly(t *testing.T) {
	var rec *recorder
	var hovers []*recorder

	reg := gesture.DefaultRegistry()
	reg.Register(gesture.KindHover, func(v gesture.Variant, _ gesture.Env) (gesture.Gesture, error) {
		h := newRecorder(v)
		hovers = append(hovers, h)
		return h, nil
	})
	reg.Register(gesture.KindBatchSelectItems, func(v gesture.Variant, _ gesture.Env) (gesture.Gesture, error) {
		rec = newRecorder(v)
		return rec, nil
	})

	d := NewDispatcher(editor.NewMemory(newFakeStore()), newFakeOracle(), WithRegistry(reg))

	events := []mouse.Event{
		mouse.Move(geom.Pt(1, 1), key.ModNone),
		mouse.Press(geom.Pt(0, 0), key.ModNone),
		mouse.Drag(geom.Pt(1, 0), key.ModNone),
		mouse.Move(geom.Pt(2, 0), key.ModNone),
		mouse.Drag(geom.Pt(3, 0), key.ModNone),
		mouse.Release(geom.Pt(3, 0), key.ModNone),
		mouse.Move(geom.Pt(4, 0), key.ModNone),
	}
	for _, ev := range events {
		if err := d.HandleMouse(ev); err != nil {
			t.Fatal(err)
		}
	}
	_ = d.HandleKey(key.NewRuneEvent('x', key.ModNone))
	_ = d.HandleKey(key.NewRuneEvent('x', key.ModNone).Released())

	if got := strings.Join(rec.events, ","); got != "down,drag,move,drag,up" {
		t.Errorf("active gesture events = %s", got)
	}
	if len(hovers) != 2 {
		t.Fatalf("hover gestures built = %d, want 2", len(hovers))
	}
	if got := strings.Join(hovers[0].events, ","); got != "move" {
		t.Errorf("first hover events = %s", got)
	}
	if got := strings.Join(hovers[1].events, ","); got != "move,keydown,keyup" {
		t.Errorf("second hover events = %s", got)
	}
}

func TestDispatcherKeysGoToActiveGesture(t *testing.T) {
	var rec *recorder
	reg := gesture.DefaultRegistry()
	reg.Register(gesture.KindBatchSelectItems, func(v gesture.Variant, _ gesture.Env) (gesture.Gesture, error) {
		rec = newRecorder(v)
		return rec, nil
	})
	d := NewDispatcher(editor.NewMemory(newFakeStore()), newFakeOracle(), WithRegistry(reg))

	_ = d.HandleMouse(mouse.Press(geom.Pt(0, 0), key.ModNone))
	_ = d.HandleKey(key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	_ = d.HandleMouse(mouse.Release(geom.Pt(0, 0), key.ModNone))

	if got := strings.Join(rec.events, ","); got != "down,keydown,up" {
		t.Errorf("events = %s", got)
	}
}

func TestDispatcherPressWhileActiveIsFatal(t *testing.T) {
	d := NewDispatcher(editor.NewMemory(newFakeStore()), newFakeOracle())

	if err := d.HandleMouse(mouse.Press(geom.Pt(0, 0), key.ModNone)); err != nil {
		t.Fatal(err)
	}
	err := d.HandleMouse(mouse.Press(geom.Pt(1, 1), key.ModNone))
	if !errors.Is(err, ErrGestureActive) || !errors.Is(err, ErrInvariant) {
		t.Fatalf("second press error = %v, want ErrGestureActive", err)
	}
	if !errors.Is(d.Fault(), ErrGestureActive) {
		t.Errorf("Fault() = %v", d.Fault())
	}

	err = d.HandleMouse(mouse.Release(geom.Pt(1, 1), key.ModNone))
	if !errors.Is(err, ErrFaulted) || !errors.Is(err, ErrGestureActive) {
		t.Errorf("event after fault error = %v, want ErrFaulted wrapping the fault", err)
	}
	if err := d.HandleKey(key.NewRuneEvent('a', key.ModNone)); !errors.Is(err, ErrFaulted) {
		t.Errorf("key after fault error = %v, want ErrFaulted", err)
	}
}

func TestDispatcherUnresolvedFocusIsFatal(t *testing.T) {
	store := newFakeStore()
	store.createBare = true
	state := editor.NewMemory(store)
	state.SetEditPathFocus(editor.NewFocus(""))

	d := NewDispatcher(state, newFakeOracle())
	err := d.HandleMouse(mouse.Press(geom.Pt(0, 0), key.ModNone))
	if !errors.Is(err, ErrFocusUnresolved) {
		t.Fatalf("HandleMouse() error = %v, want ErrFocusUnresolved", err)
	}
	if d.Active() {
		t.Error("dispatcher became active after a fault")
	}
	if err := d.HandleMouse(mouse.Move(geom.Pt(0, 0), key.ModNone)); !errors.Is(err, ErrFaulted) {
		t.Errorf("move after fault error = %v", err)
	}
}

func TestDispatcherGestureErrorIsNotFatal(t *testing.T) {
	boom := errors.New("boom")
	reg := gesture.DefaultRegistry()
	reg.Register(gesture.KindBatchSelectItems, func(v gesture.Variant, _ gesture.Env) (gesture.Gesture, error) {
		r := newRecorder(v)
		r.downErr = boom
		return r, nil
	})

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := NewDispatcher(editor.NewMemory(newFakeStore()), newFakeOracle(), WithRegistry(reg), WithLogger(logger))

	if err := d.HandleMouse(mouse.Press(geom.Pt(0, 0), key.ModNone)); !errors.Is(err, boom) {
		t.Fatalf("HandleMouse() error = %v, want boom", err)
	}
	if d.Fault() != nil || !d.Active() {
		t.Fatalf("gesture error faulted the dispatcher: %v", d.Fault())
	}
	if err := d.HandleMouse(mouse.Release(geom.Pt(0, 0), key.ModNone)); err != nil {
		t.Fatal(err)
	}
	if d.Active() {
		t.Error("release did not end the gesture")
	}
	if !strings.Contains(logs.String(), "kind=batch-select-items") {
		t.Errorf("log does not name the gesture:\n%s", logs.String())
	}
}

func TestDispatcherOnChange(t *testing.T) {
	d := NewDispatcher(editor.NewMemory(newFakeStore()), newFakeOracle())

	var got []string
	unregister := d.OnChange(func(from, to gesture.Variant) {
		got = append(got, from.Kind().String()+">"+to.Kind().String())
	})

	_ = d.HandleMouse(mouse.Press(geom.Pt(0, 0), key.ModNone))
	_ = d.HandleMouse(mouse.Release(geom.Pt(0, 0), key.ModNone))

	want := "hover>batch-select-items,batch-select-items>hover"
	if strings.Join(got, ",") != want {
		t.Errorf("changes = %v, want %s", got, want)
	}

	unregister()
	_ = d.HandleMouse(mouse.Press(geom.Pt(0, 0), key.ModNone))
	if len(got) != 2 {
		t.Error("unregistered callback was called")
	}
}

// Empty selection, press on nothing at (0,0), drag, release at (50,50).
func TestScenarioBandSelection(t *testing.T) {
	store := newFakeStore()
	store.addLeaf("a")
	store.addLeaf("b")
	state := editor.NewMemory(store)

	oracle := newFakeOracle()
	oracle.band = []scene.ItemID{"a", "b"}

	d := NewDispatcher(state, oracle)

	if err := d.HandleMouse(mouse.Press(geom.Pt(0, 0), key.ModNone)); err != nil {
		t.Fatal(err)
	}
	if kindOf(d) != gesture.KindBatchSelectItems {
		t.Fatalf("Current() = %v, want batch-select-items", kindOf(d))
	}

	band := d.Current().(*gesture.BatchSelectItemsGesture)
	_ = d.HandleMouse(mouse.Drag(geom.Pt(20, 30), key.ModNone))
	if want := geom.RectFromPoints(geom.Pt(0, 0), geom.Pt(20, 30)); band.Band() != want {
		t.Errorf("Band() after drag = %v, want %v", band.Band(), want)
	}
	_ = d.HandleMouse(mouse.Drag(geom.Pt(50, 50), key.ModNone))

	if err := d.HandleMouse(mouse.Release(geom.Pt(50, 50), key.ModNone)); err != nil {
		t.Fatal(err)
	}

	if len(oracle.bandRects) != 1 {
		t.Fatalf("Intersecting called %d times, want 1", len(oracle.bandRects))
	}
	if want := geom.RectFromPoints(geom.Pt(0, 0), geom.Pt(50, 50)); oracle.bandRects[0] != want {
		t.Errorf("band = %v, want %v", oracle.bandRects[0], want)
	}
	if !state.Selection().Equal(editor.NewSelection("a", "b")) {
		t.Errorf("selection = %v, want [a b]", state.Selection().IDs())
	}
	if d.Active() || kindOf(d) != gesture.KindHover {
		t.Errorf("after release: Active() = %v, Current() = %v", d.Active(), kindOf(d))
	}
}

// Edit-path mode on a three-segment path, command-press on curve 1 at t=0.5.
func TestScenarioMouldCurve(t *testing.T) {
	store := newFakeStore()
	store.paths["p"] = threeSegmentPath()
	state := editor.NewMemory(store)
	state.SetEditPathFocus(editor.NewFocus("p"))

	oracle := newFakeOracle()
	oracle.body[bodyProbe] = hittest.Result{Kind: hittest.KindCurve, ItemID: "p", CurveIndex: 1, Time: 0.5}

	d := NewDispatcher(state, oracle)
	if err := d.HandleMouse(mouse.Press(geom.Pt(15, 0), key.ModCtrl)); err != nil {
		t.Fatal(err)
	}

	want := gesture.MouldCurve{Curve: 1, Time: 0.5}
	if got := d.Current().Variant(); got != want {
		t.Errorf("Current().Variant() = %#v, want %#v", got, want)
	}
}

func TestDispatcherDoubleClickEntersEditPath(t *testing.T) {
	store := newFakeStore()
	store.addPath("a", threeSegmentPath())
	state := editor.NewMemory(store)
	state.SetSelection(editor.NewSelection("x", "y"))

	oracle := newFakeOracle()
	oracle.items = []hittest.Result{itemHit("a")}

	d := NewDispatcher(state, oracle, WithClickConfig(mouse.ClickConfig{MaxTime: time.Second, MaxDistance: 4}))
	t0 := time.Now()
	p := geom.Pt(5, 5)

	_ = d.HandleMouse(mouse.Press(p, key.ModNone).At(t0))
	_ = d.HandleMouse(mouse.Release(p, key.ModNone).At(t0.Add(50 * time.Millisecond)))
	if err := d.HandleMouse(mouse.Press(p, key.ModNone).At(t0.Add(100 * time.Millisecond))); err != nil {
		t.Fatal(err)
	}

	if got := d.Current().Variant(); got != (gesture.EditPath{Item: "a"}) {
		t.Fatalf("Current().Variant() = %#v, want EditPath{a}", got)
	}
	focus := state.EditPathFocus()
	if focus == nil || focus.LayerID != "a" {
		t.Fatalf("focus = %+v, want layer a", focus)
	}
	if !state.Selection().Equal(editor.NewSelection("a")) {
		t.Errorf("selection = %v, want [a]", state.Selection().IDs())
	}
}

// Double clicks on shapes without path geometry must leave the dispatcher
// usable for the presses that follow.
func TestDispatcherDoubleClickOnShape(t *testing.T) {
	tests := []struct {
		name  string
		add   func(s *scene.Memory, layer scene.ItemID) (scene.ItemID, error)
		point geom.Point
	}{
		{
			name: "rectangle",
			add: func(s *scene.Memory, layer scene.ItemID) (scene.ItemID, error) {
				return s.AddRectangle(layer, geom.RectFromPoints(geom.Pt(4, 2), geom.Pt(16, 8)))
			},
			point: geom.Pt(10, 5),
		},
		{
			name: "ellipse",
			add: func(s *scene.Memory, layer scene.ItemID) (scene.ItemID, error) {
				return s.AddEllipse(layer, geom.RectFromPoints(geom.Pt(30, 3), geom.Pt(46, 11)))
			},
			point: geom.Pt(38, 7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := scene.NewMemory()
			layer := store.AddLayer()
			id, err := tt.add(store, layer)
			if err != nil {
				t.Fatal(err)
			}
			state := editor.NewMemory(store)
			oracle := hittest.NewGeometric(store, hittest.DefaultConfig())

			d := NewDispatcher(state, oracle, WithClickConfig(mouse.ClickConfig{MaxTime: time.Second, MaxDistance: 4}))
			t0 := time.Now()

			events := []mouse.Event{
				mouse.Press(tt.point, key.ModNone).At(t0),
				mouse.Release(tt.point, key.ModNone).At(t0.Add(50 * time.Millisecond)),
				mouse.Press(tt.point, key.ModNone).At(t0.Add(100 * time.Millisecond)),
			}
			for _, ev := range events {
				if err := d.HandleMouse(ev); err != nil {
					t.Fatalf("%v: %v", ev.Action, err)
				}
			}

			if got := d.Current().Variant(); got != (gesture.SelectDragCloneItems{Item: id}) {
				t.Errorf("double click built %#v, want SelectDragCloneItems{%s}", got, id)
			}
			if state.EditPathFocus() != nil {
				t.Errorf("focus = %+v, want none", state.EditPathFocus())
			}

			later := []mouse.Event{
				mouse.Release(tt.point, key.ModNone).At(t0.Add(150 * time.Millisecond)),
				mouse.Press(geom.Pt(0, 0), key.ModNone).At(t0.Add(2 * time.Second)),
				mouse.Release(geom.Pt(0, 0), key.ModNone).At(t0.Add(2 * time.Second)),
				mouse.Move(geom.Pt(1, 1), key.ModNone),
			}
			for _, ev := range later {
				if err := d.HandleMouse(ev); err != nil {
					t.Fatalf("%v after double click: %v", ev.Action, err)
				}
			}
			if d.Fault() != nil {
				t.Errorf("Fault() = %v, want nil", d.Fault())
			}
		})
	}
}

func TestDispatcherSlowSecondPressIsSingleClick(t *testing.T) {
	store := newFakeStore()
	store.addLeaf("a")
	state := editor.NewMemory(store)

	oracle := newFakeOracle()
	oracle.items = []hittest.Result{itemHit("a")}

	d := NewDispatcher(state, oracle)
	t0 := time.Now()
	p := geom.Pt(5, 5)

	_ = d.HandleMouse(mouse.Press(p, key.ModNone).At(t0))
	_ = d.HandleMouse(mouse.Release(p, key.ModNone).At(t0))
	_ = d.HandleMouse(mouse.Press(p, key.ModNone).At(t0.Add(time.Second)))

	if got := d.Current().Variant(); got != (gesture.SelectDragCloneItems{Item: "a"}) {
		t.Errorf("Current().Variant() = %#v, want SelectDragCloneItems{a}", got)
	}
}

func TestDispatcherDoubleClickMissOnEmptyPathDraws(t *testing.T) {
	store := newFakeStore()
	store.paths["p"] = scene.Path{}
	state := editor.NewMemory(store)
	state.SetEditPathFocus(editor.NewFocus("p"))

	d := NewDispatcher(state, newFakeOracle())
	t0 := time.Now()
	p := geom.Pt(5, 5)

	_ = d.HandleMouse(mouse.Press(p, key.ModNone).At(t0))
	_ = d.HandleMouse(mouse.Release(p, key.ModNone).At(t0))
	_ = d.HandleMouse(mouse.Press(p, key.ModNone).At(t0.Add(10 * time.Millisecond)))

	want := gesture.SelectDragDrawSegments{Entry: gesture.EntryMiss}
	if got := d.Current().Variant(); got != want {
		t.Errorf("Current().Variant() = %#v, want %#v", got, want)
	}
}

func TestDispatcherHitPolicyOption(t *testing.T) {
	store := newFakeStore()
	store.addLeaf("a")
	store.addLeaf("b")
	state := editor.NewMemory(store)
	state.SetSelection(editor.NewSelection("a"))

	oracle := newFakeOracle()
	oracle.items = []hittest.Result{itemHit("a"), itemHit("b")}

	reg := gesture.NewRegistry()
	d := NewDispatcher(state, oracle, WithRegistry(reg), WithHitPolicy(Topmost))
	_ = d.HandleMouse(mouse.Press(geom.Pt(0, 0), key.ModNone))
	if got := d.Current().Variant(); got != (gesture.SelectDragCloneItems{Item: "a"}) {
		t.Errorf("Topmost: %#v", got)
	}
	_ = d.HandleMouse(mouse.Release(geom.Pt(0, 0), key.ModNone))

	d.SetHitPolicy(PreferUnselected)
	_ = d.HandleMouse(mouse.Press(geom.Pt(50, 50), key.ModNone))
	if got := d.Current().Variant(); got != (gesture.SelectDragCloneItems{Item: "b"}) {
		t.Errorf("PreferUnselected: %#v", got)
	}
}
