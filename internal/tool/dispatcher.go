package tool

import (
	"fmt"
	"log/slog"

	"github.com/dshills/penstroke/internal/editor"
	"github.com/dshills/penstroke/internal/gesture"
	"github.com/dshills/penstroke/internal/hittest"
	"github.com/dshills/penstroke/internal/input/key"
	"github.com/dshills/penstroke/internal/input/mouse"
	"github.com/dshills/penstroke/internal/scene"
)

// ChangeCallback is called when the current gesture changes.
type ChangeCallback func(from, to gesture.Variant)

// Dispatcher runs the Idle/Active gesture state machine.
//
// Dispatcher is not safe for concurrent use; it must be driven from a single
// event loop.
type Dispatcher struct {
	state    editor.State
	oracle   hittest.Oracle
	mutator  scene.Mutator
	selector *Selector
	registry *gesture.Registry
	clicks   *mouse.ClickDetector
	logger   *slog.Logger

	current gesture.Gesture
	active  bool
	fault   error

	callbacks []ChangeCallback
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithRegistry sets the gesture registry. The default is
// gesture.DefaultRegistry().
func WithRegistry(r *gesture.Registry) Option {
	return func(d *Dispatcher) {
		if r != nil {
			d.registry = r
		}
	}
}

// WithClickConfig sets the double-click thresholds.
func WithClickConfig(c mouse.ClickConfig) Option {
	return func(d *Dispatcher) {
		d.clicks.SetConfig(c)
	}
}

// WithHitPolicy sets the scene hit policy.
func WithHitPolicy(p HitPolicy) Option {
	return func(d *Dispatcher) {
		d.selector.SetPolicy(p)
	}
}

// WithMutator sets the scene mutator handed to gestures. By default the
// state's scene store is used when it implements scene.Mutator.
func WithMutator(m scene.Mutator) Option {
	return func(d *Dispatcher) {
		d.mutator = m
	}
}

// NewDispatcher creates an idle dispatcher with Hover as current gesture.
func NewDispatcher(state editor.State, oracle hittest.Oracle, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		state:    state,
		oracle:   oracle,
		selector: NewSelector(state, oracle, PreferUnselected),
		registry: gesture.DefaultRegistry(),
		clicks:   mouse.NewClickDetector(mouse.DefaultClickConfig()),
		logger:   slog.New(slog.DiscardHandler),
	}
	if m, ok := state.Scene().(scene.Mutator); ok {
		d.mutator = m
	}
	for _, opt := range opts {
		opt(d)
	}
	d.current = d.newHover()
	return d
}

// Current returns the gesture receiving events: the active gesture, or
// Hover while idle.
func (d *Dispatcher) Current() gesture.Gesture {
	return d.current
}

// Active reports whether a gesture owns the event stream.
func (d *Dispatcher) Active() bool {
	return d.active
}

// Fault returns the fatal fault, if any.
func (d *Dispatcher) Fault() error {
	return d.fault
}

// SetClickConfig replaces the double-click thresholds.
func (d *Dispatcher) SetClickConfig(c mouse.ClickConfig) {
	d.clicks.SetConfig(c)
}

// SetHitPolicy replaces the scene hit policy.
func (d *Dispatcher) SetHitPolicy(p HitPolicy) {
	d.selector.SetPolicy(p)
}

// OnChange registers a callback for gesture changes.
// Returns a function to unregister the callback.
func (d *Dispatcher) OnChange(cb ChangeCallback) func() {
	d.callbacks = append(d.callbacks, cb)
	index := len(d.callbacks) - 1

	return func() {
		if index < len(d.callbacks) {
			d.callbacks[index] = nil
		}
	}
}

// HandleMouse processes one pointer event.
//
// A press selects and starts a gesture; drags and moves go to the current
// gesture; a release is forwarded to the active gesture, after which the
// dispatcher is idle again whatever the gesture returned. Errors wrapping
// ErrInvariant are fatal.
func (d *Dispatcher) HandleMouse(ev mouse.Event) error {
	if d.fault != nil {
		return fmt.Errorf("%w: %w", ErrFaulted, d.fault)
	}
	d.clicks.Record(ev)

	switch ev.Action {
	case mouse.ActionPress:
		return d.press(ev)

	case mouse.ActionDrag:
		if !d.active {
			return nil
		}
		return d.forward(d.current, d.current.OnMouseDrag(ev))

	case mouse.ActionMove:
		return d.forward(d.current, d.current.OnMouseMove(ev))

	case mouse.ActionRelease:
		if !d.active {
			return nil
		}
		g := d.current
		err := g.OnMouseUp(ev)
		d.setCurrent(d.newHover(), false)
		return d.forward(g, err)
	}
	return nil
}

// HandleKey forwards a key event to the current gesture.
func (d *Dispatcher) HandleKey(ev key.Event) error {
	if d.fault != nil {
		return fmt.Errorf("%w: %w", ErrFaulted, d.fault)
	}
	if ev.Action == key.ActionRelease {
		return d.forward(d.current, d.current.OnKeyUp(ev))
	}
	return d.forward(d.current, d.current.OnKeyDown(ev))
}

func (d *Dispatcher) press(ev mouse.Event) error {
	if d.active {
		return d.fail(fmt.Errorf("%w (current %s)", ErrGestureActive, d.current.Variant().Kind()))
	}

	double := d.clicks.IsDoubleClick()
	v, err := d.selector.Select(ev, double)
	if err != nil {
		return d.fail(err)
	}

	g, err := d.registry.New(v, d.env(v))
	if err != nil {
		return d.fail(err)
	}
	d.setCurrent(g, true)
	d.logger.Debug("gesture start", "kind", v.Kind().String(), "point", ev.Point.String(), "double", double)

	return d.forward(g, g.OnMouseDown(ev))
}

func (d *Dispatcher) env(v gesture.Variant) gesture.Env {
	return gesture.Env{
		State:   d.state,
		Oracle:  d.oracle,
		Mutator: d.mutator,
		Logger:  d.logger.With("gesture", v.Kind().String()),
	}
}

func (d *Dispatcher) newHover() gesture.Gesture {
	v := gesture.Hover{}
	g, err := d.registry.New(v, d.env(v))
	if err != nil {
		d.logger.Warn("hover gesture unavailable", "error", err)
		return gesture.NewPassive(v)
	}
	return g
}

func (d *Dispatcher) setCurrent(g gesture.Gesture, active bool) {
	from := d.current
	d.current = g
	d.active = active

	if from == nil {
		return
	}
	if !active {
		d.logger.Debug("gesture end", "kind", from.Variant().Kind().String())
	}
	for _, cb := range d.callbacks {
		if cb != nil {
			cb(from.Variant(), g.Variant())
		}
	}
}

// forward returns a gesture error as a non-fatal error.
func (d *Dispatcher) forward(g gesture.Gesture, err error) error {
	if err == nil {
		return nil
	}
	d.logger.Warn("gesture error", "kind", g.Variant().Kind().String(), "error", err)
	return fmt.Errorf("gesture: %w", err)
}

func (d *Dispatcher) fail(err error) error {
	d.fault = err
	d.logger.Error("dispatcher fault", "error", err)
	return err
}
