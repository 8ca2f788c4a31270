package gesture

import (
	"log/slog"

	"github.com/dshills/penstroke/internal/editor"
	"github.com/dshills/penstroke/internal/hittest"
	"github.com/dshills/penstroke/internal/input/key"
	"github.com/dshills/penstroke/internal/input/mouse"
	"github.com/dshills/penstroke/internal/scene"
)

// Gesture owns one press-to-release interaction cycle.
type Gesture interface {
	// Variant returns the decision this gesture was built from.
	Variant() Variant

	OnMouseDown(ev mouse.Event) error
	OnMouseDrag(ev mouse.Event) error
	OnMouseMove(ev mouse.Event) error
	OnMouseUp(ev mouse.Event) error

	OnKeyDown(ev key.Event) error
	OnKeyUp(ev key.Event) error
}

// Env is what a gesture may read and mutate.
type Env struct {
	State  editor.State
	Oracle hittest.Oracle

	// Mutator edits scene geometry. Gestures that move or clone items do
	// nothing when it is nil.
	Mutator scene.Mutator

	// Logger may be nil.
	Logger *slog.Logger
}

// Log returns the environment logger, or a discarding one.
func (e Env) Log() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// Passive is a gesture that tracks the pointer and does nothing else.
// Built-in gestures embed it and override the events they care about.
type Passive struct {
	variant Variant
	drag    mouse.DragTracker
}

// NewPassive returns a Passive gesture for v.
func NewPassive(v Variant) *Passive {
	return &Passive{variant: v}
}

// Variant returns the decision this gesture was built from.
func (p *Passive) Variant() Variant { return p.variant }

// Drag returns the drag tracker.
func (p *Passive) Drag() *mouse.DragTracker { return &p.drag }

// OnMouseDown starts drag tracking.
func (p *Passive) OnMouseDown(ev mouse.Event) error {
	p.drag.Start(ev.Point)
	return nil
}

// OnMouseDrag updates drag tracking.
func (p *Passive) OnMouseDrag(ev mouse.Event) error {
	p.drag.Update(ev.Point)
	return nil
}

// OnMouseMove is a no-op.
func (p *Passive) OnMouseMove(mouse.Event) error { return nil }

// OnMouseUp ends drag tracking.
func (p *Passive) OnMouseUp(ev mouse.Event) error {
	p.drag.Update(ev.Point)
	p.drag.End()
	return nil
}

// OnKeyDown is a no-op.
func (p *Passive) OnKeyDown(key.Event) error { return nil }

// OnKeyUp is a no-op.
func (p *Passive) OnKeyUp(key.Event) error { return nil }
