package mouse

import (
	"time"

	"github.com/dshills/penstroke/internal/geom"
)

// ClickConfig configures multi-click detection.
type ClickConfig struct {
	// MaxTime is the maximum time between presses of one sequence.
	MaxTime time.Duration

	// MaxDistance is the maximum Manhattan distance between presses of one
	// sequence, in scene units.
	MaxDistance float64
}

// DefaultClickConfig returns the default double-click window.
func DefaultClickConfig() ClickConfig {
	return ClickConfig{
		MaxTime:     400 * time.Millisecond,
		MaxDistance: 4,
	}
}

// ClickDetector tracks press patterns for double/triple click detection.
type ClickDetector struct {
	config ClickConfig

	// Last press state
	lastPos    geom.Point
	lastTime   time.Time
	lastButton Button
	lastCount  int
}

// NewClickDetector creates a new click detector.
func NewClickDetector(config ClickConfig) *ClickDetector {
	return &ClickDetector{config: config}
}

// SetConfig replaces the timing window. The current sequence is kept.
func (d *ClickDetector) SetConfig(config ClickConfig) {
	d.config = config
}

// Record observes a pointer event. Presses advance or restart the click
// sequence; every other action is ignored. Click count wraps back to 1
// after 3 (quad-click = single click). A zero timestamp is replaced with
// time.Now().
func (d *ClickDetector) Record(ev Event) {
	if ev.Action != ActionPress {
		return
	}

	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	if d.isPartOfSequence(ev.Point, ev.Button, ts) {
		d.lastCount++
		if d.lastCount > 3 {
			d.lastCount = 1
		}
	} else {
		d.lastCount = 1
	}

	d.lastPos = ev.Point
	d.lastTime = ts
	d.lastButton = ev.Button
}

// isPartOfSequence checks if a press continues the current sequence.
func (d *ClickDetector) isPartOfSequence(pos geom.Point, button Button, ts time.Time) bool {
	if d.lastCount == 0 || d.lastTime.IsZero() {
		return false
	}
	if button != d.lastButton {
		return false
	}

	// Handle clock skew: a negative elapsed time starts a new sequence
	elapsed := ts.Sub(d.lastTime)
	if elapsed < 0 || elapsed > d.config.MaxTime {
		return false
	}

	return pos.Manhattan(d.lastPos) <= d.config.MaxDistance
}

// IsDoubleClick reports whether the most recently recorded press was the
// second press of a sequence. It is only meaningful right after Record was
// called with that press.
func (d *ClickDetector) IsDoubleClick() bool {
	return d.lastCount == int(ClickDouble)
}

// ClickType returns the classification of the most recent press.
func (d *ClickDetector) ClickType() ClickType {
	return ClickType(d.lastCount)
}

// Reset clears the click tracking state.
func (d *ClickDetector) Reset() {
	d.lastCount = 0
	d.lastTime = time.Time{}
	d.lastPos = geom.Point{}
	d.lastButton = ButtonNone
}

// ClickType represents the type of click detected.
type ClickType uint8

const (
	// ClickNone means no press has been recorded.
	ClickNone ClickType = 0
	// ClickSingle is a single click.
	ClickSingle ClickType = 1
	// ClickDouble is a double click.
	ClickDouble ClickType = 2
	// ClickTriple is a triple click.
	ClickTriple ClickType = 3
)

// String returns a string representation of the click type.
func (c ClickType) String() string {
	switch c {
	case ClickSingle:
		return "single"
	case ClickDouble:
		return "double"
	case ClickTriple:
		return "triple"
	default:
		return "none"
	}
}
