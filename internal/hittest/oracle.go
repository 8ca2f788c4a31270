package hittest

import (
	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/scene"
)

// Probe selects which parts of a path body PathBody tests.
type Probe struct {
	Fill   bool
	Stroke bool
	Curves bool
}

// CurvesOnly reports whether the probe is the curve-precision fallback.
func (p Probe) CurvesOnly() bool {
	return p.Curves && !p.Fill && !p.Stroke
}

// ItemQuery narrows an Items query.
type ItemQuery struct {
	// Scope limits the query to the children of one container. Empty means
	// the children of every layer.
	Scope scene.ItemID

	// Exclude lists items that are never reported.
	Exclude []scene.ItemID
}

// Oracle answers hit-test questions for the gesture selector.
type Oracle interface {
	// SelectionBounds tests the handles of the selection's bounding box.
	SelectionBounds(p geom.Point, selection []scene.ItemID) Result

	// Items returns every item under p at the query's scope, topmost first.
	// A container is reported when any of its descendants is hit.
	Items(p geom.Point, q ItemQuery) []Result

	// PathSegments tests the anchors and handles of a path.
	PathSegments(p geom.Point, path scene.ItemID) Result

	// PathBody tests the body of a path with the given probe.
	PathBody(p geom.Point, path scene.ItemID, probe Probe) Result

	// Intersecting returns the top-level items whose bounds meet r.
	Intersecting(r geom.Rect) []scene.ItemID
}
