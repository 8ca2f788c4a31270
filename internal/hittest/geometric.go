package hittest

import (
	"math"
	"slices"

	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/scene"
)

// Scene is what Geometric needs from a store: item and path lookup plus the
// layer list.
type Scene interface {
	scene.Store
	Layers() []scene.ItemID
}

// Config holds hit tolerances in scene units.
type Config struct {
	// Tolerance is the pick radius for anchors, handles, outlines and
	// bounds handles.
	Tolerance float64

	// CurveTolerance is the pick radius used by the curves-only probe.
	CurveTolerance float64
}

// DefaultConfig returns tolerances suited to one-unit terminal cells.
func DefaultConfig() Config {
	return Config{
		Tolerance:      1,
		CurveTolerance: 2,
	}
}

// flattenSteps is the number of line pieces per curve for fill tests.
const flattenSteps = 16

// Geometric is an Oracle computed from scene geometry.
type Geometric struct {
	scene  Scene
	config Config
}

// NewGeometric creates an oracle over s.
func NewGeometric(s Scene, config Config) *Geometric {
	return &Geometric{scene: s, config: config}
}

// SetConfig replaces the tolerances.
func (g *Geometric) SetConfig(config Config) {
	g.config = config
}

// SelectionBounds tests the eight handles of the selection's union bounds.
func (g *Geometric) SelectionBounds(p geom.Point, selection []scene.ItemID) Result {
	bounds := geom.EmptyRect
	for _, id := range selection {
		if it, ok := g.scene.Item(id); ok {
			bounds = bounds.Union(it.Bounds)
		}
	}
	if bounds.Empty() {
		return Miss
	}

	for i, h := range bounds.Handles() {
		if h.Distance(p) <= g.config.Tolerance {
			return Result{Kind: KindBounds, ItemID: BoundsItemID, SegmentIndex: i, Point: h}
		}
	}
	return Miss
}

// Items returns the items under p at the query's scope, topmost first.
func (g *Geometric) Items(p geom.Point, q ItemQuery) []Result {
	var candidates []scene.ItemID
	if q.Scope != "" {
		it, ok := g.scene.Item(q.Scope)
		if !ok {
			return nil
		}
		candidates = reversed(it.Children)
	} else {
		layers := g.scene.Layers()
		for i := len(layers) - 1; i >= 0; i-- {
			if it, ok := g.scene.Item(layers[i]); ok {
				candidates = append(candidates, reversed(it.Children)...)
			}
		}
	}

	var hits []Result
	for _, id := range candidates {
		if slices.Contains(q.Exclude, id) {
			continue
		}
		if g.hitsItem(p, id) {
			hits = append(hits, Result{Kind: KindItem, ItemID: id, Point: p})
		}
	}
	return hits
}

// hitsItem tests an item or, for containers, any descendant.
func (g *Geometric) hitsItem(p geom.Point, id scene.ItemID) bool {
	it, ok := g.scene.Item(id)
	if !ok {
		return false
	}

	tol := g.config.Tolerance
	switch it.Kind {
	case scene.KindLayer, scene.KindGroup:
		if !it.Bounds.Expand(tol).Contains(p) {
			return false
		}
		for _, c := range it.Children {
			if g.hitsItem(p, c) {
				return true
			}
		}
		return false
	case scene.KindRectangle:
		return it.Bounds.Expand(tol).Contains(p)
	case scene.KindEllipse:
		return insideEllipse(p, it.Bounds.Expand(tol))
	case scene.KindPath:
		path, ok := g.scene.Path(id)
		if !ok {
			return false
		}
		if _, ok := g.nearestCurve(p, path, tol); ok {
			return true
		}
		if path.SegmentCount() == 1 {
			return path.Segments[0].Point.Distance(p) <= tol
		}
		return path.Filled && insidePath(p, path)
	default:
		return false
	}
}

// PathSegments tests handles first, then anchors. Zero-length handles are
// not hittable.
func (g *Geometric) PathSegments(p geom.Point, id scene.ItemID) Result {
	path, ok := g.scene.Path(id)
	if !ok {
		return Miss
	}

	tol := g.config.Tolerance
	for i, s := range path.Segments {
		if !s.HandleIn.IsZero() && s.Handle(scene.HandleIn).Distance(p) <= tol {
			return Result{Kind: KindHandleIn, ItemID: id, SegmentIndex: i, Point: s.Handle(scene.HandleIn)}
		}
		if !s.HandleOut.IsZero() && s.Handle(scene.HandleOut).Distance(p) <= tol {
			return Result{Kind: KindHandleOut, ItemID: id, SegmentIndex: i, Point: s.Handle(scene.HandleOut)}
		}
	}
	for i, s := range path.Segments {
		if s.Point.Distance(p) <= tol {
			return Result{Kind: KindSegment, ItemID: id, SegmentIndex: i, Point: s.Point}
		}
	}
	return Miss
}

// PathBody tests curves, then stroke, then fill, as enabled by the probe.
// The curves-only probe uses CurveTolerance.
func (g *Geometric) PathBody(p geom.Point, id scene.ItemID, probe Probe) Result {
	path, ok := g.scene.Path(id)
	if !ok {
		return Miss
	}

	tol := g.config.Tolerance
	if probe.CurvesOnly() {
		tol = g.config.CurveTolerance
	}

	if probe.Curves || probe.Stroke {
		if loc, ok := g.nearestCurve(p, path, tol); ok {
			if probe.Curves {
				loc.ItemID = id
				return loc
			}
			return Result{Kind: KindStroke, ItemID: id, Point: loc.Point}
		}
	}
	if probe.Fill && path.Filled && insidePath(p, path) {
		return Result{Kind: KindFill, ItemID: id, Point: p}
	}
	return Miss
}

// nearestCurve finds the closest curve within tol.
func (g *Geometric) nearestCurve(p geom.Point, path scene.Path, tol float64) (Result, bool) {
	best := Result{}
	bestD := math.Inf(1)
	for i := range path.CurveCount() {
		c := path.Curve(i)
		if !c.Bounds().Expand(tol).Contains(p) {
			continue
		}
		if d, t := c.Nearest(p); d < bestD {
			bestD = d
			best = Result{Kind: KindCurve, CurveIndex: i, Time: t, Point: c.Eval(t)}
		}
	}
	if bestD > tol*tol {
		return Miss, false
	}
	return best, true
}

// Intersecting returns the top-level items whose bounds meet r.
func (g *Geometric) Intersecting(r geom.Rect) []scene.ItemID {
	var ids []scene.ItemID
	for _, layer := range g.scene.Layers() {
		it, ok := g.scene.Item(layer)
		if !ok {
			continue
		}
		for _, c := range it.Children {
			if child, ok := g.scene.Item(c); ok && child.Bounds.Intersects(r) {
				ids = append(ids, c)
			}
		}
	}
	return ids
}

func insideEllipse(p geom.Point, r geom.Rect) bool {
	rx, ry := r.Width()/2, r.Height()/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	c := r.Center()
	dx, dy := (p.X-c.X)/rx, (p.Y-c.Y)/ry
	return dx*dx+dy*dy <= 1
}

// insidePath runs an even-odd test against the flattened outline. Open
// paths are closed implicitly, as fills are.
func insidePath(p geom.Point, path scene.Path) bool {
	n := path.SegmentCount()
	if n < 3 {
		return false
	}

	var poly []geom.Point
	closing := path
	closing.Closed = true
	for i := range closing.CurveCount() {
		c := closing.Curve(i)
		for s := range flattenSteps {
			poly = append(poly, c.Eval(float64(s)/flattenSteps))
		}
	}

	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

func reversed(ids []scene.ItemID) []scene.ItemID {
	out := slices.Clone(ids)
	slices.Reverse(out)
	return out
}
