package tool

import (
	"fmt"
	"slices"

	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/gesture"
	"github.com/dshills/penstroke/internal/hittest"
	"github.com/dshills/penstroke/internal/input/key"
	"github.com/dshills/penstroke/internal/input/mouse"
	"github.com/dshills/penstroke/internal/scene"
)

// fakeStore is a scene.Store over fixed maps.
type fakeStore struct {
	items map[scene.ItemID]scene.Item
	paths map[scene.ItemID]scene.Path

	created    []scene.ItemID
	createErr  error
	createBare bool // CreatePath returns an id with no path behind it
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items: make(map[scene.ItemID]scene.Item),
		paths: make(map[scene.ItemID]scene.Path),
	}
}

func (s *fakeStore) Item(id scene.ItemID) (scene.Item, bool) {
	it, ok := s.items[id]
	return it, ok
}

func (s *fakeStore) Path(id scene.ItemID) (scene.Path, bool) {
	p, ok := s.paths[id]
	return p, ok
}

func (s *fakeStore) CreatePath() (scene.ItemID, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	id := scene.ItemID(fmt.Sprintf("new-%d", len(s.created)+1))
	s.created = append(s.created, id)
	if !s.createBare {
		s.paths[id] = scene.Path{}
		s.items[id] = scene.Item{ID: id, Kind: scene.KindPath}
	}
	return id, nil
}

func (s *fakeStore) addLeaf(id scene.ItemID) {
	s.items[id] = scene.Item{ID: id, Kind: scene.KindRectangle}
}

func (s *fakeStore) addShape(id scene.ItemID, kind scene.ItemKind) {
	s.items[id] = scene.Item{ID: id, Kind: kind}
}

func (s *fakeStore) addPath(id scene.ItemID, p scene.Path) {
	s.items[id] = scene.Item{ID: id, Kind: scene.KindPath}
	s.paths[id] = p
}

func (s *fakeStore) addGroup(id scene.ItemID, children ...scene.ItemID) {
	s.items[id] = scene.Item{ID: id, Kind: scene.KindGroup, Children: children}
	for _, c := range children {
		s.addLeaf(c)
	}
}

// threeSegmentPath is an open path with two curves.
func threeSegmentPath() scene.Path {
	return scene.Path{Segments: []scene.Segment{
		{Point: geom.Pt(0, 0)},
		{Point: geom.Pt(10, 0)},
		{Point: geom.Pt(20, 0)},
	}}
}

// fakeOracle returns scripted results and records every query.
type fakeOracle struct {
	bounds   hittest.Result
	items    []hittest.Result
	scoped   map[scene.ItemID][]hittest.Result
	segments hittest.Result
	body     map[hittest.Probe]hittest.Result
	band     []scene.ItemID

	calls       []string
	probes      []hittest.Probe
	segmentPath []scene.ItemID
	queries     []hittest.ItemQuery
	bandRects   []geom.Rect
}

func newFakeOracle() *fakeOracle {
	return &fakeOracle{
		scoped: make(map[scene.ItemID][]hittest.Result),
		body:   make(map[hittest.Probe]hittest.Result),
	}
}

func (o *fakeOracle) SelectionBounds(geom.Point, []scene.ItemID) hittest.Result {
	o.calls = append(o.calls, "bounds")
	return o.bounds
}

func (o *fakeOracle) Items(_ geom.Point, q hittest.ItemQuery) []hittest.Result {
	o.calls = append(o.calls, "items")
	o.queries = append(o.queries, q)

	hits := o.items
	if q.Scope != "" {
		hits = o.scoped[q.Scope]
	}
	var out []hittest.Result
	for _, h := range hits {
		if !slices.Contains(q.Exclude, h.ItemID) {
			out = append(out, h)
		}
	}
	return out
}

func (o *fakeOracle) PathSegments(_ geom.Point, path scene.ItemID) hittest.Result {
	o.calls = append(o.calls, "segments")
	o.segmentPath = append(o.segmentPath, path)
	return o.segments
}

func (o *fakeOracle) PathBody(_ geom.Point, _ scene.ItemID, probe hittest.Probe) hittest.Result {
	o.calls = append(o.calls, "body")
	o.probes = append(o.probes, probe)
	return o.body[probe]
}

func (o *fakeOracle) Intersecting(r geom.Rect) []scene.ItemID {
	o.calls = append(o.calls, "intersecting")
	o.bandRects = append(o.bandRects, r)
	return o.band
}

func itemHit(id scene.ItemID) hittest.Result {
	return hittest.Result{Kind: hittest.KindItem, ItemID: id}
}

// recorder is a gesture that logs the events it receives.
type recorder struct {
	*gesture.Passive
	events  []string
	downErr error
}

func newRecorder(v gesture.Variant) *recorder {
	return &recorder{Passive: gesture.NewPassive(v)}
}

func (r *recorder) OnMouseDown(ev mouse.Event) error {
	r.events = append(r.events, "down")
	return r.downErr
}

func (r *recorder) OnMouseDrag(ev mouse.Event) error {
	r.events = append(r.events, "drag")
	return nil
}

func (r *recorder) OnMouseMove(ev mouse.Event) error {
	r.events = append(r.events, "move")
	return nil
}

func (r *recorder) OnMouseUp(ev mouse.Event) error {
	r.events = append(r.events, "up")
	return nil
}

func (r *recorder) OnKeyDown(ev key.Event) error {
	r.events = append(r.events, "keydown")
	return nil
}

func (r *recorder) OnKeyUp(ev key.Event) error {
	r.events = append(r.events, "keyup")
	return nil
}
