package scene

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/penstroke/internal/geom"
)

// node is the stored form of an item.
type node struct {
	id       ItemID
	parent   ItemID
	children []ItemID
	kind     ItemKind
	bounds   geom.Rect // shapes only; containers and paths derive theirs
	path     *Path
}

// Memory is an in-memory scene store. It implements Store and Mutator.
type Memory struct {
	mu sync.RWMutex

	nodes  map[ItemID]*node
	layers []ItemID
	active ItemID

	// newID generates IDs for created and cloned items.
	newID func() ItemID
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithIDGenerator replaces the UUID generator, which keeps IDs stable in
// tests.
func WithIDGenerator(gen func() ItemID) MemoryOption {
	return func(m *Memory) {
		if gen != nil {
			m.newID = gen
		}
	}
}

// NewMemory creates an empty store.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		nodes: make(map[ItemID]*node),
		newID: func() ItemID { return ItemID(uuid.NewString()) },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddLayer appends a layer on top of the existing ones. The first layer
// becomes the active layer.
func (m *Memory) AddLayer() ItemID {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.newID()
	m.nodes[id] = &node{id: id, kind: KindLayer}
	m.layers = append(m.layers, id)
	if m.active == "" {
		m.active = id
	}
	return id
}

// SetActiveLayer selects the layer CreatePath adds to.
func (m *Memory) SetActiveLayer(id ItemID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[id]
	if !ok || n.kind != KindLayer {
		return fmt.Errorf("layer %s: %w", id, ErrNotFound)
	}
	m.active = id
	return nil
}

// ActiveLayer returns the layer CreatePath adds to.
func (m *Memory) ActiveLayer() ItemID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// Layers returns the layer IDs, bottom first.
func (m *Memory) Layers() []ItemID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.layers)
}

// AddGroup adds an empty group on top of parent's children.
func (m *Memory) AddGroup(parent ItemID) (ItemID, error) {
	return m.add(parent, &node{kind: KindGroup})
}

// AddRectangle adds a rectangle shape.
func (m *Memory) AddRectangle(parent ItemID, bounds geom.Rect) (ItemID, error) {
	return m.add(parent, &node{kind: KindRectangle, bounds: bounds})
}

// AddEllipse adds an ellipse inscribed in bounds.
func (m *Memory) AddEllipse(parent ItemID, bounds geom.Rect) (ItemID, error) {
	return m.add(parent, &node{kind: KindEllipse, bounds: bounds})
}

// AddPath adds a path with the given geometry.
func (m *Memory) AddPath(parent ItemID, p Path) (ItemID, error) {
	cp := p.Clone()
	return m.add(parent, &node{kind: KindPath, path: &cp})
}

// CreatePath adds a new empty path to the active layer.
func (m *Memory) CreatePath() (ItemID, error) {
	m.mu.RLock()
	active := m.active
	m.mu.RUnlock()

	if active == "" {
		return "", ErrNoLayer
	}
	return m.AddPath(active, Path{})
}

func (m *Memory) add(parent ItemID, n *node) (ItemID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.nodes[parent]
	if !ok {
		return "", fmt.Errorf("parent %s: %w", parent, ErrNotFound)
	}
	if !p.kind.IsContainer() {
		return "", fmt.Errorf("parent %s is a %s, not a container", parent, p.kind)
	}

	n.id = m.newID()
	n.parent = parent
	m.nodes[n.id] = n
	p.children = append(p.children, n.id)
	return n.id, nil
}

// Item returns a snapshot of an item.
func (m *Memory) Item(id ItemID) (Item, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, ok := m.nodes[id]
	if !ok {
		return Item{}, false
	}
	return Item{
		ID:       n.id,
		Parent:   n.parent,
		Children: slices.Clone(n.children),
		Kind:     n.kind,
		Bounds:   m.boundsLocked(n),
	}, true
}

// Path returns a copy of a path item's geometry.
func (m *Memory) Path(id ItemID) (Path, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, ok := m.nodes[id]
	if !ok || n.path == nil {
		return Path{}, false
	}
	return n.path.Clone(), true
}

// SetPath replaces a path item's geometry.
func (m *Memory) SetPath(id ItemID, p Path) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[id]
	if !ok {
		return fmt.Errorf("path %s: %w", id, ErrNotFound)
	}
	if n.path == nil {
		return fmt.Errorf("item %s: %w", id, ErrNotPath)
	}
	cp := p.Clone()
	n.path = &cp
	return nil
}

// boundsLocked derives an item's bounds (must hold lock).
func (m *Memory) boundsLocked(n *node) geom.Rect {
	switch {
	case n.path != nil:
		return n.path.Bounds()
	case n.kind.IsContainer():
		r := geom.EmptyRect
		for _, c := range n.children {
			if child, ok := m.nodes[c]; ok {
				r = r.Union(m.boundsLocked(child))
			}
		}
		return r
	default:
		return n.bounds
	}
}

// Walk visits every item above the layers in hit-test order: topmost
// first, children before their container. Returning false stops the walk.
func (m *Memory) Walk(fn func(Item) bool) {
	m.mu.RLock()
	layers := slices.Clone(m.layers)
	m.mu.RUnlock()

	for i := len(layers) - 1; i >= 0; i-- {
		if !m.walkFrom(layers[i], fn) {
			return
		}
	}
}

// WalkChildren is Walk restricted to the subtree below id. The item itself
// is not visited.
func (m *Memory) WalkChildren(id ItemID, fn func(Item) bool) {
	it, ok := m.Item(id)
	if !ok {
		return
	}
	for i := len(it.Children) - 1; i >= 0; i-- {
		if !m.walkFrom(it.Children[i], fn) {
			return
		}
	}
}

func (m *Memory) walkFrom(id ItemID, fn func(Item) bool) bool {
	it, ok := m.Item(id)
	if !ok {
		return true
	}
	for i := len(it.Children) - 1; i >= 0; i-- {
		if !m.walkFrom(it.Children[i], fn) {
			return false
		}
	}
	if it.Kind == KindLayer {
		return true
	}
	return fn(it)
}

// Translate moves items and their subtrees.
func (m *Memory) Translate(ids []ItemID, delta geom.Point) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range ids {
		n, ok := m.nodes[id]
		if !ok {
			return fmt.Errorf("translate %s: %w", id, ErrNotFound)
		}
		m.translateLocked(n, delta)
	}
	return nil
}

func (m *Memory) translateLocked(n *node, delta geom.Point) {
	switch {
	case n.path != nil:
		n.path.Translate(delta)
	case n.kind.IsContainer():
		for _, c := range n.children {
			if child, ok := m.nodes[c]; ok {
				m.translateLocked(child, delta)
			}
		}
	default:
		n.bounds = n.bounds.Translate(delta)
	}
}

// Clone duplicates items directly above their originals.
func (m *Memory) Clone(ids []ItemID) ([]ItemID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	clones := make([]ItemID, 0, len(ids))
	for _, id := range ids {
		n, ok := m.nodes[id]
		if !ok {
			return clones, fmt.Errorf("clone %s: %w", id, ErrNotFound)
		}
		if n.kind == KindLayer {
			return clones, fmt.Errorf("clone %s: layers cannot be cloned", id)
		}

		cp := m.cloneLocked(n, n.parent)
		parent := m.nodes[n.parent]
		idx := slices.Index(parent.children, id)
		parent.children = slices.Insert(parent.children, idx+1, cp)
		clones = append(clones, cp)
	}
	return clones, nil
}

func (m *Memory) cloneLocked(n *node, parent ItemID) ItemID {
	cp := &node{
		id:     m.newID(),
		parent: parent,
		kind:   n.kind,
		bounds: n.bounds,
	}
	if n.path != nil {
		p := n.path.Clone()
		cp.path = &p
	}
	for _, c := range n.children {
		if child, ok := m.nodes[c]; ok {
			cp.children = append(cp.children, m.cloneLocked(child, cp.id))
		}
	}
	m.nodes[cp.id] = cp
	return cp.id
}

// MoveHandle moves one handle of a path segment.
func (m *Memory) MoveHandle(id ItemID, segment int, side HandleSide, delta geom.Point) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[id]
	if !ok {
		return fmt.Errorf("path %s: %w", id, ErrNotFound)
	}
	if n.path == nil {
		return fmt.Errorf("item %s: %w", id, ErrNotPath)
	}
	if segment < 0 || segment >= len(n.path.Segments) {
		return fmt.Errorf("segment %d of %s: %w", segment, id, ErrSegmentRange)
	}

	seg := &n.path.Segments[segment]
	if side == HandleOut {
		seg.HandleOut = seg.HandleOut.Add(delta)
	} else {
		seg.HandleIn = seg.HandleIn.Add(delta)
	}
	return nil
}
