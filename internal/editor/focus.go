package editor

import (
	"maps"
	"slices"

	"github.com/dshills/penstroke/internal/scene"
)

// IndexSet is a set of segment indices.
type IndexSet map[int]struct{}

// NewIndexSet builds a set from indices.
func NewIndexSet(indices ...int) IndexSet {
	s := make(IndexSet, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Sorted returns the members in ascending order.
func (s IndexSet) Sorted() []int {
	return slices.Sorted(maps.Keys(s))
}

// Only returns the single member of a one-element set.
func (s IndexSet) Only() (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	for i := range s {
		return i, true
	}
	return 0, false
}

// Focus describes the path under edit in edit-path mode.
type Focus struct {
	// LayerID is the path being edited. Empty means a new path will be
	// created by the next press.
	LayerID scene.ItemID

	SelectedSegments  IndexSet
	VisibleHandleIns  IndexSet
	VisibleHandleOuts IndexSet

	// SelectedHandleIn and SelectedHandleOut hold the segment index of the
	// selected handle, if any.
	SelectedHandleIn  *int
	SelectedHandleOut *int
}

// NewFocus returns a focus on the given path with nothing selected.
func NewFocus(layer scene.ItemID) *Focus {
	return &Focus{
		LayerID:           layer,
		SelectedSegments:  IndexSet{},
		VisibleHandleIns:  IndexSet{},
		VisibleHandleOuts: IndexSet{},
	}
}

// Clone returns a deep copy. Cloning nil returns nil.
func (f *Focus) Clone() *Focus {
	if f == nil {
		return nil
	}
	cp := &Focus{
		LayerID:           f.LayerID,
		SelectedSegments:  maps.Clone(f.SelectedSegments),
		VisibleHandleIns:  maps.Clone(f.VisibleHandleIns),
		VisibleHandleOuts: maps.Clone(f.VisibleHandleOuts),
	}
	if cp.SelectedSegments == nil {
		cp.SelectedSegments = IndexSet{}
	}
	if cp.VisibleHandleIns == nil {
		cp.VisibleHandleIns = IndexSet{}
	}
	if cp.VisibleHandleOuts == nil {
		cp.VisibleHandleOuts = IndexSet{}
	}
	if f.SelectedHandleIn != nil {
		v := *f.SelectedHandleIn
		cp.SelectedHandleIn = &v
	}
	if f.SelectedHandleOut != nil {
		v := *f.SelectedHandleOut
		cp.SelectedHandleOut = &v
	}
	return cp
}

// SelectHandle makes one handle the selected handle and clears the other.
func (f *Focus) SelectHandle(segment int, side scene.HandleSide) {
	idx := segment
	if side == scene.HandleOut {
		f.SelectedHandleOut = &idx
		f.SelectedHandleIn = nil
	} else {
		f.SelectedHandleIn = &idx
		f.SelectedHandleOut = nil
	}
}

// ClearHandleSelection deselects any handle.
func (f *Focus) ClearHandleSelection() {
	f.SelectedHandleIn = nil
	f.SelectedHandleOut = nil
}
