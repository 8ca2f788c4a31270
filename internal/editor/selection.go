package editor

import (
	"slices"

	"github.com/dshills/penstroke/internal/scene"
)

// Selection is an ordered set of item IDs. The zero value is empty.
type Selection struct {
	ids []scene.ItemID
}

// NewSelection builds a selection, dropping duplicates and empty IDs.
func NewSelection(ids ...scene.ItemID) Selection {
	var s Selection
	for _, id := range ids {
		s = s.With(id)
	}
	return s
}

// Len returns the number of selected items.
func (s Selection) Len() int {
	return len(s.ids)
}

// Empty returns true if nothing is selected.
func (s Selection) Empty() bool {
	return len(s.ids) == 0
}

// Contains reports whether id is selected.
func (s Selection) Contains(id scene.ItemID) bool {
	return slices.Contains(s.ids, id)
}

// IDs returns a copy of the selected IDs in selection order.
func (s Selection) IDs() []scene.ItemID {
	return slices.Clone(s.ids)
}

// With returns a selection that also contains id.
func (s Selection) With(id scene.ItemID) Selection {
	if id == "" || s.Contains(id) {
		return s
	}
	return Selection{ids: append(slices.Clone(s.ids), id)}
}

// Without returns a selection that does not contain id.
func (s Selection) Without(id scene.ItemID) Selection {
	i := slices.Index(s.ids, id)
	if i < 0 {
		return s
	}
	return Selection{ids: slices.Delete(slices.Clone(s.ids), i, i+1)}
}

// Equal reports whether both selections hold the same IDs in the same order.
func (s Selection) Equal(o Selection) bool {
	return slices.Equal(s.ids, o.ids)
}
