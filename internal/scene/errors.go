package scene

import "errors"

// Errors returned by scene stores.
var (
	// ErrNotFound indicates the item ID is unknown.
	ErrNotFound = errors.New("item not found")

	// ErrNotPath indicates a path operation on an item without path geometry.
	ErrNotPath = errors.New("item is not a path")

	// ErrSegmentRange indicates a segment index outside the path.
	ErrSegmentRange = errors.New("segment index out of range")

	// ErrNoLayer indicates an operation that needs an active layer.
	ErrNoLayer = errors.New("no active layer")
)
