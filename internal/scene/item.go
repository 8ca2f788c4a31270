package scene

import "github.com/dshills/penstroke/internal/geom"

// ItemID identifies a scene item. The empty ID means "no item".
type ItemID string

// ItemKind is the type of a scene item.
type ItemKind uint8

const (
	// KindLayer is a top-level container.
	KindLayer ItemKind = iota
	// KindGroup is a nested container.
	KindGroup
	// KindPath is a free-form Bézier path.
	KindPath
	// KindRectangle is an axis-aligned rectangle shape.
	KindRectangle
	// KindEllipse is an ellipse inscribed in its bounds.
	KindEllipse
)

// String returns the kind name.
func (k ItemKind) String() string {
	switch k {
	case KindLayer:
		return "layer"
	case KindGroup:
		return "group"
	case KindPath:
		return "path"
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// IsContainer returns true for kinds that may hold children.
func (k ItemKind) IsContainer() bool {
	return k == KindLayer || k == KindGroup
}

// Item is a snapshot of one scene item.
type Item struct {
	ID       ItemID
	Parent   ItemID
	Children []ItemID
	Kind     ItemKind
	Bounds   geom.Rect
}

// HasChildren returns true if the item contains other items.
func (it Item) HasChildren() bool {
	return len(it.Children) > 0
}

// Store is the read side of the scene plus the single mutation the gesture
// selector performs itself.
type Store interface {
	// Item returns a snapshot of the item with the given ID.
	Item(id ItemID) (Item, bool)

	// Path returns a copy of the path geometry of a path item.
	Path(id ItemID) (Path, bool)

	// CreatePath adds a new empty path to the active layer and returns its ID.
	CreatePath() (ItemID, error)
}

// Mutator is implemented by stores that let gestures edit geometry.
type Mutator interface {
	// Translate moves every listed item (and its subtree) by delta.
	Translate(ids []ItemID, delta geom.Point) error

	// Clone duplicates every listed item above the original and returns the
	// new IDs in the same order.
	Clone(ids []ItemID) ([]ItemID, error)

	// MoveHandle moves one handle of a path segment by delta.
	MoveHandle(id ItemID, segment int, side HandleSide, delta geom.Point) error
}

// Builder is implemented by stores that let gestures add new shapes.
type Builder interface {
	// ActiveLayer returns the layer new shapes go to, or "" if none.
	ActiveLayer() ItemID

	AddRectangle(parent ItemID, bounds geom.Rect) (ItemID, error)
	AddEllipse(parent ItemID, bounds geom.Rect) (ItemID, error)
	AddPath(parent ItemID, p Path) (ItemID, error)
}
