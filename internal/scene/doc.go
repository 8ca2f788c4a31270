// Package scene defines the vector scene the gesture core reads and the
// in-memory store used by the demo host and by tests.
//
// The gesture core only depends on the Store interface: item lookup, path
// geometry lookup and creation of an empty path when edit-path mode starts
// a brand new path. Gestures that edit geometry additionally use Mutator
// when the store provides it.
//
// Items form a tree. Layers are roots, groups and layers have children,
// and shapes (paths, rectangles, ellipses) are leaves. Children are kept in
// paint order, bottom first.
package scene
