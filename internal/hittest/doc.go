// Package hittest defines the hit-test oracle the gesture selector queries
// and a geometric reference implementation.
//
// The oracle answers four kinds of question:
//
//   - SelectionBounds: is the point on a handle of the selection's bounding box?
//   - Items: which scene items lie under the point, topmost first?
//   - PathSegments: is the point on an anchor or handle of a path?
//   - PathBody: is the point on a curve, the stroke or the fill of a path?
//
// Every answer is a Result whose Kind tag says which payload fields are
// meaningful. Callers switch on the tag.
//
// Geometric is deliberately approximate: shapes are tested against their
// outlines with a tolerance, and paths are flattened for fill tests. Exact
// rendering geometry is out of scope.
package hittest
