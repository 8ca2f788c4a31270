// Package geom provides the small amount of 2D geometry the gesture core
// needs: points, axis-aligned rectangles and cubic Bézier curves.
//
// Coordinates are in scene units. The terminal host maps one cell to one
// unit, so the helpers stay in float64 and leave rounding to callers.
package geom
