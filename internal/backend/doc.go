// Package backend connects the gesture dispatcher to a terminal through
// tcell.
//
// Terminal converts tcell events into pointer and key events. tcell reports
// button state rather than transitions, so Terminal remembers the last
// button mask and derives press, drag, release and move from it. One cell
// is one scene unit.
//
// Render draws a View of the scene: shapes as outlines, the focused path's
// anchors and handles, the selection's bound handles, the rubber band and
// a status line.
package backend
