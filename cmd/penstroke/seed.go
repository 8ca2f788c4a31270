package main

import (
	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/scene"
)

// seedScene fills a store with a starter drawing: a group of two
// rectangles, an ellipse and an open three-segment path on one layer.
func seedScene(s *scene.Memory) error {
	layer := s.AddLayer()

	group, err := s.AddGroup(layer)
	if err != nil {
		return err
	}
	if _, err := s.AddRectangle(group, geom.RectFromPoints(geom.Pt(4, 2), geom.Pt(16, 8))); err != nil {
		return err
	}
	if _, err := s.AddRectangle(group, geom.RectFromPoints(geom.Pt(10, 5), geom.Pt(24, 12))); err != nil {
		return err
	}
	if _, err := s.AddEllipse(layer, geom.RectFromPoints(geom.Pt(30, 3), geom.Pt(46, 11))); err != nil {
		return err
	}
	_, err = s.AddPath(layer, scene.Path{Segments: []scene.Segment{
		{Point: geom.Pt(6, 18), HandleOut: geom.Pt(6, -4)},
		{Point: geom.Pt(24, 18), HandleIn: geom.Pt(-6, 4), HandleOut: geom.Pt(6, 4)},
		{Point: geom.Pt(42, 18), HandleIn: geom.Pt(-6, -4)},
	}})
	return err
}
