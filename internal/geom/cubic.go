package geom

// Cubic is a cubic Bézier curve.
type Cubic struct {
	P0, P1, P2, P3 Point
}

// Eval returns the point at parameter t in [0, 1].
func (c Cubic) Eval(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Bounds returns the bounding box of the control polygon, which contains
// the curve.
func (c Cubic) Bounds() Rect {
	return RectFromPoints(c.P0, c.P3).
		Union(RectFromPoints(c.P1, c.P1)).
		Union(RectFromPoints(c.P2, c.P2))
}

// nearestSamples is the number of uniform samples taken before refining.
const nearestSamples = 32

// Nearest returns the squared distance from pt to the curve and the
// parameter of the closest point. It samples uniformly and then refines by
// bisection around the best sample, which is accurate enough for hit
// testing at interactive tolerances.
func (c Cubic) Nearest(pt Point) (distSq, t float64) {
	best := 0.0
	bestD := pt.DistanceSq(c.P0)
	for i := 1; i <= nearestSamples; i++ {
		ti := float64(i) / nearestSamples
		if d := pt.DistanceSq(c.Eval(ti)); d < bestD {
			best, bestD = ti, d
		}
	}

	step := 1.0 / nearestSamples
	for range 16 {
		step /= 2
		lo, hi := best-step, best+step
		if lo >= 0 {
			if d := pt.DistanceSq(c.Eval(lo)); d < bestD {
				best, bestD = lo, d
				continue
			}
		}
		if hi <= 1 {
			if d := pt.DistanceSq(c.Eval(hi)); d < bestD {
				best, bestD = hi, d
			}
		}
	}
	return bestD, best
}
