package internal

import "math"

// The geometry kernel. Everything in here is a pure function of its arguments.
//
// The kernel works in floating point with the fixed Epsilon tolerance rather
// than exact predicates. Collinear overlapping segments are not detected as
// intersecting.

// Containment on the closed segment. The point must be within Epsilon of the
// line through the segment (cross product, normalized by length), and its
// projection must fall between the endpoints (dot product in [0, squared
// length]). The projection range has no slack: the face tracer relies on the
// point behind a segment's start being rejected even for tiny probe circles.
func (s Segment) Contains(p Point) bool {
	if s.IsDegenerate() {
		return p.Equals(s.Start)
	}

	d := s.End.vec().Sub(s.Start.vec())
	v := p.vec().Sub(s.Start.vec())
	if math.Abs(d.Cross(v)) > Epsilon*d.Norm() {
		return false
	}
	dot := d.Dot(v)
	return dot >= 0 && dot <= d.Dot(d)
}

// A segment whose endpoints are the same point.
func (s Segment) IsDegenerate() bool {
	return s.Start.Equals(s.End)
}

// Parametric segment/segment intersection. With a = p1->p2 and b = p3->p4:
//
//	tA = ((y3-y4)(x1-x3) + (x4-x3)(y1-y3)) / ((x4-x3)(y1-y2) - (x1-x2)(y4-y3))
//	tB = ((y1-y2)(x1-x3) + (x2-x1)(y1-y3)) / ((x4-x3)(y1-y2) - (x1-x2)(y4-y3))
//
// The intersection is reported only when both parameters are in [0, 1], so
// segments touching at an endpoint do intersect. A zero denominator means the
// segments are parallel or collinear, which is reported as no intersection.
//
// The denominator is the cross product of the two directions, so "zero" is
// judged relative to their lengths. Pieces split off the same stroke are
// collinear up to rounding, and an absolute test would let them "cross" at
// arbitrary points.
func IntersectSegments(a, b Segment) (Point, bool) {
	x1, y1 := a.Start.X, a.Start.Y
	x2, y2 := a.End.X, a.End.Y
	x3, y3 := b.Start.X, b.Start.Y
	x4, y4 := b.End.X, b.End.Y

	denominator := (x4-x3)*(y1-y2) - (x1-x2)*(y4-y3)
	if math.Abs(denominator) <= Tolerance*a.Length()*b.Length() {
		return Point{}, false
	}

	tA := ((y3-y4)*(x1-x3) + (x4-x3)*(y1-y3)) / denominator
	tB := ((y1-y2)*(x1-x3) + (x2-x1)*(y1-y3)) / denominator
	if tA < 0 || tA > 1 || tB < 0 || tB > 1 {
		return Point{}, false
	}
	return a.Lerp(tA), true
}

// Segment/circle intersection. The line through the segment, y = mx + c, is
// substituted into the circle equation (x-p)^2 + (y-q)^2 = r^2, which gives
//
//	(m^2 + 1)x^2 + 2(mc - mq - p)x + (q^2 - r^2 + p^2 - 2cq + c^2) = 0
//
// Every real root is turned back into a point, and points off the segment are
// dropped. The result has zero, one or two points.
//
// A vertical segment has no slope, so for it we substitute x = k instead and
// solve (y-q)^2 = r^2 - (k-p)^2 with the same quadratic solver. Degenerate
// segments never intersect anything.
func IntersectCircle(s Segment, circle Circle) []Point {
	if s.IsDegenerate() {
		return nil
	}
	p, q, r := circle.Center.X, circle.Center.Y, circle.Radius

	var candidates []Point
	dx := s.End.X - s.Start.X
	if Equal(dx, 0) {
		k := s.Start.X
		rest := r*r - (k-p)*(k-p)
		for _, y := range SolveQuadratic(1, -2*q, q*q-rest) {
			candidates = append(candidates, Point{X: k, Y: y})
		}
	} else {
		m := (s.End.Y - s.Start.Y) / dx
		c := s.Start.Y - m*s.Start.X
		a := m*m + 1
		b := 2 * (m*c - m*q - p)
		cc := q*q - r*r + p*p - 2*c*q + c*c
		for _, x := range SolveQuadratic(a, b, cc) {
			candidates = append(candidates, Point{X: x, Y: m*x + c})
		}
	}

	var result []Point
	for _, candidate := range candidates {
		if s.Contains(candidate) {
			result = append(result, candidate)
		}
	}
	return result
}
