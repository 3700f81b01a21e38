package internal

import "math"

// Two points closer than Epsilon are the same point. This is deliberately coarse:
// input comes from finger strokes in display units, and intersection points
// computed in floating point must land on the vertices they were derived from.
const Epsilon = 0.1

// Tolerance is for comparing raw floats (slopes, deltas), not positions.
const Tolerance = 1e-6

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func Distance(a, b Point) float64 {
	return b.vec().Sub(a.vec()).Norm()
}

// Fuzzy point equality. This is not transitive, so it must never be used as a
// map key directly. See VertexIndex for canonicalization.
func (p Point) Equals(other Point) bool {
	return Distance(p, other) < Epsilon
}

// Order sensitive: a segment and its reverse are different segments.
func (s Segment) Equals(other Segment) bool {
	return s.Start.Equals(other.Start) && s.End.Equals(other.End)
}

func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

// Lerp returns the point at parameter t along the segment.
func (s Segment) Lerp(t float64) Point {
	return Point{
		X: s.Start.X + t*(s.End.X-s.Start.X),
		Y: s.Start.Y + t*(s.End.Y-s.Start.Y),
	}
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Shoelace sum over a closed loop. With screen coordinates (y pointing down), a
// positive value means the loop runs clockwise on screen.
func SignedArea(points []Point) float64 {
	var area float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}
