package internal

import "sort"

// Rotational ordering without trigonometry. Points are compared relative to the
// center:
//
//  1. Points on the right half plane (x >= 0) come before points on the left.
//  2. Two points on the vertical through the center are ordered by y.
//  3. Otherwise the sign of the cross product of the two center relative vectors
//     decides.
//  4. Points on the same ray from the center are ordered farthest first.
//
// That is clockwise in Cartesian coordinates, starting from twelve o'clock. The
// display has y pointing down, which mirrors the plane, so the result is reversed
// to get clockwise as seen on screen.
func OrderClockwise(points []Point, center Point) []Point {
	ordered := make([]Point, len(points))
	copy(ordered, points)
	sortClockwise(ordered, center)
	return ordered
}

func sortClockwise(points []Point, center Point) {
	sort.SliceStable(points, func(i, j int) bool {
		return clockwiseLess(points[i], points[j], center)
	})
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

func clockwiseLess(a, b, center Point) bool {
	u := a.vec().Sub(center.vec())
	v := b.vec().Sub(center.vec())

	if u.X >= 0 && v.X < 0 {
		return true
	}
	if u.X < 0 && v.X >= 0 {
		return false
	}
	if u.X == 0 && v.X == 0 {
		if u.Y >= 0 || v.Y >= 0 {
			return u.Y > v.Y
		}
		return v.Y > u.Y
	}

	det := u.Cross(v)
	if det < 0 {
		return true
	}
	if det > 0 {
		return false
	}

	// Same ray, so the farther point goes first
	return u.Dot(u) > v.Dot(v)
}

// ClosestClockwiseNeighbor orders the candidates together with the pivot around
// the center and returns the point right after the pivot, wrapping around. The
// pivot may already be among the candidates. There is no neighbor when fewer
// than two distinct points take part.
func ClosestClockwiseNeighbor(pivot Point, candidates []Point, center Point) (Point, bool) {
	i := closestClockwiseIndex(pivot, candidates, center)
	if i < 0 {
		return Point{}, false
	}
	return candidates[i], true
}

// Same as ClosestClockwiseNeighbor, but returns the index into candidates (or -1)
// so that callers can keep track of where the winning point came from.
func closestClockwiseIndex(pivot Point, candidates []Point, center Point) int {
	type entry struct {
		Point
		index int // index into candidates, -1 for the pivot
	}

	entries := make([]entry, 0, len(candidates)+1)
	pivotIndex := -1
	for i, candidate := range candidates {
		if pivotIndex < 0 && candidate.Equals(pivot) {
			pivotIndex = i
		}
		entries = append(entries, entry{candidate, i})
	}
	if pivotIndex < 0 {
		entries = append(entries, entry{pivot, -1})
	}
	if len(entries) < 2 {
		return -1
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return clockwiseLess(entries[i].Point, entries[j].Point, center)
	})
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	for i, e := range entries {
		if e.index == pivotIndex {
			return entries[CircularIndex(i+1, len(entries))].index
		}
	}
	return -1
}
