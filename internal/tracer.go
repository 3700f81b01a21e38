package internal

import (
	"sort"
	"strconv"
	"strings"

	"github.com/farkasseb/PlanarFaceFinder/dbg"
)

// Face tracing by rotational sweep.
//
// From every vertex, along every segment incident to it, we try to walk a
// closed loop. At each step we stand on a vertex and know which segment we
// arrived along. To find where to go next, we need the next segment around the
// vertex in clockwise order. Rather than sorting the incident segments by angle,
// we draw a probe circle around the vertex through a trisection marker of the
// current segment, intersect it with every other incident segment, and take the
// intersection point that comes right after the marker in clockwise order:
//
//	        \ other
//	     .-~~X~-.
//	    /     \  \
//	   |       V--M------ current
//	    \     /  /
//	     `-~~X~-'
//	        / other
//
// The segment owning that point is the next edge, and its far end is the next
// vertex. The walk succeeds when it arrives back at the starting vertex.
//
// Each step consumes the marker it probed through, and consumed markers stay
// consumed for the whole pass, across all attempts. A walk that finds no
// unconsumed marker, no other segment at a vertex, or no clockwise neighbor is
// dropped. This is also what makes the pass finite: every step uses up one of a
// finite number of markers.
//
// The marker tags live in a slice owned by the pass rather than in the markers,
// so passes never see each other's state.
type tracer struct {
	arrangement *Arrangement
	markers     []Marker
	tags        []int
}

// Trace every face of the arrangement. The markers must have been generated
// from the arrangement's current segments. Returns the faces, oriented clockwise
// on screen, and a copy of the markers with the tag of the attempt that consumed
// each of them.
//
// Faces are kept as vertex sets: a loop whose vertices match an earlier face is
// dropped. In particular the outer boundary of a shape and its interior are the
// same loop walked in opposite directions, so they yield a single face.
func TraceFaces(a *Arrangement, markers []Marker) ([]Face, []Marker) {
	if len(markers) != 2*a.SegmentCount() {
		fatalf("have %d markers for %d segments", len(markers), a.SegmentCount())
	}

	t := &tracer{
		arrangement: a,
		markers:     markers,
		tags:        make([]int, len(markers)),
	}

	var faces []Face
	seen := make(map[string]struct{})
	attempt := 0
	for v := 0; v < a.VertexCount(); v++ {
		for _, s := range a.Incident(v) {
			attempt++
			loop, ok := t.trace(v, s, attempt)
			if !ok {
				continue
			}

			key := faceKey(loop)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			faces = append(faces, t.face(loop))
			if dbg.Enabled() {
				dbg.Logf("attempt %d: %s with %d vertices", attempt, dbg.Good("face"), len(loop))
			}
		}
	}

	tagged := make([]Marker, len(markers))
	for i, marker := range markers {
		marker.Tag = t.tags[i]
		tagged[i] = marker
	}
	return faces, tagged
}

// Walk one loop starting at vertex origin along segment start. Returns the
// vertex indices of the loop, without repeating the origin at the end.
func (t *tracer) trace(origin, start, attempt int) ([]int, bool) {
	a := t.arrangement
	current, segment := origin, start
	path := []int{origin}

	for {
		m := t.nearestUnvisitedMarker(segment, current)
		if m < 0 {
			return t.fail(attempt, origin, "no unvisited marker")
		}
		t.tags[m] = attempt
		marker := t.markers[m].Point

		center := a.vertices.At(current)
		probe := Circle{Center: center, Radius: Distance(center, marker)}

		var (
			candidates []Point
			owners     []int
			others     int
		)
		for _, other := range a.Incident(current) {
			if other == segment {
				continue
			}
			others++
			points := IntersectCircle(a.segments[other], probe)
			switch len(points) {
			case 0:
			case 1:
				candidates = append(candidates, points[0])
				owners = append(owners, other)
			default:
				// The other segment ends at the circle's center, so the circle can
				// only cross it once.
				fatalf("probe circle at %v (radius %v) crosses segment %v more than once", center, probe.Radius, a.segments[other])
			}
		}
		if others == 0 {
			return t.fail(attempt, origin, "dead end")
		}

		next := closestClockwiseIndex(marker, candidates, center)
		if next < 0 {
			return t.fail(attempt, origin, "no clockwise neighbor")
		}

		segment = owners[next]
		current = a.OtherEnd(segment, current)
		if current == origin {
			return path, true
		}
		path = append(path, current)
	}
}

func (t *tracer) fail(attempt, origin int, reason string) ([]int, bool) {
	if dbg.Enabled() {
		vertex := t.arrangement.vertices.At(origin)
		dbg.Logf("attempt %d from %s %v: %s", attempt, dbg.Note(dbg.Name(vertex)), vertex, dbg.Bad(reason))
	}
	return nil, false
}

// Of the two markers on segment s, the unvisited one closest to vertex v, or -1.
func (t *tracer) nearestUnvisitedMarker(s, v int) int {
	from := t.arrangement.vertices.At(v)
	best := -1
	for _, m := range []int{2 * s, 2*s + 1} {
		if t.tags[m] != 0 {
			continue
		}
		if best < 0 || Distance(from, t.markers[m].Point) < Distance(from, t.markers[best].Point) {
			best = m
		}
	}
	return best
}

// Resolve a loop to points, oriented clockwise on screen. The starting vertex
// stays first.
func (t *tracer) face(loop []int) Face {
	face := make(Face, len(loop))
	for i, v := range loop {
		face[i] = t.arrangement.vertices.At(v)
	}
	if SignedArea(face) < 0 {
		rest := face[1:]
		for i, j := 0, len(rest)-1; i < j; i, j = i+1, j-1 {
			rest[i], rest[j] = rest[j], rest[i]
		}
	}
	return face
}

func faceKey(loop []int) string {
	sorted := make([]int, len(loop))
	copy(sorted, loop)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
