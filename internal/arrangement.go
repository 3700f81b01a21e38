package internal

import (
	"github.com/farkasseb/PlanarFaceFinder/dbg"
)

// An arrangement is the set of vertices and segments built up from the inserted
// strokes. The invariant is that no two stored segments cross at a point that is
// not a registered vertex. Every crossing found during insertion is removed on
// the spot by splitting both segments at the crossing, and the four pieces are
// then inserted in turn, since any of them may cross yet another segment.
//
// The splitting is naturally recursive, but we use an explicit worklist instead
// so that pathological input (many strokes through nearly the same point) can't
// blow the stack. The outcome is the same.
//
// Segment endpoints are snapped to their canonical vertex on the way in, so
// segments can also be addressed by the pair of vertex indices at their ends.
//
// Strokes that were inserted before are skipped. A stroke that has already been
// split no longer matches any stored segment, and storing it again would lay it
// on top of its own pieces.
type Arrangement struct {
	vertices *VertexIndex
	segments []Segment
	ends     [][2]int
	strokes  map[[2]int]struct{}
}

// Bail out instead of looping forever if floating point noise keeps producing
// new crossings. No sane drawing gets anywhere near this.
const maxSplitSteps = 1 << 20

func NewArrangement() *Arrangement {
	return &Arrangement{
		vertices: NewVertexIndex(),
		strokes:  make(map[[2]int]struct{}),
	}
}

func (a *Arrangement) Insert(segment Segment) {
	stroke := [2]int{a.vertices.Register(segment.Start), a.vertices.Register(segment.End)}
	if _, ok := a.strokes[stroke]; ok {
		return
	}
	a.strokes[stroke] = struct{}{}

	pending := []Segment{segment}
	for steps := 0; len(pending) > 0; steps++ {
		if steps >= maxSplitSteps {
			fatalf("arrangement did not settle after %d splits", steps)
		}
		s := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		pieces := a.place(s)
		// Push in reverse so the pieces are handled in order
		for i := len(pieces) - 1; i >= 0; i-- {
			pending = append(pending, pieces[i])
		}
	}
}

// Try to store a single segment. If it crosses a stored segment at a point that
// isn't a vertex yet, the stored segment is removed and the four pieces around
// the crossing are returned for insertion instead.
func (a *Arrangement) place(s Segment) []Segment {
	start := a.vertices.Register(s.Start)
	end := a.vertices.Register(s.End)
	s = Segment{a.vertices.At(start), a.vertices.At(end)}

	for i, stored := range a.segments {
		p, ok := IntersectSegments(stored, s)
		if !ok || a.vertices.Contains(p) {
			continue
		}
		p = a.vertices.At(a.vertices.Register(p))
		a.remove(i)

		if dbg.Enabled() {
			dbg.Logf("split %s and %s at %v", dbg.Note(dbg.Name(stored)), dbg.Note(dbg.Name(s)), p)
		}

		return []Segment{
			{p, s.Start},
			{p, s.End},
			{p, stored.Start},
			{p, stored.End},
		}
	}

	if a.indexOf(start, end) < 0 {
		a.segments = append(a.segments, s)
		a.ends = append(a.ends, [2]int{start, end})
	}
	return nil
}

func (a *Arrangement) remove(i int) {
	a.segments = append(a.segments[:i], a.segments[i+1:]...)
	a.ends = append(a.ends[:i], a.ends[i+1:]...)
}

// Segment equality is order sensitive, so only (start, end) matches.
func (a *Arrangement) indexOf(start, end int) int {
	for i, e := range a.ends {
		if e[0] == start && e[1] == end {
			return i
		}
	}
	return -1
}

func (a *Arrangement) Reset() {
	*a = *NewArrangement()
}

func (a *Arrangement) Vertices() []Point {
	return a.vertices.Points()
}

func (a *Arrangement) Segments() []Segment {
	segments := make([]Segment, len(a.segments))
	copy(segments, a.segments)
	return segments
}

func (a *Arrangement) VertexCount() int {
	return a.vertices.Len()
}

func (a *Arrangement) SegmentCount() int {
	return len(a.segments)
}

// Indexes of the segments that start or end at vertex v
func (a *Arrangement) Incident(v int) []int {
	var result []int
	for i, e := range a.ends {
		if e[0] == v || e[1] == v {
			result = append(result, i)
		}
	}
	return result
}

// The vertex index at the other end of segment s from vertex v
func (a *Arrangement) OtherEnd(s, v int) int {
	if a.ends[s][0] == v {
		return a.ends[s][1]
	}
	return a.ends[s][0]
}
