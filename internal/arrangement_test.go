package internal

import (
	"bytes"
	"testing"

	"github.com/farkasseb/PlanarFaceFinder/dbg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// No two stored segments may meet anywhere but at a registered vertex
func assertNoCrossings(t *testing.T, a *Arrangement) {
	t.Helper()
	for i := range a.segments {
		for j := i + 1; j < len(a.segments); j++ {
			p, ok := IntersectSegments(a.segments[i], a.segments[j])
			if ok {
				assert.True(t, a.vertices.Contains(p), "%v and %v cross at %v", a.segments[i], a.segments[j], p)
			}
		}
	}
}

func TestArrangement_SingleStroke(t *testing.T) {
	a := NewArrangement()
	a.Insert(Segment{Point{0, 0}, Point{10, 0}})
	assert.Equal(t, 2, a.VertexCount())
	assert.Equal(t, []Segment{{Point{0, 0}, Point{10, 0}}}, a.Segments())
}

func TestArrangement_Idempotent(t *testing.T) {
	a := NewArrangement()
	s := Segment{Point{0, 0}, Point{10, 0}}
	a.Insert(s)
	a.Insert(s)
	assert.Equal(t, 2, a.VertexCount())
	assert.Equal(t, 1, a.SegmentCount())

	t.Run("after a split", func(t *testing.T) {
		a := LoadArrangement("cross")
		vertices, segments := a.Vertices(), a.Segments()
		for _, s := range LoadFixture("cross") {
			a.Insert(s)
		}
		assert.Equal(t, vertices, a.Vertices())
		assert.Equal(t, segments, a.Segments())
	})

	t.Run("snapped endpoints", func(t *testing.T) {
		a := NewArrangement()
		a.Insert(s)
		a.Insert(Segment{Point{0.03, 0.02}, Point{9.98, 0}})
		assert.Equal(t, 2, a.VertexCount())
		assert.Equal(t, 1, a.SegmentCount())
	})
}

func TestArrangement_Crossing(t *testing.T) {
	a := LoadArrangement("cross")
	require.Equal(t, 5, a.VertexCount())
	assert.Equal(t, 4, a.SegmentCount())
	assertNoCrossings(t, a)

	center := a.vertices.Find(Point{2, 2})
	require.Equal(t, 4, center, "the crossing is registered after the four endpoints")
	assert.Equal(t, []int{0, 1, 2, 3}, a.Incident(center))

	// Every piece runs from the crossing out to one of the original endpoints
	var outer []int
	for _, s := range a.Incident(center) {
		outer = append(outer, a.OtherEnd(s, center))
	}
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, outer)
	for v := 0; v < 4; v++ {
		assert.Len(t, a.Incident(v), 1)
	}
}

func TestArrangement_Parallel(t *testing.T) {
	a := NewArrangement()
	a.Insert(Segment{Point{0, 0}, Point{10, 0}})
	a.Insert(Segment{Point{0, 5}, Point{10, 5}})
	assert.Equal(t, 4, a.VertexCount())
	assert.Equal(t, 2, a.SegmentCount())
}

func TestArrangement_SharedEndpoints(t *testing.T) {
	a := NewArrangement()
	for _, s := range Fan(5, 10) {
		a.Insert(s)
	}
	assert.Equal(t, 6, a.VertexCount())
	assert.Equal(t, 5, a.SegmentCount())
	assert.Len(t, a.Incident(0), 5)
	assertNoCrossings(t, a)
}

func TestArrangement_MultipleCrossings(t *testing.T) {
	a := LoadArrangement("divided")
	// Four corners, two stroke ends and two crossings
	assert.Equal(t, 8, a.VertexCount())
	// Two sides are split in half, and the divider in three
	assert.Equal(t, 9, a.SegmentCount())
	assertNoCrossings(t, a)

	assert.True(t, a.vertices.Contains(Point{5, 0}))
	assert.True(t, a.vertices.Contains(Point{5, 10}))
}

func TestArrangement_Reset(t *testing.T) {
	a := LoadArrangement("divided")
	a.Reset()
	assert.Equal(t, 0, a.VertexCount())
	assert.Equal(t, 0, a.SegmentCount())

	// Strokes are forgotten too
	a.Insert(LoadFixture("divided")[0])
	assert.Equal(t, 1, a.SegmentCount())
}

func TestArrangement_DebugLog(t *testing.T) {
	var buf bytes.Buffer
	dbg.Enable(&buf)
	defer dbg.Disable()

	LoadArrangement("cross")
	assert.Contains(t, buf.String(), "split")
}
