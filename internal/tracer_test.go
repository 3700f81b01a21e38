package internal

import (
	"bytes"
	"testing"

	"github.com/farkasseb/PlanarFaceFinder/dbg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traceFixture(name string) ([]Face, []Marker) {
	a := LoadArrangement(name)
	return TraceFaces(a, Trisect(a.Segments()))
}

func assertFace(t *testing.T, expected []Point, actual Face) {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return
	}
	for i := range expected {
		assert.True(t, expected[i].Equals(actual[i]), "vertex %d: expected %v, got %v", i, expected[i], actual[i])
	}
}

func TestTraceFaces_Rectangle(t *testing.T) {
	faces, markers := traceFixture("rectangle")
	require.Len(t, faces, 1)
	assertFace(t, []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, faces[0])

	// Both loops around the rectangle were walked, using up every marker
	require.Len(t, markers, 8)
	for i, marker := range markers {
		assert.NotZero(t, marker.Tag, "marker %d", i)
		assert.Equal(t, i/2, marker.Segment)
	}
}

func TestTraceFaces_Triangle(t *testing.T) {
	faces, _ := traceFixture("triangle")
	require.Len(t, faces, 1)
	assertFace(t, []Point{{0, 0}, {10, 0}, {0, 10}}, faces[0])
}

func TestTraceFaces_Divided(t *testing.T) {
	faces, _ := traceFixture("divided")
	require.Len(t, faces, 2)
	assertFace(t, []Point{{0, 0}, {5, 0}, {5, 10}, {0, 10}}, faces[0])
	assertFace(t, []Point{{10, 0}, {10, 10}, {5, 10}, {5, 0}}, faces[1])
}

func TestTraceFaces_Clockwise(t *testing.T) {
	for _, name := range []string{"rectangle", "triangle", "divided"} {
		name := name
		t.Run(name, func(t *testing.T) {
			faces, _ := traceFixture(name)
			for _, face := range faces {
				assert.Greater(t, SignedArea(face), 0.0)
			}
		})
	}
}

func TestTraceFaces_NoLoops(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		faces, markers := TraceFaces(NewArrangement(), nil)
		assert.Empty(t, faces)
		assert.Empty(t, markers)
	})

	t.Run("cross", func(t *testing.T) {
		faces, _ := traceFixture("cross")
		assert.Empty(t, faces)
	})

	t.Run("fan", func(t *testing.T) {
		a := NewArrangement()
		for _, s := range Fan(5, 10) {
			a.Insert(s)
		}
		faces, _ := TraceFaces(a, Trisect(a.Segments()))
		assert.Empty(t, faces)
	})
}

func TestTraceFaces_LeavesInputAlone(t *testing.T) {
	a := LoadArrangement("rectangle")
	markers := Trisect(a.Segments())
	_, tagged := TraceFaces(a, markers)
	for i := range markers {
		assert.Zero(t, markers[i].Tag)
		assert.Equal(t, markers[i].Point, tagged[i].Point)
	}

	// A second pass starts from a clean slate
	faces, _ := TraceFaces(a, markers)
	assert.Len(t, faces, 1)
}

func TestTraceFaces_MarkerMismatch(t *testing.T) {
	a := LoadArrangement("rectangle")
	trace := func() (err error) {
		defer func() {
			err = HandlePanicRecover(recover())
		}()
		TraceFaces(a, Trisect(a.Segments()[1:]))
		return nil
	}
	err := trace()
	if assert.Error(t, err) {
		assert.IsType(t, FaultError{}, err)
		assert.Contains(t, err.Error(), "6 markers for 4 segments")
	}
}

// Segments in a settled arrangement end at the vertices they are incident to,
// so this needs one built by hand: segment 1 is filed under vertex 0 but runs
// past it along y = 1, and the probe circle at the origin crosses it twice.
func TestTraceFaces_DoubleCrossing(t *testing.T) {
	a := NewArrangement()
	origin := a.vertices.Register(Point{0, 0})
	right := a.vertices.Register(Point{10, 0})
	far := a.vertices.Register(Point{10, 1})
	a.segments = []Segment{
		{Point{0, 0}, Point{10, 0}},
		{Point{-10, 1}, Point{10, 1}},
	}
	a.ends = [][2]int{{origin, right}, {origin, far}}

	trace := func() (err error) {
		defer func() {
			err = HandlePanicRecover(recover())
		}()
		TraceFaces(a, Trisect(a.Segments()))
		return nil
	}
	err := trace()
	if assert.Error(t, err) {
		assert.IsType(t, FaultError{}, err)
		assert.Contains(t, err.Error(), "more than once")
	}
}

func TestTraceFaces_DebugLog(t *testing.T) {
	var buf bytes.Buffer
	dbg.Enable(&buf)
	defer dbg.Disable()

	traceFixture("divided")
	assert.Contains(t, buf.String(), "dead end")
	assert.Contains(t, buf.String(), "face")
}
