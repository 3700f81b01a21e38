package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlePanicRecover(t *testing.T) {
	traceFn := func(markers []Marker) (faces []Face, err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		a := NewArrangement()
		a.Insert(Segment{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 0}})
		if markers == nil {
			markers = Trisect(a.Segments())
		}
		faces, _ = TraceFaces(a, markers)
		return faces, nil
	}

	t.Run("with fault", func(t *testing.T) {
		_, err := traceFn([]Marker{})
		assert.EqualError(t, err, "have 0 markers for 1 segments")
		assert.IsType(t, FaultError{}, err)
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			HandlePanicRecover("true panic")
		})
	})

	t.Run("no error", func(t *testing.T) {
		faces, err := traceFn(nil)
		assert.NoError(t, err)
		assert.Empty(t, faces)
	})
}

func TestKernel(t *testing.T) {
	p, ok := IntersectSegments(
		Segment{Start: Point{X: 1, Y: 1}, End: Point{X: 3, Y: 3}},
		Segment{Start: Point{X: 1, Y: 3}, End: Point{X: 3, Y: 1}},
	)
	if assert.True(t, ok) {
		assert.InDelta(t, 2, p.X, Epsilon)
		assert.InDelta(t, 2, p.Y, Epsilon)
	}

	assert.Len(t, IntersectCircle(Segment{Start: Point{X: 1, Y: 1}, End: Point{X: 3, Y: 3}}, Circle{Center: Point{X: 2, Y: 2}, Radius: 1}), 2)
	assert.Equal(t, []float64{-1, 4}, SolveQuadratic(1, -3, -4))
	assert.Equal(t, 5.0, Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}))

	neighbor, ok := ClosestClockwiseNeighbor(Point{X: 172, Y: 164}, []Point{{X: 169, Y: 126}, {X: 188, Y: 124}}, Point{X: 191, Y: 163})
	if assert.True(t, ok) {
		assert.Equal(t, Point{X: 169, Y: 126}, neighbor)
	}
}
