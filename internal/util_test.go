package internal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 0.0, Distance(Point{0, 0}, Point{0, 0}))
	assert.Equal(t, 1.0, Distance(Point{0, 0}, Point{1, 0}))
	assert.Equal(t, 5.0, Distance(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, 5.0, Distance(Point{3, 4}, Point{0, 0}))
}

func TestPointEquals(t *testing.T) {
	p := Point{10, 10}
	assert.True(t, p.Equals(Point{10, 10}))
	assert.True(t, p.Equals(Point{10.05, 9.95}))
	assert.True(t, p.Equals(Point{10.09, 10}))
	assert.False(t, p.Equals(Point{10.11, 10}))
	assert.False(t, p.Equals(Point{11, 10}))
}

func TestSegmentEquals(t *testing.T) {
	s := Segment{Point{0, 0}, Point{10, 0}}
	assert.True(t, s.Equals(Segment{Point{0.01, 0}, Point{10, 0.01}}))
	assert.False(t, s.Equals(Segment{Point{10, 0}, Point{0, 0}}), "reversed segment is a different segment")
}

func TestLerp(t *testing.T) {
	s := Segment{Point{0, 0}, Point{9, -3}}
	assert.Equal(t, Point{0, 0}, s.Lerp(0))
	assert.Equal(t, Point{9, -3}, s.Lerp(1))
	third := s.Lerp(1.0 / 3)
	assert.InDelta(t, 3, third.X, Tolerance)
	assert.InDelta(t, -1, third.Y, Tolerance)
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestSignedArea(t *testing.T) {
	// Clockwise as seen on a screen, where y points down
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	for _, reversed := range []bool{false, true} {
		reversed := reversed
		t.Run(fmt.Sprintf("reversed=%v", reversed), func(t *testing.T) {
			points := make([]Point, len(square))
			copy(points, square)
			sign := 1.0
			if reversed {
				for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
					points[i], points[j] = points[j], points[i]
				}
				sign = -1
			}
			assert.InDelta(t, sign*100, SignedArea(points), Tolerance)
		})
	}
}
