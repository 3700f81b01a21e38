package internal

import "github.com/golang/geo/r2"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segments are values. The arrangement never mutates a stored segment; when two
// segments cross, both are removed and replaced by the pieces running from the
// crossing to each of the four original endpoints.
type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Circles only exist as probes during face tracing. They are never stored.
type Circle struct {
	Center Point
	Radius float64
}

// A trisection marker sits at 1/3 or 2/3 along its owning segment. Segment is the
// owner's index in the arrangement the markers were generated from, and Tag is
// the identifier of the tracing attempt that consumed the marker (zero when
// unvisited).
type Marker struct {
	Point
	Segment int `json:"segment"`
	Tag     int `json:"tag"`
}

// A face is a closed loop of vertices. The closing vertex is not repeated.
type Face []Point

// Scene is a snapshot of everything there is to draw. Pending is the stroke being
// drawn, if any.
type Scene struct {
	Vertices []Point   `json:"vertices"`
	Segments []Segment `json:"segments"`
	Markers  []Marker  `json:"markers"`
	Faces    []Face    `json:"faces"`
	Pending  *Segment  `json:"pending,omitempty"`
}

func (p Point) vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}
