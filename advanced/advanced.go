// Direct access to the geometry kernel and the building blocks of the face
// finder, for callers who want to run the steps themselves.
//
// Functions in here may panic with an internal fault. Wrap calls in a deferred
// HandlePanicRecover to turn that into an error.
package advanced

import "github.com/farkasseb/PlanarFaceFinder/internal"

type Point = internal.Point
type Segment = internal.Segment
type Circle = internal.Circle
type Marker = internal.Marker
type Face = internal.Face
type Arrangement = internal.Arrangement
type VertexIndex = internal.VertexIndex
type FaultError = internal.FaultError

const (
	Epsilon   = internal.Epsilon
	Tolerance = internal.Tolerance
)

var (
	Distance                 = internal.Distance
	IntersectSegments        = internal.IntersectSegments
	IntersectCircle          = internal.IntersectCircle
	SolveQuadratic           = internal.SolveQuadratic
	OrderClockwise           = internal.OrderClockwise
	ClosestClockwiseNeighbor = internal.ClosestClockwiseNeighbor
	SignedArea               = internal.SignedArea

	NewArrangement = internal.NewArrangement
	NewVertexIndex = internal.NewVertexIndex
	Trisect        = internal.Trisect
	TraceFaces     = internal.TraceFaces

	HandlePanicRecover = internal.HandlePanicRecover
)
