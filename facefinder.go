// Planar face finding for hand drawn line segments.
//
// Strokes are fed in one at a time. Each stroke is split against everything
// drawn so far, so the stored segments never cross except at vertices. After
// every stroke, the closed faces of the resulting planar subdivision are traced
// again from scratch and handed back, ready to be filled.
//
// All geometry is floating point with a fixed tolerance: points closer than
// Epsilon (0.1 display units) are the same point.
package planarfacefinder

import "github.com/farkasseb/PlanarFaceFinder/internal"

type Point = internal.Point
type Segment = internal.Segment
type Marker = internal.Marker
type Face = internal.Face
type Scene = internal.Scene

const Epsilon = internal.Epsilon

// A Finder owns one arrangement and everything derived from it. It is not safe
// for concurrent use.
type Finder struct {
	arrangement *internal.Arrangement
	markers     []Marker
	faces       []Face

	// Stroke being drawn, if any
	start, end *Point
}

func New() *Finder {
	return &Finder{arrangement: internal.NewArrangement()}
}

// Insert a stroke and recompute the markers and faces.
//
// The only error is an internal fault: the face tracer found geometry that its
// construction rules out. The arrangement is kept, but no faces are reported
// until the next successful insertion.
func (f *Finder) Insert(start, end Point) (err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			f.markers = internal.Trisect(f.arrangement.Segments())
			f.faces = nil
			err = recoveredErr
		}
	}()

	f.arrangement.Insert(Segment{Start: start, End: end})
	markers := internal.Trisect(f.arrangement.Segments())
	f.faces, f.markers = internal.TraceFaces(f.arrangement, markers)
	return nil
}

// Begin, Move and Finish follow a stroke as it is drawn. Finish inserts it once
// both ends are known.

func (f *Finder) Begin(p Point) {
	f.start = &p
	f.end = nil
}

func (f *Finder) Move(p Point) {
	f.end = &p
}

func (f *Finder) Finish() error {
	if f.start == nil || f.end == nil {
		return nil
	}
	start, end := *f.start, *f.end
	f.start, f.end = nil, nil
	return f.Insert(start, end)
}

// The stroke currently being drawn, for rubber band rendering
func (f *Finder) Pending() (Segment, bool) {
	if f.start == nil || f.end == nil {
		return Segment{}, false
	}
	return Segment{Start: *f.start, End: *f.end}, true
}

// Reset drops everything, including any stroke in progress.
func (f *Finder) Reset() {
	f.arrangement.Reset()
	f.markers = nil
	f.faces = nil
	f.start, f.end = nil, nil
}

// Scene returns a snapshot of the current state. The markers carry the tag of
// the tracing attempt that consumed them, which is handy for debug overlays.
func (f *Finder) Scene() Scene {
	scene := Scene{
		Vertices: f.arrangement.Vertices(),
		Segments: f.arrangement.Segments(),
		Markers:  make([]Marker, len(f.markers)),
		Faces:    make([]Face, len(f.faces)),
	}
	copy(scene.Markers, f.markers)
	for i, face := range f.faces {
		scene.Faces[i] = append(Face(nil), face...)
	}
	if pending, ok := f.Pending(); ok {
		scene.Pending = &pending
	}
	return scene
}

func (f *Finder) Faces() []Face {
	return f.Scene().Faces
}
