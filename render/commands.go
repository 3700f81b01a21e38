// Drawing scenes.
//
// A scene is first flattened into a list of draw commands in canvas coordinates.
// The PNG and SVG backends then just play the commands back in order, so both
// outputs always agree on what is drawn where.
package render

import (
	"image/color"
	"math"
	"strconv"

	"github.com/golang/geo/r2"

	planarfacefinder "github.com/farkasseb/PlanarFaceFinder"
)

type Point = planarfacefinder.Point
type Scene = planarfacefinder.Scene

type Op int

const (
	FillPolygon Op = iota
	StrokeLine
	Dot
	Text
)

func (op Op) String() string {
	switch op {
	case FillPolygon:
		return "fill"
	case StrokeLine:
		return "line"
	case Dot:
		return "dot"
	case Text:
		return "text"
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// A single draw command. Size is the line width for lines and the radius for
// dots. Points are in canvas coordinates.
type Command struct {
	Op     Op
	Points []Point
	Color  color.NRGBA
	Size   float64
	Dashed bool
	Text   string
}

// Canvas is the output size along with the mapping from scene to canvas
// coordinates. Screen and scene agree on y pointing down, so there is no flip.
type Canvas struct {
	Width, Height float64

	origin  r2.Point
	scale   float64
	padding float64
}

// An empty scene still gets a canvas of this size, in scene units
var emptyBounds = r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 100, Y: 100})

// Neither side of the drawing area grows past this many pixels. Larger scenes
// are drawn at a smaller scale instead.
const MaxCanvasSide = 4096

func NewCanvas(scene Scene, style Style) Canvas {
	bounds := r2.EmptyRect()
	for _, v := range scene.Vertices {
		bounds = bounds.AddPoint(r2.Point{X: v.X, Y: v.Y})
	}
	if scene.Pending != nil {
		bounds = bounds.AddPoint(r2.Point{X: scene.Pending.Start.X, Y: scene.Pending.Start.Y})
		bounds = bounds.AddPoint(r2.Point{X: scene.Pending.End.X, Y: scene.Pending.End.Y})
	}
	if bounds.IsEmpty() {
		bounds = emptyBounds
	}

	scale := style.Scale
	padding := math.Min(style.Padding, MaxCanvasSide/4)
	extent := math.Max(bounds.Size().X, bounds.Size().Y)
	if room := MaxCanvasSide - 2*padding; extent*scale > room {
		scale = room / extent
	}

	size := bounds.Size().Mul(scale)
	return Canvas{
		Width:   math.Min(size.X+2*padding, MaxCanvasSide),
		Height:  math.Min(size.Y+2*padding, MaxCanvasSide),
		origin:  bounds.Lo(),
		scale:   scale,
		padding: padding,
	}
}

func (c Canvas) Transform(p Point) Point {
	v := r2.Point{X: p.X, Y: p.Y}.Sub(c.origin).Mul(c.scale).Add(r2.Point{X: c.padding, Y: c.padding})
	return Point{X: v.X, Y: v.Y}
}

// Commands flattens the scene, back to front: face fills, edges, the pending
// stroke, markers, vertices and finally face labels. The style must be valid.
func Commands(scene Scene, style Style) (Canvas, []Command) {
	canvas := NewCanvas(scene, style)
	var commands []Command

	for i, face := range scene.Faces {
		points := make([]Point, len(face))
		for j, p := range face {
			points[j] = canvas.Transform(p)
		}
		commands = append(commands, Command{
			Op:     FillPolygon,
			Points: points,
			Color:  mustColor(style.Fills[i%len(style.Fills)]),
		})
	}

	edge := mustColor(style.Edge)
	for _, s := range scene.Segments {
		commands = append(commands, Command{
			Op:     StrokeLine,
			Points: []Point{canvas.Transform(s.Start), canvas.Transform(s.End)},
			Color:  edge,
			Size:   style.EdgeWidth,
		})
	}

	if scene.Pending != nil {
		commands = append(commands, Command{
			Op:     StrokeLine,
			Points: []Point{canvas.Transform(scene.Pending.Start), canvas.Transform(scene.Pending.End)},
			Color:  mustColor(style.Pending),
			Size:   style.EdgeWidth,
			Dashed: true,
		})
	}

	if style.ShowMarkers {
		marker := mustColor(style.Marker)
		for _, m := range scene.Markers {
			commands = append(commands, Command{
				Op:     Dot,
				Points: []Point{canvas.Transform(m.Point)},
				Color:  marker,
				Size:   style.MarkerRadius,
			})
		}
	}

	vertex := mustColor(style.Vertex)
	for _, v := range scene.Vertices {
		commands = append(commands, Command{
			Op:     Dot,
			Points: []Point{canvas.Transform(v)},
			Color:  vertex,
			Size:   style.VertexRadius,
		})
	}

	if style.ShowLabels {
		label := mustColor(style.Label)
		for i, face := range scene.Faces {
			if len(face) == 0 {
				continue
			}
			commands = append(commands, Command{
				Op:     Text,
				Points: []Point{canvas.Transform(centroid(face))},
				Color:  label,
				Text:   strconv.Itoa(i + 1),
			})
		}
	}

	return canvas, commands
}

// Vertex average. Good enough to place a label on the small convex-ish faces
// people draw.
func centroid(face planarfacefinder.Face) Point {
	var sum r2.Point
	for _, p := range face {
		sum = sum.Add(r2.Point{X: p.X, Y: p.Y})
	}
	sum = sum.Mul(1 / float64(len(face)))
	return Point{X: sum.X, Y: sum.Y}
}
