// Readers for stroke input. A stroke is a single straight segment, as produced by
// one drag of a finger or the mouse.
package strokes

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	planarfacefinder "github.com/farkasseb/PlanarFaceFinder"
)

type Point = planarfacefinder.Point
type Segment = planarfacefinder.Segment

// ParseText reads one stroke per line as four numbers, x1 y1 x2 y2, separated by
// spaces or commas. Blank lines and lines starting with # are skipped.
func ParseText(r io.Reader) ([]Segment, error) {
	var segments []Segment
	scanner := bufio.NewScanner(r)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		values, err := parseNumbers(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		if len(values) != 4 {
			return nil, errors.Errorf("line %d: expected 4 numbers, got %d", lineNumber, len(values))
		}
		segments = append(segments, Segment{
			Start: Point{X: values[0], Y: values[1]},
			End:   Point{X: values[2], Y: values[3]},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading strokes")
	}
	return segments, nil
}

// ParseSVG collects strokes from the <line>, <polyline> and <polygon> elements of
// an SVG document, in document order. Polylines and polygons become one stroke per
// edge, and polygons are closed back to their first point. Transforms and every
// other element are ignored.
func ParseSVG(r io.Reader) ([]Segment, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var segments []Segment
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "line":
			segment, err := parseLine(el)
			if err != nil {
				return err
			}
			segments = append(segments, segment)

		case "polyline", "polygon":
			points, err := parsePoints(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "<%s>", el.Name)
			}
			if el.Name == "polygon" && len(points) > 2 {
				points = append(points, points[0])
			}
			for i := 1; i < len(points); i++ {
				segments = append(segments, Segment{Start: points[i-1], End: points[i]})
			}
		}

		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return segments, nil
}

func parseLine(el *svgparser.Element) (Segment, error) {
	var values [4]float64
	for i, attr := range []string{"x1", "y1", "x2", "y2"} {
		// Missing coordinates default to zero in SVG
		raw, ok := el.Attributes[attr]
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Segment{}, errors.Wrapf(err, "<line> attribute %s", attr)
		}
		values[i] = value
	}
	return Segment{
		Start: Point{X: values[0], Y: values[1]},
		End:   Point{X: values[2], Y: values[3]},
	}, nil
}

func parsePoints(s string) ([]Point, error) {
	values, err := parseNumbers(s)
	if err != nil {
		return nil, err
	}
	if len(values)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]Point, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		points = append(points, Point{X: values[i], Y: values[i+1]})
	}
	return points, nil
}

// Numbers separated by any mix of whitespace and commas
func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", field)
		}
		values = append(values, value)
	}
	return values, nil
}
