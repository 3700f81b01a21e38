package internal

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs strokes. This is not a full (or
// even correct) svg parser. It collects every <line> element in document order
// and turns each into a segment from (x1, y1) to (x2, y2). If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Segment {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	lines := rootEl.FindAll("line")
	if len(lines) == 0 {
		log.Fatalf("No lines found in fixture %q", name)
	}

	segments := make([]Segment, 0, len(lines))
	for _, lineEl := range lines {
		coord := func(attr string) float64 {
			value, err := strconv.ParseFloat(lineEl.Attributes[attr], 64)
			if err != nil {
				log.Fatalf("Invalid %s value %q in fixture %q: %v", attr, lineEl.Attributes[attr], name, err)
			}
			return value
		}
		segments = append(segments, Segment{
			Start: Point{coord("x1"), coord("y1")},
			End:   Point{coord("x2"), coord("y2")},
		})
	}
	return segments
}

// Build an arrangement by inserting the fixture's strokes in order
func LoadArrangement(name string) *Arrangement {
	a := NewArrangement()
	for _, segment := range LoadFixture(name) {
		a.Insert(segment)
	}
	return a
}

// Some ad hoc code specified fixtures

// A fan of n spokes around the origin, none of which close a loop
func Fan(n int, length float64) []Segment {
	var segments []Segment
	for i := 0; i < n; i++ {
		end := Point{length, float64(i) * length / float64(n)}
		segments = append(segments, Segment{Point{0, 0}, end})
	}
	return segments
}
