package internal

// Two markers per segment, at 1/3 and 2/3 of its length. Markers for segment i
// are at indices 2i and 2i+1, which is what the face tracer relies on to find
// them again. The markers are always rebuilt from scratch: segments get replaced
// rather than mutated, so nothing about the previous marker set carries over.
func Trisect(segments []Segment) []Marker {
	markers := make([]Marker, 0, 2*len(segments))
	for i, segment := range segments {
		markers = append(markers,
			Marker{Point: segment.Lerp(1.0 / 3), Segment: i},
			Marker{Point: segment.Lerp(2.0 / 3), Segment: i},
		)
	}
	return markers
}
