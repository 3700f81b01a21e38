package internal

import "math"

// Point equality is fuzzy, and fuzzy equality is not transitive, so points can't
// be used as map keys. Instead, vertices live in an arena, and a grid of Epsilon
// sized buckets lets us find every stored vertex that could be within Epsilon of
// a query point by looking at the 3x3 block of buckets around it. The first
// vertex registered near a location is the canonical one; later points that fall
// within Epsilon of it collapse onto it.
type VertexIndex struct {
	points  []Point
	buckets map[gridKey][]int
}

type gridKey struct {
	x, y int64
}

func NewVertexIndex() *VertexIndex {
	return &VertexIndex{buckets: make(map[gridKey][]int)}
}

func keyFor(p Point) gridKey {
	return gridKey{int64(math.Floor(p.X / Epsilon)), int64(math.Floor(p.Y / Epsilon))}
}

// Find returns the index of the closest vertex within Epsilon of p, or -1.
func (vi *VertexIndex) Find(p Point) int {
	key := keyFor(p)
	best := -1
	bestDistance := math.Inf(1)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, i := range vi.buckets[gridKey{key.x + dx, key.y + dy}] {
				d := Distance(vi.points[i], p)
				if d < Epsilon && d < bestDistance {
					best = i
					bestDistance = d
				}
			}
		}
	}
	return best
}

func (vi *VertexIndex) Contains(p Point) bool {
	return vi.Find(p) >= 0
}

// Register returns the index of the canonical vertex for p, adding p as a new
// vertex if nothing is close enough.
func (vi *VertexIndex) Register(p Point) int {
	if i := vi.Find(p); i >= 0 {
		return i
	}
	i := len(vi.points)
	vi.points = append(vi.points, p)
	key := keyFor(p)
	vi.buckets[key] = append(vi.buckets[key], i)
	return i
}

func (vi *VertexIndex) At(i int) Point {
	return vi.points[i]
}

func (vi *VertexIndex) Len() int {
	return len(vi.points)
}

func (vi *VertexIndex) Points() []Point {
	points := make([]Point, len(vi.points))
	copy(points, vi.points)
	return points
}
