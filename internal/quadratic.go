package internal

import "math"

// Real roots of ax^2 + bx + c = 0, smallest first when a > 0. A discriminant
// within Epsilon of zero is a single (tangent) root.
func SolveQuadratic(a, b, c float64) []float64 {
	discriminant := b*b - 4*a*c

	if math.Abs(discriminant) < Epsilon {
		return []float64{-b / (2 * a)}
	}
	if discriminant < -Epsilon {
		return nil
	}

	root := math.Sqrt(discriminant)
	return []float64{
		(-b - root) / (2 * a),
		(-b + root) / (2 * a),
	}
}
