package geom

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, near-zero determinants are compared
// with a fixed tolerance. Without it, nearly parallel segments would report
// intersections thousands of units away.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func radiansToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
