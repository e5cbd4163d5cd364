// 2D line segment geometry for game logic and editor tooling.
//
// This package re-exports the working types so most callers need a single
// import. Segments are values: moving, rotating or flipping one returns a new
// segment. Degenerate input (zero length segments, parallel lines) gives NaN or
// infinite results instead of errors.
//
// Debug drawing lives in the gizmos package, so that it can be compiled out.
package segments

import (
	"github.com/osuushi/segments/bounds"
	"github.com/osuushi/segments/geom"
)

type Vector = geom.Vector
type LineSegment = geom.LineSegment
type Circle = geom.Circle
type Range[T comparable] = bounds.Range[T]

// The "no segment" sentinel. Compare against it explicitly.
var Null = geom.Null

var (
	ErrOutOfRange  = bounds.ErrOutOfRange
	ErrUnsupported = bounds.ErrUnsupported
)

// Build a segment from raw coordinates.
func NewLineSegment(x1, y1, x2, y2 float64) LineSegment {
	return geom.NewLineSegment(Vector{X: x1, Y: y1}, Vector{X: x2, Y: y2})
}

func NewRange[T comparable](min, max T) Range[T] {
	return bounds.New(min, max)
}
