package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A handful of segments pointing in all sorts of directions
var assortedSegments = []LineSegment{
	{Vector{0, 0}, Vector{10, 0}},
	{Vector{0, 0}, Vector{0, 10}},
	{Vector{-3, 2}, Vector{7, -11}},
	{Vector{1.5, 1.5}, Vector{-4.25, 8}},
	{Vector{100, -100}, Vector{-100, 100}},
	{Vector{2, 2}, Vector{2, 2}},
}

var horizontal = LineSegment{Vector{0, 0}, Vector{10, 0}}

func assertSegmentInDelta(t *testing.T, expected, actual LineSegment) {
	t.Helper()
	assertVectorInDelta(t, expected.Start, actual.Start)
	assertVectorInDelta(t, expected.End, actual.End)
}

func TestTransformRoundTrips(t *testing.T) {
	movement := Vector{3.25, -8}
	pivot := Vector{-2, 5}
	for _, segment := range assortedSegments {
		segment := segment
		t.Run(segment.String(), func(t *testing.T) {
			assert.Equal(t, segment, segment.Flip().Flip())
			assert.Equal(t, segment.End, segment.Flip().Start)

			moved := segment.Move(movement)
			assertSegmentInDelta(t, segment, moved.Move(movement.Neg()))
			assert.InDelta(t, segment.Length(), moved.Length(), delta)

			for _, degrees := range []float64{0, 30, 90, -135, 180, 725} {
				rotated := segment.Rotate(pivot, degrees)
				assertSegmentInDelta(t, segment, rotated.Rotate(pivot, -degrees))
				assert.InDelta(t, segment.Length(), rotated.Length(), delta)
			}
		})
	}
}

func TestHorizontalSegment(t *testing.T) {
	assert.Equal(t, 0.0, horizontal.Slope())
	assert.Equal(t, 0.0, horizontal.FacingAngle())
	assert.Equal(t, 10.0, horizontal.Length())
	assert.Equal(t, Vector{5, 0}, horizontal.Midpoint())
	assert.Equal(t, Vector{1, 0}, horizontal.Direction())

	assert.Equal(t, Vector{5, 0}, horizontal.ClosestPoint(Vector{5, 5}))
	assert.Equal(t, Vector{0, 0}, horizontal.ClosestPoint(Vector{-5, 0}))
	assert.Equal(t, Vector{10, 0}, horizontal.ClosestPoint(Vector{15, 0}))

	t.Run("boundaries", func(t *testing.T) {
		// Exactly at zero goes to the start branch, exactly at the length goes to
		// the end branch. Both happen to be the right answer.
		assert.Equal(t, 0.0, horizontal.DirectedDistanceAlongParallel(Vector{0, 3}))
		assert.Equal(t, Vector{0, 0}, horizontal.ClosestPoint(Vector{0, 3}))
		assert.Equal(t, 10.0, horizontal.DirectedDistanceAlongParallel(Vector{10, -3}))
		assert.Equal(t, Vector{10, 0}, horizontal.ClosestPoint(Vector{10, -3}))
	})
}

func TestSlope(t *testing.T) {
	assert.Equal(t, 2.0, LineSegment{Vector{1, 1}, Vector{2, 3}}.Slope())
	assert.Equal(t, -1.0, LineSegment{Vector{0, 10}, Vector{10, 0}}.Slope())
	assert.True(t, math.IsInf(LineSegment{Vector{1, 1}, Vector{1, 5}}.Slope(), 1))
	assert.True(t, math.IsInf(LineSegment{Vector{1, 1}, Vector{1, -5}}.Slope(), -1))
	assert.True(t, math.IsNaN(LineSegment{Vector{1, 1}, Vector{1, 1}}.Slope()))
}

func TestFacingAngleOfSegment(t *testing.T) {
	assert.InDelta(t, 90, LineSegment{Vector{3, 3}, Vector{3, 8}}.FacingAngle(), delta)
	assert.InDelta(t, 180, horizontal.Flip().FacingAngle(), delta)
	assert.InDelta(t, -45, LineSegment{Vector{0, 10}, Vector{10, 0}}.FacingAngle(), delta)
}

func TestDegenerateSegment(t *testing.T) {
	point := LineSegment{Vector{2, 2}, Vector{2, 2}}
	assert.Equal(t, 0.0, point.Length())
	assert.Equal(t, Vector{}, point.Direction())
	assert.Equal(t, Vector{2, 2}, point.PointWithDirectedDistance(5))
	assert.Equal(t, Vector{2, 2}, point.ClosestPoint(Vector{-7, 9}))
	assert.Equal(t, Vector{2, 2}, point.Midpoint())
}

func TestDirectedDistanceAlongParallel(t *testing.T) {
	diagonal := LineSegment{Vector{0, 0}, Vector{3, 4}}
	assert.InDelta(t, 5, diagonal.DirectedDistanceAlongParallel(Vector{3, 4}), delta)
	assert.InDelta(t, -5, diagonal.DirectedDistanceAlongParallel(Vector{-3, -4}), delta)
	// Perpendicular offsets don't change the projection
	assert.InDelta(t, 5, diagonal.DirectedDistanceAlongParallel(Vector{3 - 4, 4 + 3}), delta)

	// Measured from the start, not the origin
	moved := diagonal.Move(Vector{10, 10})
	assert.InDelta(t, 2.5, moved.DirectedDistanceAlongParallel(moved.Midpoint()), delta)

	assertVectorInDelta(t, Vector{6, 8}, diagonal.PointWithDirectedDistance(10))
	assertVectorInDelta(t, Vector{-0.6, -0.8}, diagonal.PointWithDirectedDistance(-1))
}

func TestClosestPointOnDiagonal(t *testing.T) {
	diagonal := LineSegment{Vector{0, 0}, Vector{10, 10}}
	assertVectorInDelta(t, Vector{5, 5}, diagonal.ClosestPoint(Vector{0, 10}))
	assert.Equal(t, Vector{0, 0}, diagonal.ClosestPoint(Vector{-1, -3}))
	assert.Equal(t, Vector{10, 10}, diagonal.ClosestPoint(Vector{20, 11}))
}

func TestPerpendicular(t *testing.T) {
	counterclockwise := horizontal.Perpendicular(false)
	assertSegmentInDelta(t, LineSegment{Vector{5, -5}, Vector{5, 5}}, counterclockwise)
	clockwise := horizontal.Perpendicular(true)
	assertSegmentInDelta(t, LineSegment{Vector{5, 5}, Vector{5, -5}}, clockwise)

	for _, segment := range assortedSegments[:5] {
		for _, clockwise := range []bool{false, true} {
			perpendicular := segment.Perpendicular(clockwise)
			assert.InDelta(t, segment.Length(), perpendicular.Length(), delta)
			assertVectorInDelta(t, segment.Midpoint(), perpendicular.Midpoint())
			assert.InDelta(t, 0, segment.Direction().Dot(perpendicular.Direction()), delta)
		}
	}
}

func TestContainsPoint(t *testing.T) {
	assert.True(t, horizontal.ContainsPoint(Vector{5, 0}))
	assert.True(t, horizontal.ContainsPoint(Vector{0, 0}))
	assert.True(t, horizontal.ContainsPoint(Vector{10, 0}))
	assert.False(t, horizontal.ContainsPoint(Vector{5, 1}))
	assert.False(t, horizontal.ContainsPoint(Vector{15, 0}))
	assert.False(t, horizontal.ContainsPoint(Vector{-0.5, 0}))
}

func TestIntersection_Crossing(t *testing.T) {
	a, b := loadSegmentPair("crossing")

	point, ok := a.Intersection(b, true)
	require.True(t, ok)
	assert.Equal(t, Vector{5, 5}, point)

	params := a.intersectionParams(b)
	assert.Equal(t, 0.5, params.t)
	assert.Equal(t, 0.5, params.u)

	point, ok = a.IntersectionDefault(b)
	assert.True(t, ok)
	assert.Equal(t, Vector{5, 5}, point)

	assert.True(t, a.IntersectsSegment(b, true))
	assert.True(t, a.IntersectsSegment(b, false))
	assert.True(t, b.IntersectsSegment(a, false))

	// Pull one segment away so only the infinite lines cross
	moved := b.Move(Vector{20, 0})
	_, ok = a.Intersection(moved, true)
	assert.False(t, ok)
	assert.False(t, a.IntersectsSegment(moved, true))
}

func TestIntersection_Parallel(t *testing.T) {
	a, b := loadSegmentPair("parallel")
	for _, collinearOverlapsIntersect := range []bool{true, false} {
		_, ok := a.Intersection(b, collinearOverlapsIntersect)
		assert.False(t, ok)
	}
	assert.False(t, a.IntersectsSegment(b, true))
	assert.False(t, a.IntersectsSegment(b, false))
}

func TestIntersection_Collinear(t *testing.T) {
	a, b := loadSegmentPair("collinear")

	_, ok := a.Intersection(b, true)
	assert.True(t, ok)
	_, ok = b.Intersection(a, true)
	assert.True(t, ok)
	_, ok = a.Intersection(b, false)
	assert.False(t, ok)

	// The determinant test can't see overlaps
	assert.False(t, a.IntersectsSegment(b, true))

	// Collinear but disjoint
	far := a.Move(Vector{20, 0})
	_, ok = a.Intersection(far, true)
	assert.False(t, ok)
	_, ok = far.Intersection(a, true)
	assert.False(t, ok)
}

func TestIntersection_TouchingEndpoint(t *testing.T) {
	bar, stem := loadSegmentPair("tee")

	point, ok := bar.Intersection(stem, true)
	require.True(t, ok)
	assert.Equal(t, Vector{5, 0}, point)

	assert.True(t, bar.IntersectsSegment(stem, true))
	assert.False(t, bar.IntersectsSegment(stem, false))
}

func TestIntersectsCircle(t *testing.T) {
	f := LoadFixture("circles")
	require.Len(t, f.Segments, 1)
	segment := f.Segments[0]
	require.Equal(t, horizontal, segment)

	expectations := map[string]bool{
		"tangent":    true,
		"clear":      false,
		"past-end":   false,
		"beyond-end": true,
		"swallowed":  true,
	}
	for id, expected := range expectations {
		circle, ok := f.Circles[id]
		require.True(t, ok, "missing circle %q", id)
		assert.Equal(t, expected, segment.IntersectsCircle(circle), fmt.Sprintf("circle %q", id))
	}
}

func TestNullSegment(t *testing.T) {
	assert.True(t, Null.IsNull())
	assert.True(t, Null == NewLineSegment(NullVector, NullVector))
	assert.False(t, LineSegment{}.IsNull())
	assert.False(t, horizontal.IsNull())
	assert.False(t, NewLineSegment(Vector{}, NullVector).IsNull())
	// Infinity swallows any finite movement
	assert.True(t, Null.Move(Vector{1, 1}).IsNull())
}

func TestSegmentString(t *testing.T) {
	assert.Equal(t, "[(0, 0)], [(10, 0)]", horizontal.String())
}
