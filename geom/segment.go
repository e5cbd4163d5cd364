package geom

import "fmt"

// LineSegment is a pair of endpoints. It is a value type: every transform
// returns a new segment and leaves the receiver alone.
//
// Nothing is enforced about the endpoints. A segment whose endpoints coincide
// is legal, and queries on it give whatever IEEE arithmetic gives (NaN or
// infinite slopes, zero length, a zero direction) rather than errors.
type LineSegment struct {
	Start Vector `yaml:"start"`
	End   Vector `yaml:"end"`
}

// Null means "no segment". Callers that can receive it must check for it
// explicitly, since it is otherwise an ordinary (if useless) segment.
var Null = LineSegment{Start: NullVector, End: NullVector}

// NewLineSegment builds the segment running from start to end.
func NewLineSegment(start, end Vector) LineSegment {
	return LineSegment{Start: start, End: end}
}

// IsNull reports whether s is exactly the Null sentinel. A segment with only
// one null endpoint is not Null.
func (s LineSegment) IsNull() bool {
	return s == Null
}

func (s LineSegment) String() string {
	return fmt.Sprintf("[%s], [%s]", s.Start, s.End)
}

// Rise over run. Vertical segments give ±Inf, and degenerate ones NaN.
func (s LineSegment) Slope() float64 {
	return (s.End.Y - s.Start.Y) / (s.End.X - s.Start.X)
}

// Angle in degrees of the vector from Start to End.
func (s LineSegment) FacingAngle() float64 {
	return s.End.Sub(s.Start).FacingAngle()
}

// Parametric line intersection test. If includeEndpoints is false, segments
// that only touch at an endpoint do not count.
//
// Parallel lines (zero denominator) never intersect here, even when the
// segments are collinear and overlap. Use Intersection to detect overlap.
func (s LineSegment) IntersectsSegment(other LineSegment, includeEndpoints bool) bool {
	denominator := (other.End.Y-other.Start.Y)*(s.End.X-s.Start.X) - (other.End.X-other.Start.X)*(s.End.Y-s.Start.Y)
	if denominator == 0 {
		return false
	}
	uA := ((other.End.X-other.Start.X)*(s.Start.Y-other.Start.Y) - (other.End.Y-other.Start.Y)*(s.Start.X-other.Start.X)) / denominator
	uB := ((s.End.X-s.Start.X)*(s.Start.Y-other.Start.Y) - (s.End.Y-s.Start.Y)*(s.Start.X-other.Start.X)) / denominator
	if includeEndpoints {
		return uA >= 0 && uA <= 1 && uB >= 0 && uB <= 1
	}
	return uA > 0 && uA < 1 && uB > 0 && uB < 1
}

// Cross product parametrization of two segments p + t*r and q + u*s. t and u
// are only meaningful when rxs is not (approximately) zero.
type intersectionParams struct {
	r, s      Vector
	rxs, qpxr float64
	t, u      float64
}

func (s LineSegment) intersectionParams(other LineSegment) intersectionParams {
	var params intersectionParams
	params.r = s.End.Sub(s.Start)
	params.s = other.End.Sub(other.Start)
	qp := other.Start.Sub(s.Start)
	params.rxs = params.r.Cross(params.s)
	params.qpxr = qp.Cross(params.r)
	params.t = qp.Cross(params.s) / params.rxs
	params.u = params.qpxr / params.rxs
	return params
}

// Find the point where two segments cross. The point is only meaningful when
// the second return value is true and the segments are not collinear.
//
// Collinear segments (both the cross product of the directions and the cross
// product of the offset with this segment's direction are approximately zero)
// intersect when collinearOverlapsIntersect is set and either segment's start
// projects inside the other. No single point exists in that case, so the zero
// vector is returned.
func (s LineSegment) Intersection(other LineSegment, collinearOverlapsIntersect bool) (Vector, bool) {
	params := s.intersectionParams(other)
	parallel := Equal(params.rxs, 0)
	collinear := Equal(params.qpxr, 0)

	if parallel && collinear {
		if !collinearOverlapsIntersect {
			return Vector{}, false
		}
		qp := other.Start.Sub(s.Start)
		pq := s.Start.Sub(other.Start)
		startOfOtherInside := 0 <= qp.Dot(params.r) && qp.Dot(params.r) <= params.r.Dot(params.r)
		startInsideOther := 0 <= pq.Dot(params.s) && pq.Dot(params.s) <= params.s.Dot(params.s)
		return Vector{}, startOfOtherInside || startInsideOther
	}
	if parallel {
		return Vector{}, false
	}

	if 0 <= params.t && params.t <= 1 && 0 <= params.u && params.u <= 1 {
		return s.Start.Add(params.r.Scale(params.t)), true
	}
	return Vector{}, false
}

// Intersection with collinear overlaps counted as intersecting.
func (s LineSegment) IntersectionDefault(other LineSegment) (Vector, bool) {
	return s.Intersection(other, true)
}

// Uses the closest point on the segment to the circle's center, so a segment
// fully inside the circle intersects it.
func (s LineSegment) IntersectsCircle(c Circle) bool {
	return c.ContainsPoint(s.ClosestPoint(c.Center))
}

// Exact test that the point is on the segment: the distances to the endpoints
// must sum to the length. Float error means points a hair off the endpoints or
// the line itself can fail this.
func (s LineSegment) ContainsPoint(p Vector) bool {
	return p.Distance(s.Start)+p.Distance(s.End) == s.Start.Distance(s.End)
}

// Move translates both endpoints by movement.
func (s LineSegment) Move(movement Vector) LineSegment {
	return LineSegment{s.Start.Add(movement), s.End.Add(movement)}
}

// Rotate both endpoints about the pivot. Positive degrees are counterclockwise.
func (s LineSegment) Rotate(pivot Vector, degrees float64) LineSegment {
	return LineSegment{
		Start: s.Start.RotateAround(pivot, degrees),
		End:   s.End.RotateAround(pivot, degrees),
	}
}

// Closest point on the segment to p. Projections at or before Start snap to
// Start, and projections at or past the length snap to End.
func (s LineSegment) ClosestPoint(p Vector) Vector {
	distance := s.DirectedDistanceAlongParallel(p)
	length := s.Length()
	switch {
	case distance > 0 && distance < length:
		return s.PointWithDirectedDistance(distance)
	case distance >= length:
		return s.End
	default:
		return s.Start
	}
}

// Same length segment through the midpoint, turned a quarter turn.
func (s LineSegment) Perpendicular(clockwise bool) LineSegment {
	if clockwise {
		return s.Rotate(s.Midpoint(), -90)
	}
	return s.Rotate(s.Midpoint(), 90)
}

// Midpoint is halfway between Start and End.
func (s LineSegment) Midpoint() Vector {
	return s.Start.Add(s.End).Div(2)
}

// Signed distance from Start to the projection of p onto the segment's
// infinite line, positive toward End. Both the segment and the point are
// rotated about the origin until the segment is axis aligned, and the offset is
// read off the X axis.
func (s LineSegment) DirectedDistanceAlongParallel(p Vector) float64 {
	rotation := -s.FacingAngle()
	rotated := s.Rotate(Vector{}, rotation)
	p = p.Rotate(rotation)
	return p.X - rotated.Start.X
}

func (s LineSegment) PointWithDirectedDistance(distance float64) Vector {
	return s.Start.Add(s.Direction().Scale(distance))
}

// Length is the distance from Start to End.
func (s LineSegment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Unit vector from Start to End, or the zero vector for a degenerate segment.
func (s LineSegment) Direction() Vector {
	return s.End.Sub(s.Start).Normalized()
}

// Flip swaps Start and End.
func (s LineSegment) Flip() LineSegment {
	return LineSegment{s.End, s.Start}
}
