package geom

import (
	"fmt"
	"math"
)

// Vector is used both for positions and for displacements between them.
type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// NullVector is the sentinel point meaning "no point". It is never produced by
// arithmetic on finite vectors, so it has to be checked for explicitly.
var NullVector = Vector{X: math.Inf(1), Y: math.Inf(1)}

func (v Vector) IsNull() bool {
	return v == NullVector
}

// IsFinite is false if either coordinate is infinite or NaN. NullVector is not
// finite.
func (v Vector) IsFinite() bool {
	return !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsNaN(v.X) && !math.IsNaN(v.Y)
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) Div(s float64) Vector {
	return Vector{v.X / s, v.Y / s}
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Z component of the 3D cross product, treating both vectors as lying in the
// XY plane. Positive when other is counterclockwise of v.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) SqrMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Unit vector in the same direction. The zero vector has no direction, so it
// normalizes to itself.
func (v Vector) Normalized() Vector {
	l := v.Magnitude()
	if l == 0 {
		return Vector{}
	}
	return v.Div(l)
}

func (v Vector) Distance(other Vector) float64 {
	return v.Sub(other).Magnitude()
}

// Angle of the vector in degrees, counterclockwise from +X, in (-180, 180].
func (v Vector) FacingAngle() float64 {
	return radiansToDegrees(math.Atan2(v.Y, v.X))
}

// Rotate about the origin. Positive degrees rotate counterclockwise.
func (v Vector) Rotate(degrees float64) Vector {
	radians := degreesToRadians(degrees)
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

func (v Vector) RotateAround(pivot Vector, degrees float64) Vector {
	return v.Sub(pivot).Rotate(degrees).Add(pivot)
}

func (v Vector) ApproxEqual(other Vector) bool {
	return Equal(v.X, other.X) && Equal(v.Y, other.Y)
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
