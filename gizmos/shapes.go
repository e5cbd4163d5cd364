package gizmos

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/segments/dbg"
	"github.com/osuushi/segments/geom"
)

// Register a segment as a ray from its start along End - Start.
func DrawSegment(q *Queue, segment geom.LineSegment, col color.Color) {
	q.Add(Entry{
		Name:   dbg.Name(segment),
		Kind:   KindSegment,
		Color:  col,
		Bounds: segmentBounds(segment),
		Draw: func(c *gg.Context) {
			drawRay(c, segment.Start, segment.End.Sub(segment.Start))
		},
	})
}

func DrawCircle(q *Queue, circle geom.Circle, col color.Color) {
	radius := geom.Vector{X: circle.Radius, Y: circle.Radius}
	q.Add(Entry{
		Name:   dbg.Name(circle),
		Kind:   KindCircle,
		Color:  col,
		Bounds: [2]geom.Vector{circle.Center.Sub(radius), circle.Center.Add(radius)},
		Draw: func(c *gg.Context) {
			c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
		},
	})
}

func drawRay(c *gg.Context, origin, direction geom.Vector) {
	end := origin.Add(direction)
	c.MoveTo(origin.X, origin.Y)
	c.LineTo(end.X, end.Y)
}

func segmentBounds(segment geom.LineSegment) [2]geom.Vector {
	return [2]geom.Vector{
		{X: math.Min(segment.Start.X, segment.End.X), Y: math.Min(segment.Start.Y, segment.End.Y)},
		{X: math.Max(segment.Start.X, segment.End.X), Y: math.Max(segment.Start.Y, segment.End.Y)},
	}
}
