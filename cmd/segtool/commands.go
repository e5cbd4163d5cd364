package main

import (
	"fmt"
	"io"

	"github.com/osuushi/segments/bounds"
	"github.com/osuushi/segments/geom"
	"github.com/osuushi/segments/gizmos"
	"github.com/osuushi/segments/internal/scene"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func runInspect(w io.Writer, segment geom.LineSegment) error {
	fmt.Fprintf(w, "segment    %s\n", segment)
	fmt.Fprintf(w, "length     %g\n", segment.Length())
	fmt.Fprintf(w, "slope      %g\n", segment.Slope())
	fmt.Fprintf(w, "angle      %g\n", segment.FacingAngle())
	fmt.Fprintf(w, "midpoint   %s\n", segment.Midpoint())
	fmt.Fprintf(w, "direction  %s\n", segment.Direction())
	return nil
}

func runIntersect(w io.Writer, a, b geom.LineSegment, includeEndpoints, collinearOverlapsIntersect bool) error {
	fmt.Fprintf(w, "crosses       %t\n", a.IntersectsSegment(b, includeEndpoints))
	point, ok := a.Intersection(b, collinearOverlapsIntersect)
	if !ok {
		fmt.Fprintln(w, "intersection  none")
		return nil
	}
	// Collinear overlaps have no single point
	if geom.Equal(a.End.Sub(a.Start).Cross(b.End.Sub(b.Start)), 0) {
		fmt.Fprintln(w, "intersection  overlap")
		return nil
	}
	fmt.Fprintf(w, "intersection  %s\n", point)
	return nil
}

func runClosest(w io.Writer, segment geom.LineSegment, point geom.Vector) error {
	fmt.Fprintf(w, "closest    %s\n", segment.ClosestPoint(point))
	fmt.Fprintf(w, "distance   %g\n", segment.DirectedDistanceAlongParallel(point))
	fmt.Fprintf(w, "contains   %t\n", segment.ContainsPoint(point))
	return nil
}

func runCircle(w io.Writer, segment geom.LineSegment, circle geom.Circle) error {
	fmt.Fprintf(w, "intersects %t\n", segment.IntersectsCircle(circle))
	return nil
}

func runPick(w io.Writer, low, high string, normalized float64) error {
	value, err := bounds.New(low, high).Get(normalized)
	if err != nil {
		return errors.Wrap(err, "pick")
	}
	fmt.Fprintln(w, value)
	return nil
}

type drawOptions struct {
	scenePath string
	outPath   string
	scale     float64
	show      bool
}

func runDraw(w io.Writer, logger zerolog.Logger, opts drawOptions) error {
	s, err := scene.Load(opts.scenePath)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("scene", opts.scenePath).
		Int("segments", len(s.Segments)).
		Int("circles", len(s.Circles)).
		Msg("loaded scene")

	if !gizmos.Enabled {
		logger.Warn().Msg("gizmos are compiled out; nothing will be drawn")
	}

	var q gizmos.Queue
	s.Enqueue(&q)
	for _, entry := range q.Entries() {
		logger.Debug().Msg(entry.String())
	}

	for _, hit := range s.Intersections() {
		fmt.Fprintf(w, "segments %d and %d cross at %s\n", hit.A, hit.B, hit.Point)
	}
	for _, hit := range s.CircleHits() {
		fmt.Fprintf(w, "segment %d touches circle %d\n", hit.Segment, hit.Circle)
	}

	if opts.show {
		err = q.Show(opts.outPath, opts.scale, w)
	} else {
		err = q.SavePNG(opts.outPath, opts.scale)
	}
	if err != nil {
		return err
	}
	logger.Info().Str("out", opts.outPath).Int("entries", q.Len()).Msg("rendered scene")
	return nil
}
