package main

import (
	"os"

	"github.com/osuushi/segments/geom"
	"github.com/rs/zerolog"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line access to the segment queries, mostly for checking geometry by
// hand and for rendering scenes while debugging game logic.
//
// Coordinates are positional arguments. Put "--" before them if any are
// negative, so they aren't mistaken for flags.

var (
	app     = kingpin.New("segtool", "Query and draw 2D line segments.")
	verbose = app.Flag("verbose", "Log debug output.").Short('v').Bool()

	inspectCmd     = app.Command("inspect", "Print length, slope, angle, midpoint and direction of a segment.")
	inspectSegment = addSegmentArgs(inspectCmd, "x1", "y1", "x2", "y2")

	intersectCmd              = app.Command("intersect", "Test two segments for intersection.")
	intersectA                = addSegmentArgs(intersectCmd, "x1", "y1", "x2", "y2")
	intersectB                = addSegmentArgs(intersectCmd, "x3", "y3", "x4", "y4")
	intersectExcludeEndpoints = intersectCmd.Flag("exclude-endpoints", "Segments touching only at an endpoint don't intersect.").Bool()
	intersectNoCollinear      = intersectCmd.Flag("no-collinear", "Collinear overlapping segments don't intersect.").Bool()

	closestCmd     = app.Command("closest", "Find the closest point on a segment to a point.")
	closestSegment = addSegmentArgs(closestCmd, "x1", "y1", "x2", "y2")
	closestPoint   = addVectorArgs(closestCmd, "px", "py")

	circleCmd     = app.Command("circle", "Test a segment against a circle.")
	circleSegment = addSegmentArgs(circleCmd, "x1", "y1", "x2", "y2")
	circleCenter  = addVectorArgs(circleCmd, "cx", "cy")
	circleRadius  = circleCmd.Arg("r", "Circle radius.").Required().Float64()

	pickCmd        = app.Command("pick", "Pick the min or max of a range by a normalized value.")
	pickMin        = pickCmd.Arg("min", "Value picked at or below 0.5.").Required().String()
	pickMax        = pickCmd.Arg("max", "Value picked above 0.5.").Required().String()
	pickNormalized = pickCmd.Arg("t", "Normalized value in [0, 1].").Required().Float64()

	drawCmd   = app.Command("draw", "Render a YAML scene of segments and circles to PNG.")
	drawScene = drawCmd.Arg("scene", "Scene file.").Required().ExistingFile()
	drawOut   = drawCmd.Flag("out", "PNG output path.").Short('o').Default("segtool.png").String()
	drawScale = drawCmd.Flag("scale", "Pixels per unit.").Default("20").Float64()
	drawShow  = drawCmd.Flag("show", "Also print the image to the terminal (iTerm).").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	var err error
	switch command {
	case inspectCmd.FullCommand():
		err = runInspect(os.Stdout, inspectSegment.segment())
	case intersectCmd.FullCommand():
		err = runIntersect(os.Stdout, intersectA.segment(), intersectB.segment(), !*intersectExcludeEndpoints, !*intersectNoCollinear)
	case closestCmd.FullCommand():
		err = runClosest(os.Stdout, closestSegment.segment(), closestPoint.vector())
	case circleCmd.FullCommand():
		circle := geom.Circle{Center: circleCenter.vector(), Radius: *circleRadius}
		err = runCircle(os.Stdout, circleSegment.segment(), circle)
	case pickCmd.FullCommand():
		err = runPick(os.Stdout, *pickMin, *pickMax, *pickNormalized)
	case drawCmd.FullCommand():
		err = runDraw(os.Stdout, logger, drawOptions{
			scenePath: *drawScene,
			outPath:   *drawOut,
			scale:     *drawScale,
			show:      *drawShow,
		})
	}
	app.FatalIfError(err, "%s", command)
}

type vectorArgs struct {
	x, y *float64
}

func addVectorArgs(cmd *kingpin.CmdClause, x, y string) vectorArgs {
	return vectorArgs{
		x: cmd.Arg(x, "X coordinate.").Required().Float64(),
		y: cmd.Arg(y, "Y coordinate.").Required().Float64(),
	}
}

func (a vectorArgs) vector() geom.Vector {
	return geom.Vector{X: *a.x, Y: *a.y}
}

type segmentArgs struct {
	start, end vectorArgs
}

func addSegmentArgs(cmd *kingpin.CmdClause, x1, y1, x2, y2 string) segmentArgs {
	return segmentArgs{
		start: addVectorArgs(cmd, x1, y1),
		end:   addVectorArgs(cmd, x2, y2),
	}
}

func (a segmentArgs) segment() geom.LineSegment {
	return geom.NewLineSegment(a.start.vector(), a.end.vector())
}
