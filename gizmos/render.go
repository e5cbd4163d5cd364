package gizmos

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the drawing so shapes on the edge stay visible
const dbgDrawPadding = 100

var ErrNothingToDraw = errors.New("no gizmo has finite bounds")

func (e Entry) finite() bool {
	return e.Bounds[0].IsFinite() && e.Bounds[1].IsFinite()
}

// Entries that can be framed. Anything touching infinity or NaN, like
// geom.Null, would blow up the canvas size.
func (q *Queue) drawable() []Entry {
	var result []Entry
	for _, entry := range q.entries {
		if entry.Draw != nil && entry.finite() {
			result = append(result, entry)
		}
	}
	return result
}

// Draw every entry onto a black canvas sized to fit them all. The context is
// flipped so the origin is at the bottom left, like the geometry itself.
// Entries with non-finite bounds are skipped.
func (q *Queue) Render(scale float64) *gg.Context {
	entries := q.drawable()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, entry := range entries {
		for _, corner := range entry.Bounds {
			minX = math.Min(minX, corner.X)
			minY = math.Min(minY, corner.Y)
			maxX = math.Max(maxX, corner.X)
			maxY = math.Max(maxY, corner.Y)
		}
	}
	if len(entries) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, entry := range entries {
		c.SetColor(entry.Color)
		entry.Draw(c)
		c.Stroke()
	}
	return c
}

// SavePNG fails with ErrNothingToDraw when the queue has entries but none of
// them can be framed.
func (q *Queue) SavePNG(path string, scale float64) error {
	if len(q.entries) > 0 && len(q.drawable()) == 0 {
		return errors.Wrapf(ErrNothingToDraw, "save gizmos to %q", path)
	}
	if err := q.Render(scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "save gizmos to %q", path)
	}
	return nil
}

// Save the render and print it inline to an iTerm compatible terminal.
func (q *Queue) Show(path string, scale float64, w io.Writer) error {
	if err := q.SavePNG(path, scale); err != nil {
		return err
	}
	if err := imgcat.CatFile(path, w); err != nil {
		return errors.Wrapf(err, "print %q", path)
	}
	return nil
}
