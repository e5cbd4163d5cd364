// Package gizmos is a debug drawing queue for geometry. Callers own a Queue,
// register shapes into it while running game logic or tooling, and render the
// whole thing to an image afterwards.
//
// A Queue is not safe for concurrent use. Register from the one thread that
// drives updates or rendering.
package gizmos

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/segments/geom"
)

type Kind int

const (
	KindCustom Kind = iota
	KindSegment
	KindCircle
)

type Entry struct {
	Name  string
	Kind  Kind
	Color color.Color
	// Corners of the axis aligned box the drawing fits in, used to frame the
	// render.
	Bounds [2]geom.Vector
	// Adds a path to the context. The queue sets the color and strokes it.
	Draw func(c *gg.Context)
}

type Queue struct {
	entries []Entry
}

// Add an entry. With gizmos compiled out this does nothing. Entries without a
// Draw func are dropped.
func (q *Queue) Add(entry Entry) {
	if !Enabled || entry.Draw == nil {
		return
	}
	if entry.Color == nil {
		entry.Color = color.White
	}
	q.entries = append(q.entries, entry)
}

func (q *Queue) Entries() []Entry {
	return q.entries
}

func (q *Queue) Len() int {
	return len(q.entries)
}

func (q *Queue) Clear() {
	q.entries = nil
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s → %s", e.DbgName(), e.Bounds[0], e.Bounds[1])
}

// Name colored by what kind of thing it is. Zero sized entries are red, since
// they draw nothing visible.
func (e Entry) DbgName() string {
	switch {
	case e.Bounds[0] == e.Bounds[1]:
		return aurora.Red(e.Name).String()
	case e.Kind == KindSegment:
		return aurora.Cyan(e.Name).String()
	case e.Kind == KindCircle:
		return aurora.Magenta(e.Name).String()
	}
	return aurora.Green(e.Name).String()
}
