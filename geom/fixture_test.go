package geom

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into segments and circles. It only
// understands <line> and <circle> elements with plain numeric attributes, which
// is all the fixtures use. If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type Fixture struct {
	Segments []LineSegment
	// Circles keyed by their id attribute
	Circles map[string]Circle
}

func LoadFixture(name string) Fixture {
	file, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer file.Close()
	rootEl, err := svgparser.Parse(file, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	result := Fixture{Circles: make(map[string]Circle)}
	for _, lineEl := range rootEl.FindAll("line") {
		result.Segments = append(result.Segments, LineSegment{
			Start: Vector{parseAttr(name, "line", lineEl, "x1"), parseAttr(name, "line", lineEl, "y1")},
			End:   Vector{parseAttr(name, "line", lineEl, "x2"), parseAttr(name, "line", lineEl, "y2")},
		})
	}
	for _, circleEl := range rootEl.FindAll("circle") {
		id := circleEl.Attributes["id"]
		if id == "" {
			log.Fatalf("Circle without id in fixture %q", name)
		}
		result.Circles[id] = Circle{
			Center: Vector{parseAttr(name, "circle", circleEl, "cx"), parseAttr(name, "circle", circleEl, "cy")},
			Radius: parseAttr(name, "circle", circleEl, "r"),
		}
	}
	return result
}

func parseAttr(fixtureName, tag string, el *svgparser.Element, attr string) float64 {
	raw, ok := el.Attributes[attr]
	if !ok {
		log.Fatalf("Missing %s on <%s> in fixture %q", attr, tag, fixtureName)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid %s value %q in fixture %q: %v", attr, raw, fixtureName, err)
	}
	return value
}

// Segments from a fixture that must contain exactly two lines.
func loadSegmentPair(name string) (LineSegment, LineSegment) {
	f := LoadFixture(name)
	if len(f.Segments) != 2 {
		log.Fatalf("Expected 2 segments in fixture %q, got %d", name, len(f.Segments))
	}
	return f.Segments[0], f.Segments[1]
}
