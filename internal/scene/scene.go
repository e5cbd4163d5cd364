// Package scene loads YAML descriptions of segments and circles for segtool.
package scene

import (
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/segments/geom"
	"github.com/osuushi/segments/gizmos"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Scene struct {
	Segments []Segment `yaml:"segments"`
	Circles  []Circle  `yaml:"circles"`
}

type Segment struct {
	geom.LineSegment `yaml:",inline"`
	Color            string `yaml:"color"`
	rgba             color.RGBA
}

type Circle struct {
	geom.Circle `yaml:",inline"`
	Color       string `yaml:"color"`
	rgba        color.RGBA
}

func (s Segment) RGBA() color.RGBA { return s.rgba }
func (c Circle) RGBA() color.RGBA  { return c.rgba }

// A crossing between two segments of the scene, by index.
type Hit struct {
	A, B  int
	Point geom.Vector
}

// A segment touching a circle, by index.
type CircleHit struct {
	Segment, Circle int
}

func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scene %q", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %q", path)
	}
	return s, nil
}

func Parse(data []byte) (result *Scene, err error) {
	defer func() {
		recoveredErr := handleSceneRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "decode scene")
	}
	for i := range s.Segments {
		segment := s.Segments[i].LineSegment
		if !segment.Start.IsFinite() || !segment.End.IsFinite() {
			fatalf("segment %d: non-finite coordinate in %s", i, segment)
		}
		s.Segments[i].rgba = parseColor(s.Segments[i].Color, "segment", i)
	}
	for i := range s.Circles {
		if !s.Circles[i].Center.IsFinite() {
			fatalf("circle %d: non-finite center %s", i, s.Circles[i].Center)
		}
		if math.IsInf(s.Circles[i].Radius, 0) || math.IsNaN(s.Circles[i].Radius) {
			fatalf("circle %d: non-finite radius %v", i, s.Circles[i].Radius)
		}
		if s.Circles[i].Radius < 0 {
			fatalf("circle %d: negative radius %v", i, s.Circles[i].Radius)
		}
		s.Circles[i].rgba = parseColor(s.Circles[i].Color, "circle", i)
	}
	return &s, nil
}

// Colors are #rrggbb or #rrggbbaa. Empty means white.
func parseColor(raw, kind string, index int) color.RGBA {
	if raw == "" {
		return color.RGBA{255, 255, 255, 255}
	}
	hex := strings.TrimPrefix(raw, "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		fatalf("%s %d: invalid color %q", kind, index, raw)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		fatalf("%s %d: invalid color %q", kind, index, raw)
	}
	return color.RGBA{
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >> 8),
		A: uint8(value),
	}
}

// Register every element of the scene with a gizmo queue, segments first.
func (s *Scene) Enqueue(q *gizmos.Queue) {
	for _, segment := range s.Segments {
		gizmos.DrawSegment(q, segment.LineSegment, segment.rgba)
	}
	for _, circle := range s.Circles {
		gizmos.DrawCircle(q, circle.Circle, circle.rgba)
	}
}

// Every pair of segments that cross at a point. Collinear overlaps have no
// single point, so they are left out.
func (s *Scene) Intersections() []Hit {
	var hits []Hit
	for i := range s.Segments {
		for j := i + 1; j < len(s.Segments); j++ {
			point, ok := s.Segments[i].Intersection(s.Segments[j].LineSegment, false)
			if ok {
				hits = append(hits, Hit{A: i, B: j, Point: point})
			}
		}
	}
	return hits
}

func (s *Scene) CircleHits() []CircleHit {
	var hits []CircleHit
	for i, segment := range s.Segments {
		for j, circle := range s.Circles {
			if segment.IntersectsCircle(circle.Circle) {
				hits = append(hits, CircleHit{Segment: i, Circle: j})
			}
		}
	}
	return hits
}
