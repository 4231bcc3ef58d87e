package scene

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/hedra/shapes"
)

// A named shape loaded from a scene file.
type Entry struct {
	Name  string
	Layer int
	Shape shapes.Polygon
}

type Scene struct {
	Entries []Entry
}

// Loads a scene file, choosing the format by extension: .svg files are read as
// SVG, .txt files as point lists and anything else as YAML.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer f.Close()

	var s *Scene
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		s, err = ParseSVG(f)
	case ".txt":
		s, err = ParsePoints(f)
	default:
		s, err = Parse(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load scene %q", path)
	}
	return s, nil
}

// Registers every entry with a new world. The returned handles are in entry
// order.
func (s *Scene) World() (*World, []shapes.Handle, error) {
	w := NewWorld()
	handles := make([]shapes.Handle, len(s.Entries))
	for i, e := range s.Entries {
		h, err := w.Add(e.Shape, e.Layer)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "shape %q", e.Name)
		}
		handles[i] = h
	}
	return w, handles, nil
}

// The YAML scene format. Each shape entry sets exactly one of the shape kinds.
//
//	shapes:
//	  - name: ramp
//	    layer: 1
//	    triangle: {points: [[0, 0], [4, 0], [0, 3]]}
//	    rotate: 15
//	  - sas: {a: [5, 5], ab: 3, ac: 4, alpha: 90}
//	  - equilateral: {center: [0, 0], radius: 2}
//	  - segments: {first: [[0, 0], [2, 0]], second: [[2, 0], [1, 2]]}
//	  - rectangle: {center: [1, 1], width: 4, height: 2}
//	    translate: [0, -1]
type fileDoc struct {
	Shapes []shapeDoc `yaml:"shapes"`
}

type shapeDoc struct {
	Name      string          `yaml:"name"`
	Layer     int             `yaml:"layer"`
	Triangle  *triangleDoc    `yaml:"triangle"`
	Segments  *segmentsDoc    `yaml:"segments"`
	SAS       *sasDoc         `yaml:"sas"`
	Equilat   *equilateralDoc `yaml:"equilateral"`
	Rectangle *rectangleDoc   `yaml:"rectangle"`
	Translate vec             `yaml:"translate"`
	Rotate    float64         `yaml:"rotate"`
}

type vec []float64

type triangleDoc struct {
	Points []vec `yaml:"points"`
}

type segmentsDoc struct {
	First  []vec `yaml:"first"`
	Second []vec `yaml:"second"`
}

type sasDoc struct {
	A     vec     `yaml:"a"`
	AB    float64 `yaml:"ab"`
	AC    float64 `yaml:"ac"`
	Alpha float64 `yaml:"alpha"`
}

type equilateralDoc struct {
	Center vec     `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

type rectangleDoc struct {
	Center  vec     `yaml:"center"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Corners []vec   `yaml:"corners"`
	Points  []vec   `yaml:"points"`
}

func Parse(r io.Reader) (*Scene, error) {
	var doc fileDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode yaml")
	}

	s := &Scene{}
	for i, ss := range doc.Shapes {
		entry, err := ss.build(i)
		if err != nil {
			return nil, err
		}
		s.Entries = append(s.Entries, entry)
	}
	return s, nil
}

func (ss shapeDoc) build(index int) (Entry, error) {
	var (
		shape shapes.Polygon
		kind  string
		err   error
		set   int
	)
	if ss.Triangle != nil {
		set++
		kind = "triangle"
		shape, err = ss.Triangle.build()
	}
	if ss.Segments != nil {
		set++
		kind = "triangle"
		shape, err = ss.Segments.build()
	}
	if ss.SAS != nil {
		set++
		kind = "triangle"
		shape, err = ss.SAS.build()
	}
	if ss.Equilat != nil {
		set++
		kind = "triangle"
		shape, err = ss.Equilat.build()
	}
	if ss.Rectangle != nil {
		set++
		kind = "rectangle"
		shape, err = ss.Rectangle.build()
	}

	name := ss.Name
	if name == "" {
		name = fmt.Sprintf("%s%d", kind, index)
	}
	switch {
	case set == 0:
		return Entry{}, errors.Errorf("shape %d: no shape kind given", index)
	case set > 1:
		return Entry{}, errors.Errorf("shape %d: more than one shape kind given", index)
	case err != nil:
		return Entry{}, errors.Wrapf(err, "shape %q", name)
	}

	if ss.Translate != nil {
		d, err := ss.Translate.point()
		if err != nil {
			return Entry{}, errors.Wrapf(err, "shape %q: translate", name)
		}
		shape.Translate(d)
	}
	if ss.Rotate != 0 {
		shape.Rotate(ss.Rotate)
	}
	return Entry{Name: name, Layer: ss.Layer, Shape: shape}, nil
}

func (v vec) point() (shapes.Point, error) {
	if len(v) != 2 {
		return shapes.Point{}, errors.Errorf("point needs 2 coordinates, got %d", len(v))
	}
	return shapes.Point{X: v[0], Y: v[1]}, nil
}

func points(vs []vec, n int) ([]shapes.Point, error) {
	if len(vs) != n {
		return nil, errors.Errorf("expected %d points, got %d", n, len(vs))
	}
	result := make([]shapes.Point, n)
	for i, v := range vs {
		p, err := v.point()
		if err != nil {
			return nil, err
		}
		result[i] = p
	}
	return result, nil
}

func (s *triangleDoc) build() (shapes.Polygon, error) {
	p, err := points(s.Points, 3)
	if err != nil {
		return nil, err
	}
	return shapes.NewTriangle(p[0], p[1], p[2])
}

func (s *segmentsDoc) build() (shapes.Polygon, error) {
	first, err := segment(s.First)
	if err != nil {
		return nil, errors.Wrap(err, "first")
	}
	second, err := segment(s.Second)
	if err != nil {
		return nil, errors.Wrap(err, "second")
	}
	return shapes.NewTriangleFromSegments(first, second)
}

func segment(vs []vec) (shapes.Segment, error) {
	p, err := points(vs, 2)
	if err != nil {
		return shapes.Segment{}, err
	}
	return shapes.NewSegment(p[0], p[1])
}

func (s *sasDoc) build() (shapes.Polygon, error) {
	a, err := s.A.point()
	if err != nil {
		return nil, err
	}
	return shapes.NewTriangleSAS(a, s.AB, s.AC, s.Alpha)
}

func (s *equilateralDoc) build() (shapes.Polygon, error) {
	center, err := s.Center.point()
	if err != nil {
		return nil, err
	}
	return shapes.NewEquilateralTriangle(center, s.Radius)
}

func (s *rectangleDoc) build() (shapes.Polygon, error) {
	switch {
	case s.Points != nil:
		p, err := points(s.Points, 4)
		if err != nil {
			return nil, err
		}
		return shapes.NewRectangleFromPoints(p[0], p[1], p[2], p[3])
	case s.Corners != nil:
		p, err := points(s.Corners, 2)
		if err != nil {
			return nil, err
		}
		return shapes.NewRectangleFromCorners(p[0], p[1])
	default:
		center, err := s.Center.point()
		if err != nil {
			return nil, err
		}
		return shapes.NewRectangle(center, s.Width, s.Height)
	}
}
