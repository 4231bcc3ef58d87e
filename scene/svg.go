package scene

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/hedra/shapes"
)

// This is not a full (or even correct) svg parser. It picks out <polygon>
// elements with three or four points and <rect> elements, and ignores
// everything else, including transforms. Coordinates are taken as is, so the
// y axis points down relative to the SVG's rendering.
//
// An element's id becomes the entry name, and a data-layer attribute sets its
// layer.
func ParseSVG(r io.Reader) (*Scene, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	s := &Scene{}
	for i, el := range root.FindAll("polygon") {
		points, err := parsePointList(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}

		var (
			shape shapes.Polygon
			kind  string
		)
		switch len(points) {
		case 3:
			kind = "triangle"
			shape, err = shapes.NewTriangle(points[0], points[1], points[2])
		case 4:
			kind = "rectangle"
			shape, err = shapes.NewRectangleFromPoints(points[0], points[1], points[2], points[3])
		default:
			return nil, errors.Wrapf(shapes.ErrNotSupported, "polygon %d has %d points", i, len(points))
		}
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		entry, err := svgEntry(el, kind, len(s.Entries), shape)
		if err != nil {
			return nil, err
		}
		s.Entries = append(s.Entries, entry)
	}

	for i, el := range root.FindAll("rect") {
		var values [4]float64
		for j, attr := range []string{"x", "y", "width", "height"} {
			values[j], err = parseFloatAttribute(el, attr)
			if err != nil {
				return nil, errors.Wrapf(err, "rect %d", i)
			}
		}
		min := shapes.Point{X: values[0], Y: values[1]}
		max := min.Add(shapes.Point{X: values[2], Y: values[3]})
		shape, err := shapes.NewRectangleFromCorners(min, max)
		if err != nil {
			return nil, errors.Wrapf(err, "rect %d", i)
		}
		entry, err := svgEntry(el, "rectangle", len(s.Entries), shape)
		if err != nil {
			return nil, err
		}
		s.Entries = append(s.Entries, entry)
	}
	return s, nil
}

func svgEntry(el *svgparser.Element, kind string, index int, shape shapes.Polygon) (Entry, error) {
	entry := Entry{Name: el.Attributes["id"], Shape: shape}
	if entry.Name == "" {
		entry.Name = fmt.Sprintf("%s%d", kind, index)
	}
	if layer, ok := el.Attributes["data-layer"]; ok {
		n, err := strconv.Atoi(layer)
		if err != nil {
			return Entry{}, errors.Wrapf(err, "%s: invalid layer", entry.Name)
		}
		entry.Layer = n
	}
	return entry, nil
}

// Parses "x1,y1 x2,y2 ...". Whitespace around commas is tolerated.
func parsePointList(s string) ([]shapes.Point, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]shapes.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, shapes.Point{X: x, Y: y})
	}
	return points, nil
}

func parseFloatAttribute(el *svgparser.Element, name string) (float64, error) {
	raw, ok := el.Attributes[name]
	if !ok {
		if name == "x" || name == "y" {
			return 0, nil
		}
		return 0, errors.Errorf("missing %s attribute", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "px"), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s attribute %q", name, raw)
	}
	return v, nil
}
