package scene

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/hedra/shapes"
)

// Parses the plain point list format: newline separated points in the form
// "x y", with each shape separated by a blank line. Three points make a
// triangle and four a rectangle. Lines starting with # are comments.
func ParsePoints(r io.Reader) (*Scene, error) {
	s := &Scene{}
	scanner := bufio.NewScanner(r)
	var points []shapes.Point
	lineNumber := 0

	flush := func() error {
		if len(points) == 0 {
			return nil
		}
		entry, err := pointsEntry(points, len(s.Entries))
		if err != nil {
			return errors.Wrapf(err, "shape ending on line %d", lineNumber)
		}
		s.Entries = append(s.Entries, entry)
		points = nil
		return nil
	}

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the shape
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read points")
	}

	// Handle trailing shape if any
	if err := flush(); err != nil {
		return nil, err
	}
	return s, nil
}

func pointsEntry(points []shapes.Point, index int) (Entry, error) {
	switch len(points) {
	case 3:
		t, err := shapes.NewTriangle(points[0], points[1], points[2])
		if err != nil {
			return Entry{}, err
		}
		return Entry{Name: fmt.Sprintf("triangle%d", index), Shape: t}, nil
	case 4:
		r, err := shapes.NewRectangleFromPoints(points[0], points[1], points[2], points[3])
		if err != nil {
			return Entry{}, err
		}
		return Entry{Name: fmt.Sprintf("rectangle%d", index), Shape: r}, nil
	default:
		return Entry{}, errors.Wrapf(shapes.ErrNotSupported, "shape with %d points", len(points))
	}
}

func parsePoint(line string) (shapes.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return shapes.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return shapes.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return shapes.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return shapes.Point{X: x, Y: y}, nil
}
