// A 2D polygon geometry package for Go.
//
// Shapes are built once through a fixed pipeline that derives their edges,
// outward normals, center and area (and, for triangles, interior angles and
// altitudes), and keep all of it consistent through translation and rotation.
//
// This package re-exports the common entry points. See the shapes package for
// the full API, scene for the collision world and scene files, and gizmos for
// debug rendering.
package hedra

import "github.com/osuushi/hedra/shapes"

type Point = shapes.Point
type Segment = shapes.Segment
type Polygon = shapes.Polygon
type Triangle = shapes.Triangle
type Rectangle = shapes.Rectangle

var (
	ErrDegenerateSegment   = shapes.ErrDegenerateSegment
	ErrDegenerateTriangle  = shapes.ErrDegenerateTriangle
	ErrDegenerateRectangle = shapes.ErrDegenerateRectangle
	ErrInvalidTopology     = shapes.ErrInvalidTopology
	ErrNotSupported        = shapes.ErrNotSupported
)

func NewSegment(a, b Point) (Segment, error) {
	return shapes.NewSegment(a, b)
}

func NewTriangle(a, b, c Point) (*Triangle, error) {
	return shapes.NewTriangle(a, b, c)
}

func NewTriangleFromSegments(first, second Segment) (*Triangle, error) {
	return shapes.NewTriangleFromSegments(first, second)
}

// Side-angle-side construction. The angle is in degrees.
func NewTriangleSAS(a Point, ab, ac, alphaDegrees float64) (*Triangle, error) {
	return shapes.NewTriangleSAS(a, ab, ac, alphaDegrees)
}

func NewEquilateralTriangle(center Point, radius float64) (*Triangle, error) {
	return shapes.NewEquilateralTriangle(center, radius)
}

func NewRectangle(center Point, width, height float64) (*Rectangle, error) {
	return shapes.NewRectangle(center, width, height)
}

// Rotates point about pivot, counterclockwise in degrees.
func Rotate(pivot, point Point, degrees float64) Point {
	return shapes.Rotate(pivot, point, degrees)
}

// Unsigned angle between two vectors, in radians.
func Angle(u, v Point) float64 {
	return shapes.Angle(u, v)
}
