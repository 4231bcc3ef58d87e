package shapes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Points are plain values. Shapes copy them freely, so nothing ever aliases a
// vertex between two shapes.
type Point struct {
	X float64
	Y float64
}

func (p Point) vec() r2.Vec {
	return r2.Vec(p)
}

func (p Point) Add(q Point) Point {
	return Point(r2.Add(p.vec(), q.vec()))
}

func (p Point) Sub(q Point) Point {
	return Point(r2.Sub(p.vec(), q.vec()))
}

func (p Point) Scale(f float64) Point {
	return Point(r2.Scale(f, p.vec()))
}

func (p Point) Dot(q Point) float64 {
	return r2.Dot(p.vec(), q.vec())
}

// Z component of the 3D cross product. Positive when q is counterclockwise
// from p.
func (p Point) Cross(q Point) float64 {
	return r2.Cross(p.vec(), q.vec())
}

func (p Point) Length() float64 {
	return r2.Norm(p.vec())
}

func (p Point) Distance(q Point) float64 {
	return q.Sub(p).Length()
}

// Unit vector in the same direction. The zero vector normalizes to itself.
func (p Point) Normalized() Point {
	if p.X == 0 && p.Y == 0 {
		return p
	}
	return Point(r2.Unit(p.vec()))
}

// The vector rotated 90 degrees counterclockwise.
func (p Point) Perpendicular() Point {
	return Point{-p.Y, p.X}
}

// Whether both coordinates are real numbers, neither NaN nor infinite.
func (p Point) Finite() bool {
	return finite(p.X) && finite(p.Y)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (p Point) Equal(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Arithmetic mean of a set of points.
func Centroid(points []Point) Point {
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}

// Twice the signed area of the polygon formed by the points. Positive for
// counterclockwise winding.
func signedArea2(points []Point) float64 {
	var sum float64
	for i, p := range points {
		next := points[CircularIndex(i+1, len(points))]
		sum += p.Cross(next)
	}
	return sum
}
