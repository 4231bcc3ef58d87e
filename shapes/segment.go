package shapes

import (
	"fmt"

	"github.com/pkg/errors"
)

// A directed line segment from PointA to PointB. The zero value is not a valid
// segment; build them with NewSegment.
type Segment struct {
	PointA Point
	PointB Point
}

func NewSegment(a, b Point) (Segment, error) {
	if !a.Finite() || !b.Finite() {
		return Segment{}, errors.Wrapf(ErrDegenerateSegment, "non-finite endpoint in %v, %v", a, b)
	}
	if a.Equal(b) {
		return Segment{}, errors.Wrapf(ErrDegenerateSegment, "endpoints coincide at %v", a)
	}
	return Segment{PointA: a, PointB: b}, nil
}

// Used inside construction pipelines, where a failure throws instead of
// returning.
func mustSegment(a, b Point) Segment {
	s, err := NewSegment(a, b)
	if err != nil {
		throw(err)
	}
	return s
}

func (s Segment) Vector() Point {
	return s.PointB.Sub(s.PointA)
}

func (s Segment) Length() float64 {
	return s.Vector().Length()
}

func (s Segment) Midpoint() Point {
	return s.PointA.Add(s.PointB).Scale(0.5)
}

// Foot of the perpendicular dropped from p onto the infinite line through the
// segment. The result is not clamped to the segment; see ClosestPoint.
func (s Segment) PerpendicularPoint(p Point) Point {
	return s.PointA.Add(s.Vector().Scale(s.projection(p)))
}

// Closest point to p that lies on the segment itself.
func (s Segment) ClosestPoint(p Point) Point {
	t := s.projection(p)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.PointA.Add(s.Vector().Scale(t))
}

// Parameter of p's projection along the segment, where 0 is PointA and 1 is
// PointB.
func (s Segment) projection(p Point) float64 {
	v := s.Vector()
	return p.Sub(s.PointA).Dot(v) / v.Dot(v)
}

func (s *Segment) Translate(direction Point) {
	s.PointA = s.PointA.Add(direction)
	s.PointB = s.PointB.Add(direction)
}

func (s *Segment) Rotate(pivot Point, degrees float64) {
	s.PointA = Rotate(pivot, s.PointA, degrees)
	s.PointB = Rotate(pivot, s.PointB, degrees)
}

func (s Segment) String() string {
	return fmt.Sprintf("%v -> %v", s.PointA, s.PointB)
}
