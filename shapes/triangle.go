package shapes

import (
	"fmt"
	"math"
	"strings"
)

// Index convention: 0 is A, 1 is B, 2 is C. Edges are AB, BC, CA.
type Triangle struct {
	polygon

	// Interior angles in radians; Angles[i] is the angle at Vertices[i].
	angles [3]float64
	// Heights[i] is the altitude from Vertices[i] to the line through
	// Edges[(i+1)%3].
	heights [3]Segment

	// Set by the side-angle-side constructor, whose angles come from the laws
	// of sines and cosines instead of the vertex positions.
	solvedAngles bool
}

var _ Polygon = (*Triangle)(nil)

func NewTriangle(a, b, c Point) (*Triangle, error) {
	t := &Triangle{polygon: polygon{vertices: []Point{a, b, c}}}
	err := build(func() {
		checkTriangle(a, b, c)
		initialize(t)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Builds the triangle spanned by two segments that share an endpoint. The
// first segment supplies A and B, and the far end of the second supplies C.
func NewTriangleFromSegments(first, second Segment) (*Triangle, error) {
	var third Point
	switch {
	case second.PointA.Equal(first.PointA), second.PointA.Equal(first.PointB):
		third = second.PointB
	case second.PointB.Equal(first.PointA), second.PointB.Equal(first.PointB):
		third = second.PointA
	default:
		return nil, wrapf(ErrInvalidTopology, "segments %v and %v share no endpoint", first, second)
	}
	if third.Equal(first.PointA) || third.Equal(first.PointB) {
		return nil, wrapf(ErrInvalidTopology, "segments %v and %v coincide", first, second)
	}
	return NewTriangle(first.PointA, first.PointB, third)
}

// Side-angle-side construction: A at a, B at distance ab along +X, and C at
// distance ac rotated alphaDegrees counterclockwise from AB. BC comes from the
// law of cosines, the angle at B from the law of sines and the angle at C from
// the angle sum.
func NewTriangleSAS(a Point, ab, ac, alphaDegrees float64) (*Triangle, error) {
	if !a.Finite() {
		return nil, wrapf(ErrDegenerateTriangle, "non-finite vertex %v", a)
	}
	if !(ab > 0 && ac > 0 && finite(ab) && finite(ac)) {
		return nil, wrapf(ErrDegenerateTriangle, "side lengths must be positive and finite, got ab=%g ac=%g", ab, ac)
	}
	if !(alphaDegrees > 0 && alphaDegrees < 180) {
		return nil, wrapf(ErrDegenerateTriangle, "angle %g° outside (0°, 180°)", alphaDegrees)
	}

	alpha := alphaDegrees * Deg2Rad
	bc := math.Sqrt(ab*ab + ac*ac - 2*ab*ac*math.Cos(alpha))
	if !(bc > Tolerance) {
		return nil, wrapf(ErrDegenerateTriangle, "side bc has zero length")
	}

	sinBeta := math.Min(1, math.Sin(alpha)*ac/bc)
	beta := math.Asin(sinBeta)
	// Asin only reaches acute angles. B is obtuse exactly when AC is longer than
	// the hypotenuse a right angle at B would give.
	if ac*ac > ab*ab+bc*bc {
		beta = math.Pi - beta
	}
	gamma := math.Pi - alpha - beta
	if !(gamma > 0) {
		return nil, wrapf(ErrDegenerateTriangle, "angle at C is %g rad", gamma)
	}

	b := a.Add(Point{X: ab})
	c := a.Add(Rotate(Point{}, Point{X: ac}, alphaDegrees))
	t := &Triangle{
		polygon:      polygon{vertices: []Point{a, b, c}},
		angles:       [3]float64{alpha, beta, gamma},
		solvedAngles: true,
	}
	err := build(func() {
		checkTriangle(a, b, c)
		initialize(t)
	})
	if err != nil {
		return nil, err
	}
	t.solvedAngles = false
	return t, nil
}

// Equilateral triangle inscribed in the circle of the given radius. The first
// vertex is straight up from center.
func NewEquilateralTriangle(center Point, radius float64) (*Triangle, error) {
	if !center.Finite() {
		return nil, wrapf(ErrDegenerateTriangle, "non-finite center %v", center)
	}
	if !(radius > 0 && finite(radius)) {
		return nil, wrapf(ErrDegenerateTriangle, "radius must be positive and finite, got %g", radius)
	}
	a := center.Add(Point{Y: radius})
	b := Rotate(center, a, 120)
	c := Rotate(center, a, -120)
	return NewTriangle(a, b, c)
}

// Copy constructor. The result shares no state with other.
func NewTriangleFrom(other *Triangle) *Triangle {
	return other.Clone()
}

// Rejects coincident and collinear points up front, so the pipeline never sees
// a zero-area triangle.
func checkTriangle(a, b, c Point) {
	if !a.Finite() || !b.Finite() || !c.Finite() {
		throwf(ErrDegenerateTriangle, "non-finite vertex in %v, %v, %v", a, b, c)
	}
	if a.Equal(b) || b.Equal(c) || c.Equal(a) {
		throwf(ErrDegenerateTriangle, "coincident vertices in %v, %v, %v", a, b, c)
	}
	ab := b.Sub(a)
	ac := c.Sub(a)
	if !(math.Abs(ab.Cross(ac)) > Tolerance*ab.Length()*ac.Length()) {
		throwf(ErrDegenerateTriangle, "collinear vertices %v, %v, %v", a, b, c)
	}
}

func (t *Triangle) deriveExtras() {
	t.storeHeights()
	if !t.solvedAngles {
		t.calculateAngles()
	}
}

func (t *Triangle) storeHeights() {
	for i := range t.heights {
		vertex := t.vertices[i]
		t.heights[i] = mustSegment(vertex, t.edges[CircularIndex(i+1, 3)].PerpendicularPoint(vertex))
	}
}

func (t *Triangle) calculateAngles() {
	ab := t.edges[0].Vector()
	bc := t.edges[1].Vector()
	ca := t.edges[2].Vector()
	t.angles[0] = Angle(ab, ca.Scale(-1))
	t.angles[1] = Angle(ab.Scale(-1), bc)
	t.angles[2] = math.Pi - t.angles[0] - t.angles[1]
	for i, angle := range t.angles {
		if !(angle > 0 && angle < math.Pi) {
			throwf(ErrDegenerateTriangle, "angle %d is %g rad", i, angle)
		}
	}
}

// Two sides and the angle between them: BC and CA meet at C.
func (t *Triangle) calculateArea() {
	t.area = 0.5 * t.edges[1].Length() * t.edges[2].Length() * math.Sin(t.angles[2])
}

// Interior angles in radians.
func (t *Triangle) Angles() [3]float64 {
	return t.angles
}

func (t *Triangle) AnglesDegrees() [3]float64 {
	var degrees [3]float64
	for i, angle := range t.angles {
		degrees[i] = angle * Rad2Deg
	}
	return degrees
}

func (t *Triangle) Heights() [3]Segment {
	return t.heights
}

func (t *Triangle) Translate(direction Point) {
	t.polygon.Translate(direction)
	for i := range t.heights {
		t.heights[i].Translate(direction)
	}
}

func (t *Triangle) Rotate(degrees float64) {
	t.polygon.Rotate(degrees)
	for i := range t.heights {
		t.heights[i].Rotate(t.center, degrees)
	}
}

// Of the vertices inside rectangle, the one farthest from the rectangle's
// boundary. Reports false when no vertex is inside. On ties the later vertex
// wins.
func (t *Triangle) DeepestVertexIn(rectangle *Rectangle) (Point, bool) {
	var (
		deepest  Point
		found    bool
		greatest = math.Inf(-1)
	)
	for _, v := range t.VerticesInside(rectangle) {
		distance := v.Distance(rectangle.ClosestPerpendicularPointTo(v))
		if distance >= greatest {
			deepest = v
			greatest = distance
			found = true
		}
	}
	return deepest, found
}

func (t *Triangle) CheckCollisions(query CollisionQuery, mask LayerMask) ([]Handle, error) {
	return checkCollisions(query, t, mask)
}

// Collisions the triangle would have if its center were at position.
func (t *Triangle) CheckCollisionsAt(query CollisionQuery, position Point, mask LayerMask) ([]Handle, error) {
	return checkCollisionsAt(query, t, t.Clone(), position, mask)
}

func (t *Triangle) Clone() *Triangle {
	return &Triangle{
		polygon: t.polygon.clone(),
		angles:  t.angles,
		heights: t.heights,
	}
}

func (t *Triangle) String() string {
	var sb strings.Builder
	t.writeString(&sb)
	angles := t.AnglesDegrees()
	fmt.Fprintf(&sb, "Angles: %g°, %g°, %g°\n", angles[0], angles[1], angles[2])
	fmt.Fprintf(&sb, "Heights: %s\n", joinStrings(t.heights[:]))
	return sb.String()
}
