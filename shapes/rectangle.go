package shapes

import (
	"fmt"
	"math"
	"strings"
)

// A rectangle, not necessarily axis aligned. Width is the length of the first
// edge and Height the length of the second.
type Rectangle struct {
	polygon

	width  float64
	height float64
}

var _ Polygon = (*Rectangle)(nil)

// Axis aligned rectangle. Vertices start at the bottom left corner.
func NewRectangle(center Point, width, height float64) (*Rectangle, error) {
	if !center.Finite() {
		return nil, wrapf(ErrDegenerateRectangle, "non-finite center %v", center)
	}
	if !(width > 0 && height > 0 && finite(width) && finite(height)) {
		return nil, wrapf(ErrDegenerateRectangle, "size must be positive and finite, got %gx%g", width, height)
	}
	w, h := width/2, height/2
	return newRectangle(
		center.Add(Point{-w, -h}),
		center.Add(Point{w, -h}),
		center.Add(Point{w, h}),
		center.Add(Point{-w, h}),
	)
}

// Axis aligned rectangle spanning two opposite corners, in any order.
func NewRectangleFromCorners(a, b Point) (*Rectangle, error) {
	min := Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y)}
	max := Point{math.Max(a.X, b.X), math.Max(a.Y, b.Y)}
	return NewRectangle(min.Add(max).Scale(0.5), max.X-min.X, max.Y-min.Y)
}

// Rectangle from four corners given in ring order, either winding. Fails with
// ErrInvalidTopology if the corners do not form a rectangle.
func NewRectangleFromPoints(a, b, c, d Point) (*Rectangle, error) {
	corners := []Point{a, b, c, d}
	for _, corner := range corners {
		if !corner.Finite() {
			return nil, wrapf(ErrDegenerateRectangle, "non-finite corner %v", corner)
		}
	}
	for i, corner := range corners {
		prev := corners[CircularIndex(i-1, 4)]
		next := corners[CircularIndex(i+1, 4)]
		if corner.Equal(prev) || corner.Equal(next) {
			return nil, wrapf(ErrDegenerateRectangle, "coincident corners at %v", corner)
		}
		in := corner.Sub(prev)
		out := next.Sub(corner)
		if !(math.Abs(in.Dot(out)) <= Tolerance*in.Length()*out.Length()) {
			return nil, wrapf(ErrInvalidTopology, "corner %v is not a right angle", corner)
		}
	}
	// Four right angles in a row can still be a self intersecting bow tie
	if !a.Add(c.Sub(b)).Equal(d) {
		return nil, wrapf(ErrInvalidTopology, "corners %v, %v, %v, %v do not close a rectangle", a, b, c, d)
	}
	return newRectangle(a, b, c, d)
}

func newRectangle(a, b, c, d Point) (*Rectangle, error) {
	r := &Rectangle{polygon: polygon{vertices: []Point{a, b, c, d}}}
	if err := build(func() { initialize(r) }); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rectangle) deriveExtras() {
	r.width = r.edges[0].Length()
	r.height = r.edges[1].Length()
}

func (r *Rectangle) calculateArea() {
	r.area = r.width * r.height
}

func (r *Rectangle) Width() float64 {
	return r.width
}

func (r *Rectangle) Height() float64 {
	return r.height
}

// Opposite edges, paired: the width sides first, then the height sides.
func (r *Rectangle) SidePairs() [2][2]Segment {
	return [2][2]Segment{
		{r.edges[0], r.edges[2]},
		{r.edges[1], r.edges[3]},
	}
}

// The point on the rectangle's boundary closest to p.
func (r *Rectangle) ClosestPerpendicularPointTo(p Point) Point {
	var closest Point
	best := math.Inf(1)
	for _, edge := range r.edges {
		candidate := edge.ClosestPoint(p)
		if d := candidate.Distance(p); d < best {
			best = d
			closest = candidate
		}
	}
	return closest
}

func (r *Rectangle) CheckCollisions(query CollisionQuery, mask LayerMask) ([]Handle, error) {
	return checkCollisions(query, r, mask)
}

// Collisions the rectangle would have if its center were at position.
func (r *Rectangle) CheckCollisionsAt(query CollisionQuery, position Point, mask LayerMask) ([]Handle, error) {
	return checkCollisionsAt(query, r, r.Clone(), position, mask)
}

func (r *Rectangle) Clone() *Rectangle {
	return &Rectangle{
		polygon: r.polygon.clone(),
		width:   r.width,
		height:  r.height,
	}
}

func (r *Rectangle) String() string {
	var sb strings.Builder
	r.writeString(&sb)
	fmt.Fprintf(&sb, "Size: %gx%g\n", r.width, r.height)
	return sb.String()
}
