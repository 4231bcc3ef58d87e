package shapes

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// The contract shared by every closed shape in this package. All of the
// derived data (edges, normals, center, area) is computed once at construction
// and kept consistent with the vertices across Translate and Rotate.
//
// Accessors return copies; mutating a returned slice does not affect the shape.
type Polygon interface {
	Vertices() []Point
	Edges() []Segment
	Normals() []Point
	Area() float64
	Center() Point
	// Accumulated rotation in degrees relative to the construction orientation,
	// in [0, 360).
	Rotation() float64

	Translate(direction Point)
	Rotate(degrees float64)

	// Point-in-shape predicate. Boundary points are inside.
	ContainsPoint(p Point) bool
}

// Shared state and default pipeline steps for the concrete shapes, which embed
// it.
type polygon struct {
	vertices []Point
	edges    []Segment
	normals  []Point
	area     float64
	center   Point
	rotation float64
}

// Steps of the construction pipeline that a concrete shape supplies. The
// polygon defaults cover center and sorting; extras and area are always
// shape specific.
type pipeline interface {
	base() *polygon
	calculateCenter()
	sortVertices()
	deriveExtras()
	calculateArea()
}

// Runs the fixed construction pipeline. Throws on bad geometry.
func initialize(s pipeline) {
	p := s.base()
	if len(p.vertices) < 3 {
		throwf(ErrInvalidTopology, "polygon needs at least 3 vertices, got %d", len(p.vertices))
	}
	for _, v := range p.vertices {
		if !v.Finite() {
			throwf(ErrInvalidTopology, "non-finite vertex %v", v)
		}
	}
	s.calculateCenter()
	s.sortVertices()
	p.createEdges()
	p.createNormals()
	s.deriveExtras()
	s.calculateArea()
	p.rotation = 0
}

// Runs a constructor body, converting thrown shape errors into a returned
// error.
func build(fn func()) (err error) {
	defer func() {
		if recoveredErr := handleShapePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}

func (p *polygon) base() *polygon {
	return p
}

func (p *polygon) calculateCenter() {
	p.center = Centroid(p.vertices)
}

// Puts the vertices in counterclockwise order by sorting them on their angle
// around the center. Ties (points on the same ray from the center) are broken
// by distance, nearest first. The sorted ring is then rotated so that the
// original first vertex stays first, which keeps already counterclockwise
// input in its given order.
func (p *polygon) sortVertices() {
	n := len(p.vertices)
	order := make([]int, n)
	keys := make([]float64, n)
	dists := make([]float64, n)
	for i, v := range p.vertices {
		order[i] = i
		d := v.Sub(p.center)
		keys[i] = math.Atan2(d.Y, d.X)
		dists[i] = d.Length()
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if !Equal(keys[a], keys[b]) {
			return keys[a] < keys[b]
		}
		return dists[a] < dists[b]
	})

	var start int
	for i, index := range order {
		if index == 0 {
			start = i
			break
		}
	}
	sorted := make([]Point, n)
	for i := range sorted {
		sorted[i] = p.vertices[order[CircularIndex(start+i, n)]]
	}
	p.vertices = sorted
}

func (p *polygon) createEdges() {
	n := len(p.vertices)
	p.edges = make([]Segment, n)
	for i, v := range p.vertices {
		p.edges[i] = mustSegment(v, p.vertices[CircularIndex(i+1, n)])
	}
}

// One outward unit normal per edge. For counterclockwise winding the outward
// side is to the right of the edge, but the sign is checked against the
// center anyway.
func (p *polygon) createNormals() {
	p.normals = make([]Point, len(p.edges))
	for i, edge := range p.edges {
		v := edge.Vector()
		normal := Point{v.Y, -v.X}.Normalized()
		if normal.Dot(edge.Midpoint().Sub(p.center)) < 0 {
			normal = normal.Scale(-1)
		}
		p.normals[i] = normal
	}
}

func (p *polygon) Vertices() []Point {
	return append([]Point(nil), p.vertices...)
}

func (p *polygon) Edges() []Segment {
	return append([]Segment(nil), p.edges...)
}

func (p *polygon) Normals() []Point {
	return append([]Point(nil), p.normals...)
}

func (p *polygon) Area() float64 {
	return p.area
}

func (p *polygon) Center() Point {
	return p.center
}

func (p *polygon) Rotation() float64 {
	return p.rotation
}

func (p *polygon) Translate(direction Point) {
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].Add(direction)
		p.edges[i].Translate(direction)
	}
	p.center = p.center.Add(direction)
}

// Rotates about the center. Normals are direction vectors, so they rotate
// about the origin.
func (p *polygon) Rotate(degrees float64) {
	about := r2.NewRotation(degrees*Deg2Rad, p.center.vec())
	direction := r2.NewRotation(degrees*Deg2Rad, r2.Vec{})
	for i := range p.vertices {
		p.vertices[i] = Point(about.Rotate(p.vertices[i].vec()))
		p.edges[i] = Segment{
			PointA: Point(about.Rotate(p.edges[i].PointA.vec())),
			PointB: Point(about.Rotate(p.edges[i].PointB.vec())),
		}
		p.normals[i] = Point(direction.Rotate(p.normals[i].vec()))
	}
	p.rotation = normalizeDegrees(p.rotation + degrees)
}

// Containment for convex shapes: the point must be behind every edge's
// outward normal.
func (p *polygon) ContainsPoint(point Point) bool {
	for i, edge := range p.edges {
		if p.normals[i].Dot(point.Sub(edge.PointA)) > Tolerance {
			return false
		}
	}
	return true
}

// The vertices of this polygon that lie inside other.
func (p *polygon) VerticesInside(other Polygon) []Point {
	var inside []Point
	for _, v := range p.vertices {
		if other.ContainsPoint(v) {
			inside = append(inside, v)
		}
	}
	return inside
}

// Minimum translation that moves this polygon out of obstacle, or the zero
// vector if they don't overlap. When the two centers coincide there is no
// preferred side, so the push is oriented away from obstacle toward where this
// polygon was on the previous frame. past may be nil.
func (p *polygon) CalculateCollisionOffset(past, obstacle Polygon) Point {
	reference := p.center
	if past != nil && reference.Equal(obstacle.Center()) {
		reference = past.Center()
	}
	offset, ok := minimumTranslation(p, obstacle, reference)
	if !ok {
		return Point{}
	}
	return offset
}

func (p *polygon) clone() polygon {
	return polygon{
		vertices: append([]Point(nil), p.vertices...),
		edges:    append([]Segment(nil), p.edges...),
		normals:  append([]Point(nil), p.normals...),
		area:     p.area,
		center:   p.center,
		rotation: p.rotation,
	}
}

func (p *polygon) String() string {
	var sb strings.Builder
	p.writeString(&sb)
	return sb.String()
}

func (p *polygon) writeString(sb *strings.Builder) {
	fmt.Fprintf(sb, "Vertices: %s\n", joinStrings(p.vertices))
	fmt.Fprintf(sb, "Edges: %s\n", joinStrings(p.edges))
	fmt.Fprintf(sb, "Normals: %s\n", joinStrings(p.normals))
	fmt.Fprintf(sb, "Center: %v\n", p.center)
	fmt.Fprintf(sb, "Area: %g\n", p.area)
	fmt.Fprintf(sb, "Rotation: %g\n", p.rotation)
}

func joinStrings[T fmt.Stringer](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ", ")
}
