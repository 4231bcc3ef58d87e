package shapes

import (
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Separating axis tests. Every shape in this package is convex, so the edge
// normals of the two shapes are the only candidate axes.

// Identifies a body registered with a collision service.
type Handle = uuid.UUID

// Bit set of collision layers, 32 layers wide.
type LayerMask uint32

const AllLayers = ^LayerMask(0)

// Mask containing only the given layer. Panics for layers outside [0, 32).
func Layer(n int) LayerMask {
	if n < 0 || n >= 32 {
		panic(errors.Errorf("layer %d out of range", n))
	}
	return 1 << uint(n)
}

func (m LayerMask) Contains(layer int) bool {
	return layer >= 0 && layer < 32 && m&(1<<uint(layer)) != 0
}

// A scene collision service. Implementations report the bodies whose shapes
// overlap the given shape on any layer in mask. A body registered with the
// very shape being queried must not be reported.
type CollisionQuery interface {
	QueryOverlaps(shape Polygon, mask LayerMask) []Handle
}

// Services that can tell which body a shape belongs to. CheckCollisionsAt uses
// this to keep a shape from colliding with its own body at the probe position.
type HandleResolver interface {
	HandleOf(shape Polygon) (Handle, bool)
}

func checkCollisions(query CollisionQuery, shape Polygon, mask LayerMask) ([]Handle, error) {
	if query == nil {
		return nil, errors.Wrap(ErrNotSupported, "no collision query service")
	}
	return query.QueryOverlaps(shape, mask), nil
}

// Queries with probe, a copy of shape moved to position, and filters out
// shape's own body.
func checkCollisionsAt(query CollisionQuery, shape, probe Polygon, position Point, mask LayerMask) ([]Handle, error) {
	if query == nil {
		return nil, errors.Wrap(ErrNotSupported, "no collision query service")
	}
	probe.Translate(position.Sub(probe.Center()))
	handles := query.QueryOverlaps(probe, mask)

	resolver, ok := query.(HandleResolver)
	if !ok {
		return handles, nil
	}
	self, ok := resolver.HandleOf(shape)
	if !ok {
		return handles, nil
	}
	filtered := handles[:0]
	for _, h := range handles {
		if h != self {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

// Range of the shape's vertices projected onto axis.
func project(shape Polygon, axis Point) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range shape.Vertices() {
		dot := v.Dot(axis)
		min = math.Min(min, dot)
		max = math.Max(max, dot)
	}
	return min, max
}

// Whether the interiors of a and b intersect. Shapes that only touch along an
// edge or at a vertex do not overlap.
func Overlaps(a, b Polygon) bool {
	_, ok := MinimumTranslation(a, b)
	return ok
}

// The shortest vector that moves a out of b, and whether they overlap at all.
func MinimumTranslation(a, b Polygon) (Point, bool) {
	return minimumTranslation(a, b, a.Center())
}

// Like MinimumTranslation, but when a could be pushed either way along an axis
// with equal effort, it goes the side reference lies on relative to b's center.
func minimumTranslation(a, b Polygon, reference Point) (Point, bool) {
	minDepth := math.Inf(1)
	var mtv Point

	for _, shape := range []Polygon{a, b} {
		for _, axis := range shape.Normals() {
			min1, max1 := project(a, axis)
			min2, max2 := project(b, axis)
			// Distance a must travel along +axis or -axis to clear b. Measuring both
			// ways handles one shape containing the other.
			forward := max2 - min1
			backward := max1 - min2
			if forward <= Tolerance || backward <= Tolerance {
				return Point{}, false
			}

			depth := math.Min(forward, backward)
			if depth >= minDepth {
				continue
			}
			minDepth = depth

			direction := axis
			switch {
			case Equal(forward, backward):
				if reference.Sub(b.Center()).Dot(axis) < 0 {
					direction = axis.Scale(-1)
				}
			case backward < forward:
				direction = axis.Scale(-1)
			}
			mtv = direction.Scale(depth)
		}
	}
	return mtv, true
}
