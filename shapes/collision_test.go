package shapes

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerMask(t *testing.T) {
	mask := Layer(0) | Layer(5)
	assert.True(t, mask.Contains(0))
	assert.True(t, mask.Contains(5))
	assert.False(t, mask.Contains(1))
	assert.False(t, mask.Contains(40))
	assert.True(t, AllLayers.Contains(31))
	assert.Panics(t, func() { Layer(32) })
}

func TestOverlaps(t *testing.T) {
	square := mustRectangle(t, Point{}, 2, 2)

	assert.True(t, Overlaps(square, mustRectangle(t, Point{1, 1}, 2, 2)))
	assert.True(t, Overlaps(square, mustRectangle(t, Point{}, 0.5, 0.5)), "containment overlaps")
	assert.False(t, Overlaps(square, mustRectangle(t, Point{2, 0}, 2, 2)), "touching edges don't overlap")
	assert.False(t, Overlaps(square, mustRectangle(t, Point{5, 5}, 2, 2)))

	// Bounding boxes overlap, but the hypotenuse separates them
	tri := mustTriangle(t, Point{2, 0}, Point{4, 0}, Point{2, 2})
	corner := mustRectangle(t, Point{3.6, 1.6}, 1, 1)
	assert.False(t, Overlaps(tri, corner))
	assert.True(t, Overlaps(tri, mustRectangle(t, Point{2.5, 0.5}, 1, 1)))
}

func TestMinimumTranslation(t *testing.T) {
	t.Run("pushes out along the shallowest axis", func(t *testing.T) {
		a := mustRectangle(t, Point{1.5, 0.2}, 2, 2)
		b := mustRectangle(t, Point{}, 2, 2)
		mtv, ok := MinimumTranslation(a, b)
		require.True(t, ok)
		assertPointInDelta(t, Point{0.5, 0}, mtv)

		a.Translate(mtv)
		assert.False(t, Overlaps(a, b))
	})

	t.Run("nested shapes escape through the nearest side", func(t *testing.T) {
		small := mustRectangle(t, Point{3, 0}, 1, 1)
		big := mustRectangle(t, Point{}, 8, 8)
		mtv, ok := MinimumTranslation(small, big)
		require.True(t, ok)
		assertPointInDelta(t, Point{1.5, 0}, mtv)
	})

	t.Run("separated", func(t *testing.T) {
		mtv, ok := MinimumTranslation(mustRectangle(t, Point{}, 1, 1), mustRectangle(t, Point{3, 0}, 1, 1))
		assert.False(t, ok)
		assert.Equal(t, Point{}, mtv)
	})
}

func TestCalculateCollisionOffset(t *testing.T) {
	obstacle := mustRectangle(t, Point{}, 4, 4)

	t.Run("no overlap", func(t *testing.T) {
		tri := mustTriangle(t, Point{10, 10}, Point{12, 10}, Point{10, 12})
		assert.Equal(t, Point{}, tri.CalculateCollisionOffset(nil, obstacle))
	})

	t.Run("resolves interpenetration", func(t *testing.T) {
		tri := mustTriangle(t, Point{1.5, -1}, Point{4, -1}, Point{1.5, 1})
		past := tri.Clone()
		past.Translate(Point{2, 0})
		offset := tri.CalculateCollisionOffset(past, obstacle)
		assertPointInDelta(t, Point{0.5, 0}, offset)

		tri.Translate(offset)
		assert.False(t, Overlaps(tri, obstacle))
	})

	t.Run("coincident centers use the past position", func(t *testing.T) {
		box := mustRectangle(t, Point{}, 4, 4)
		past := mustRectangle(t, Point{0, 3}, 4, 4)
		offset := box.CalculateCollisionOffset(past, obstacle)
		assertPointInDelta(t, Point{0, 4}, offset)
	})
}

// Minimal in-package collision service for exercising the hooks.
type fakeQuery struct {
	bodies map[Handle]Polygon
	order  []Handle
}

func (q *fakeQuery) add(p Polygon) Handle {
	if q.bodies == nil {
		q.bodies = make(map[Handle]Polygon)
	}
	h := uuid.New()
	q.bodies[h] = p
	q.order = append(q.order, h)
	return h
}

func (q *fakeQuery) QueryOverlaps(shape Polygon, mask LayerMask) []Handle {
	var result []Handle
	for _, h := range q.order {
		if q.bodies[h] != shape && Overlaps(shape, q.bodies[h]) {
			result = append(result, h)
		}
	}
	return result
}

func (q *fakeQuery) HandleOf(shape Polygon) (Handle, bool) {
	for h, p := range q.bodies {
		if p == shape {
			return h, true
		}
	}
	return Handle{}, false
}

func TestCheckCollisions(t *testing.T) {
	tri := mustTriangle(t, Point{0, 0}, Point{2, 0}, Point{0, 2})

	t.Run("without a service", func(t *testing.T) {
		_, err := tri.CheckCollisions(nil, AllLayers)
		assert.ErrorIs(t, err, ErrNotSupported)
		_, err = tri.CheckCollisionsAt(nil, Point{}, AllLayers)
		assert.ErrorIs(t, err, ErrNotSupported)
	})

	q := &fakeQuery{}
	q.add(tri)
	near := q.add(mustRectangle(t, Point{1, 1}, 1, 1))
	far := q.add(mustRectangle(t, Point{20, 0}, 2, 2))

	t.Run("in place", func(t *testing.T) {
		handles, err := tri.CheckCollisions(q, AllLayers)
		require.NoError(t, err)
		assert.Equal(t, []Handle{near}, handles)
	})

	t.Run("at another position", func(t *testing.T) {
		before := tri.Vertices()
		handles, err := tri.CheckCollisionsAt(q, Point{20, 0}, AllLayers)
		require.NoError(t, err)
		assert.Equal(t, []Handle{far}, handles)
		assert.Equal(t, before, tri.Vertices(), "probing must not move the shape")
	})

	t.Run("rectangle", func(t *testing.T) {
		box := mustRectangle(t, Point{0.5, 0.5}, 0.5, 0.5)
		handles, err := box.CheckCollisions(q, AllLayers)
		require.NoError(t, err)
		assert.Len(t, handles, 2)
	})
}
