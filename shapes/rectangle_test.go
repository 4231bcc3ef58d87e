package shapes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRectangle(t *testing.T, center Point, width, height float64) *Rectangle {
	t.Helper()
	r, err := NewRectangle(center, width, height)
	require.NoError(t, err)
	return r
}

func TestNewRectangle(t *testing.T) {
	r := mustRectangle(t, Point{1, 1}, 4, 2)
	assertValidPolygon(t, r)
	assert.Equal(t, []Point{{-1, 0}, {3, 0}, {3, 2}, {-1, 2}}, r.Vertices())
	assert.Equal(t, 4.0, r.Width())
	assert.Equal(t, 2.0, r.Height())
	assert.Equal(t, 8.0, r.Area())
	assertPointInDelta(t, Point{1, 1}, r.Center())
	assertPointsInDelta(t, []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}, r.Normals())

	_, err := NewRectangle(Point{}, 0, 3)
	assert.ErrorIs(t, err, ErrDegenerateRectangle)
}

func TestNewRectangleFromCorners(t *testing.T) {
	r, err := NewRectangleFromCorners(Point{3, 2}, Point{-1, 0})
	require.NoError(t, err)
	assert.Equal(t, []Point{{-1, 0}, {3, 0}, {3, 2}, {-1, 2}}, r.Vertices())

	_, err = NewRectangleFromCorners(Point{3, 2}, Point{3, 5})
	assert.ErrorIs(t, err, ErrDegenerateRectangle)
}

func TestRectangleRejectsNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	for _, c := range []struct {
		center        Point
		width, height float64
	}{
		{Point{}, nan, 2},
		{Point{}, 2, nan},
		{Point{}, inf, 2},
		{Point{nan, 0}, 2, 2},
		{Point{0, -inf}, 2, 2},
	} {
		r, err := NewRectangle(c.center, c.width, c.height)
		assert.ErrorIs(t, err, ErrDegenerateRectangle, "%+v", c)
		assert.Nil(t, r)
	}

	_, err := NewRectangleFromCorners(Point{0, 0}, Point{inf, 1})
	assert.ErrorIs(t, err, ErrDegenerateRectangle)
	_, err = NewRectangleFromPoints(Point{0, 0}, Point{2, 0}, Point{2, nan}, Point{0, 1})
	assert.ErrorIs(t, err, ErrDegenerateRectangle)

	// Finite inputs whose corners overflow are caught by the pipeline
	_, err = NewRectangle(Point{math.MaxFloat64, 0}, math.MaxFloat64, 1)
	assert.ErrorIs(t, err, ErrInvalidTopology)
}

func TestNewRectangleFromPoints(t *testing.T) {
	t.Run("rotated", func(t *testing.T) {
		r, err := NewRectangleFromPoints(Point{0, 0}, Point{2, 2}, Point{1, 3}, Point{-1, 1})
		require.NoError(t, err)
		assertValidPolygon(t, r)
		assert.InDelta(t, 4, r.Area(), 1e-9)
	})

	t.Run("clockwise is rewound", func(t *testing.T) {
		r, err := NewRectangleFromPoints(Point{0, 0}, Point{0, 1}, Point{2, 1}, Point{2, 0})
		require.NoError(t, err)
		assertValidPolygon(t, r)
		assert.Equal(t, []Point{{0, 0}, {2, 0}, {2, 1}, {0, 1}}, r.Vertices())
		assert.Equal(t, 2.0, r.Width())
		assert.Equal(t, 1.0, r.Height())
	})

	t.Run("not a rectangle", func(t *testing.T) {
		_, err := NewRectangleFromPoints(Point{0, 0}, Point{2, 0}, Point{3, 1}, Point{0, 1})
		assert.ErrorIs(t, err, ErrInvalidTopology)
	})

	t.Run("coincident corners", func(t *testing.T) {
		_, err := NewRectangleFromPoints(Point{0, 0}, Point{0, 0}, Point{2, 1}, Point{0, 1})
		assert.ErrorIs(t, err, ErrDegenerateRectangle)
	})
}

func TestRectangleTransforms(t *testing.T) {
	original := mustRectangle(t, Point{2, -1}, 3, 5)

	r := original.Clone()
	r.Rotate(30)
	assertValidPolygon(t, r)
	assert.InDelta(t, 30, r.Rotation(), Tolerance)
	r.Rotate(-30)
	assertPointsInDelta(t, original.Vertices(), r.Vertices())
	assertPointsInDelta(t, original.Normals(), r.Normals())

	r.Translate(Point{1, 1})
	r.Translate(Point{-1, -1})
	assertPointsInDelta(t, original.Vertices(), r.Vertices())

	r.Rotate(360)
	assertPointsInDelta(t, original.Vertices(), r.Vertices())
}

func TestRectangleSidePairs(t *testing.T) {
	r := mustRectangle(t, Point{}, 4, 2)
	pairs := r.SidePairs()
	for _, pair := range pairs {
		// Opposite sides run antiparallel
		assertPointInDelta(t, pair[0].Vector(), pair[1].Vector().Scale(-1))
	}
	assert.InDelta(t, 4, pairs[0][0].Length(), Tolerance)
	assert.InDelta(t, 2, pairs[1][0].Length(), Tolerance)
}

func TestRectangleClosestPerpendicularPointTo(t *testing.T) {
	r := mustRectangle(t, Point{}, 10, 4)
	assertPointInDelta(t, Point{1, 2}, r.ClosestPerpendicularPointTo(Point{1, 1}))
	assertPointInDelta(t, Point{5, 0}, r.ClosestPerpendicularPointTo(Point{4.5, 0}))
	assertPointInDelta(t, Point{5, 2}, r.ClosestPerpendicularPointTo(Point{7, 7}))
}

func TestRectangleVerticesInside(t *testing.T) {
	outer := mustRectangle(t, Point{}, 4, 4)

	overlapping := mustRectangle(t, Point{2, 2}, 2, 2)
	assert.Equal(t, []Point{{1, 1}}, overlapping.VerticesInside(outer))

	contained := mustRectangle(t, Point{}, 2, 2)
	assert.Equal(t, contained.Vertices(), contained.VerticesInside(outer))

	apart := mustRectangle(t, Point{10, 0}, 2, 2)
	assert.Empty(t, apart.VerticesInside(outer))
}
