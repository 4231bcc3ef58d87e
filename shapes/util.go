package shapes

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const Tolerance = 1e-6

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

// To compensate for imprecision in floats, equality is tolerance based. All of
// the derived data on a shape is recomputed from floats that have gone through
// trig functions, so exact comparisons are never what we want.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Wraps i into [0, n), so that vertex rings can be walked past either end.
// Negative indices count back from the end.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Rotate point around pivot by the given number of degrees. Positive angles
// are counterclockwise.
func Rotate(pivot, point Point, degrees float64) Point {
	return Point(r2.Rotate(point.vec(), degrees*Deg2Rad, pivot.vec()))
}

// Unsigned angle between two vectors in radians, in [0, π]. Uses atan2 rather
// than acos so nearly parallel vectors don't lose precision.
func Angle(u, v Point) float64 {
	return math.Atan2(math.Abs(r2.Cross(u.vec(), v.vec())), r2.Dot(u.vec(), v.vec()))
}

// Normalize an angle in degrees into [0, 360).
func normalizeDegrees(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	// Mod can hand back values a hair under 360 for tiny negative inputs
	if Equal(degrees, 360) {
		return 0
	}
	return degrees
}
