// Package math3 carries the small amount of 3D math the document needs on
// top of gonum's r3 vectors.
package math3

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/spatial/r3"
)

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Deg2RadVec converts a triple of angles from degrees to radians.
func Deg2RadVec(v r3.Vec) r3.Vec {
	return r3.Vec{X: Deg2Rad(v.X), Y: Deg2Rad(v.Y), Z: Deg2Rad(v.Z)}
}

// Rad2DegVec converts a triple of angles from radians to degrees.
func Rad2DegVec(v r3.Vec) r3.Vec {
	return r3.Vec{X: Rad2Deg(v.X), Y: Rad2Deg(v.Y), Z: Rad2Deg(v.Z)}
}

// Lerp interpolates linearly from a to b at t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Uniform returns the vector {s, s, s}.
func Uniform(s float64) r3.Vec {
	return r3.Vec{X: s, Y: s, Z: s}
}

// MulElem returns the component-wise product of a and b.
func MulElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// Centroid returns the arithmetic mean of pts, the zero vector for none.
func Centroid(pts []r3.Vec) r3.Vec {
	if len(pts) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, p := range pts {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(pts)), sum)
}

// RotateEulerXYZ rotates v by the euler angles e in radians: about X first,
// then Y, then Z, all in the fixed frame.
func RotateEulerXYZ(v, e r3.Vec) r3.Vec {
	sx, cx := math.Sincos(e.X)
	sy, cy := math.Sincos(e.Y)
	sz, cz := math.Sincos(e.Z)

	v = r3.Vec{X: v.X, Y: cx*v.Y - sx*v.Z, Z: sx*v.Y + cx*v.Z}
	v = r3.Vec{X: cy*v.X + sy*v.Z, Y: v.Y, Z: -sy*v.X + cy*v.Z}
	return r3.Vec{X: cz*v.X - sz*v.Y, Y: sz*v.X + cz*v.Y, Z: v.Z}
}

// EqualWithin reports whether a and b agree component-wise within tol.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}
