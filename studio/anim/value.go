// Package anim records keyframed animation for scene objects: actions own
// channels, channels own keyframes, and the sequencer writes both the
// object state and the keys.
package anim

import (
	"math"

	"github.com/cj-mills/trimotion/studio/math3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Value is a keyframed quantity, one float per component. A location is
// three components, a lens is one.
type Value []float64

func Scalar(v float64) Value {
	return Value{v}
}

func FromVec(v r3.Vec) Value {
	return Value{v.X, v.Y, v.Z}
}

func (v Value) Clone() Value {
	return append(Value(nil), v...)
}

// EqualWithin reports component-wise agreement within tol. Values of
// different lengths never agree.
func (v Value) EqualWithin(o Value, tol float64) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if math.Abs(v[i]-o[i]) > tol {
			return false
		}
	}
	return true
}

// lerp interpolates component-wise between a and b at t in [0, 1].
func lerp(a, b Value, t float64) Value {
	out := make(Value, len(a))
	for i := range a {
		out[i] = math3.Lerp(a[i], b[i], t)
	}
	return out
}
