// Package scene holds the object store and the document-wide settings that
// frame it: collections, cameras, the world, and render/playback options.
package scene

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is an object's placement. Fields are assigned directly; there
// is no deferred matrix state to keep in sync.
type Transform struct {
	Location      r3.Vec
	RotationEuler r3.Vec
	Scale         r3.Vec
}

// NewTransform starts at the origin with identity scale.
func NewTransform() Transform {
	return Transform{Scale: r3.Vec{X: 1, Y: 1, Z: 1}}
}
