package anim

import (
	"fmt"

	"github.com/cj-mills/trimotion/studio/core"
	"github.com/cj-mills/trimotion/studio/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// attribute is a resolved animation target: a named slot on an object that
// can be read for snapshots and written by the sequencer.
type attribute struct {
	path       string
	components int
	get        func() Value
	set        func(Value) error
}

// resolveAttribute maps an attribute path onto storage. Transform paths
// live on every object; "data." paths need the matching datablock.
func resolveAttribute(obj *scene.Object, path string) (*attribute, error) {
	if obj == nil {
		return nil, fmt.Errorf("animation target missing: %w", core.ErrResourceUnavailable)
	}
	switch path {
	case "location":
		return vecAttribute(path, &obj.Transform.Location), nil
	case "rotation_euler":
		return vecAttribute(path, &obj.Transform.RotationEuler), nil
	case "scale":
		return vecAttribute(path, &obj.Transform.Scale), nil
	case "data.lens", "data.ortho_scale", "data.clip_start", "data.clip_end":
		cam := obj.Camera()
		if cam == nil {
			return nil, fmt.Errorf("attribute %q: object %q has no camera data: %w", path, obj.Name(), core.ErrAttributeNotFound)
		}
		switch path {
		case "data.lens":
			return floatAttribute(path, &cam.Lens), nil
		case "data.ortho_scale":
			return floatAttribute(path, &cam.OrthoScale), nil
		case "data.clip_start":
			return floatAttribute(path, &cam.ClipStart), nil
		default:
			return floatAttribute(path, &cam.ClipEnd), nil
		}
	}
	return nil, fmt.Errorf("attribute %q on object %q: %w", path, obj.Name(), core.ErrAttributeNotFound)
}

func vecAttribute(path string, target *r3.Vec) *attribute {
	return &attribute{
		path:       path,
		components: 3,
		get: func() Value {
			return FromVec(*target)
		},
		set: func(v Value) error {
			if len(v) != 3 {
				return fmt.Errorf("attribute %q holds 3 components, got %d: %w", path, len(v), core.ErrLengthMismatch)
			}
			*target = r3.Vec{X: v[0], Y: v[1], Z: v[2]}
			return nil
		},
	}
}

func floatAttribute(path string, target *float64) *attribute {
	return &attribute{
		path:       path,
		components: 1,
		get: func() Value {
			return Scalar(*target)
		},
		set: func(v Value) error {
			if len(v) != 1 {
				return fmt.Errorf("attribute %q holds 1 component, got %d: %w", path, len(v), core.ErrLengthMismatch)
			}
			*target = v[0]
			return nil
		},
	}
}
