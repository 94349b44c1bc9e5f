package anim

import (
	"fmt"

	"github.com/cj-mills/trimotion/studio/core"
	"github.com/cj-mills/trimotion/studio/scene"
)

// ApplySequence walks values and frames in lockstep: each value is assigned
// to the attribute at path, then the freshly assigned state is keyed at the
// matching frame. The two slices must be the same length and the path must
// resolve before any pair runs; a value of the wrong arity stops the walk
// at that pair, keeping the keys already recorded.
func (s *System) ApplySequence(obj *scene.Object, path string, values []Value, frames []float64) error {
	if len(values) != len(frames) {
		return fmt.Errorf("sequence for %q: %d values against %d frames: %w",
			path, len(values), len(frames), core.ErrLengthMismatch)
	}
	attr, err := resolveAttribute(obj, path)
	if err != nil {
		return err
	}
	for i := range values {
		if err := attr.set(values[i]); err != nil {
			return fmt.Errorf("sequence pair %d: %w", i, err)
		}
		s.insertResolved(obj, attr, frames[i])
	}
	core.LogDebug("animation system keyed %d frames on %s.%s", len(frames), obj.Name(), path)
	return nil
}
