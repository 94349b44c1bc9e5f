package anim

import (
	"fmt"
	"sort"

	"github.com/cj-mills/trimotion/studio/core"
)

// Keyframe pairs a frame time with the value the channel holds there.
type Keyframe struct {
	Frame float64
	Value Value
}

// Channel is the keyframe list for one attribute path. Keys stay sorted by
// frame; keying a frame that already has a key replaces its value in place.
type Channel struct {
	path       string
	components int
	keys       []Keyframe
}

func newChannel(path string, components int) *Channel {
	return &Channel{path: path, components: components}
}

func (c *Channel) Path() string {
	return c.path
}

// Components is the arity of every value in the channel.
func (c *Channel) Components() int {
	return c.components
}

func (c *Channel) Len() int {
	return len(c.keys)
}

// Keyframes returns the keys in frame order with cloned values.
func (c *Channel) Keyframes() []Keyframe {
	out := make([]Keyframe, len(c.keys))
	for i, k := range c.keys {
		out[i] = Keyframe{Frame: k.Frame, Value: k.Value.Clone()}
	}
	return out
}

// Insert records v at the given frame, replacing an existing key on the
// same frame.
func (c *Channel) Insert(frame float64, v Value) error {
	if len(v) != c.components {
		return fmt.Errorf("channel %q holds %d components, got %d: %w", c.path, c.components, len(v), core.ErrLengthMismatch)
	}
	c.insert(frame, v.Clone())
	return nil
}

func (c *Channel) insert(frame float64, v Value) {
	i := sort.Search(len(c.keys), func(i int) bool {
		return c.keys[i].Frame >= frame
	})
	if i < len(c.keys) && c.keys[i].Frame == frame {
		c.keys[i].Value = v
		return
	}
	c.keys = append(c.keys, Keyframe{})
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = Keyframe{Frame: frame, Value: v}
}

// Evaluate samples the channel at a frame: linear between keys, constant
// outside the keyed range. A channel with no keys returns nil.
func (c *Channel) Evaluate(frame float64) Value {
	if len(c.keys) == 0 {
		return nil
	}
	first, last := c.keys[0], c.keys[len(c.keys)-1]
	if frame <= first.Frame {
		return first.Value.Clone()
	}
	if frame >= last.Frame {
		return last.Value.Clone()
	}
	i := sort.Search(len(c.keys), func(i int) bool {
		return c.keys[i].Frame >= frame
	})
	a, b := c.keys[i-1], c.keys[i]
	if b.Frame == a.Frame {
		return b.Value.Clone()
	}
	t := (frame - a.Frame) / (b.Frame - a.Frame)
	return lerp(a.Value, b.Value, t)
}
