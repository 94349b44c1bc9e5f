package scene

import (
	"github.com/cj-mills/trimotion/studio/core"
	"github.com/cj-mills/trimotion/studio/shading"
)

// World is the environment datablock. It always runs on nodes, seeded with
// a Background shader feeding the World Output.
type World struct {
	handle core.Handle
	name   string
	tree   *shading.NodeTree
}

func NewWorld(name string) *World {
	return &World{
		handle: core.NewHandle(),
		name:   name,
		tree:   shading.NewWorldNodeTree(),
	}
}

func (w *World) Handle() core.Handle {
	return w.handle
}

func (w *World) Name() string {
	return w.name
}

func (w *World) NodeTree() *shading.NodeTree {
	return w.tree
}

// Background returns the background shader node.
func (w *World) Background() (*shading.Node, bool) {
	return w.tree.Get("Background")
}
