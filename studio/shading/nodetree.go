package shading

import (
	"fmt"

	"github.com/cj-mills/trimotion/studio/core"
)

// Link is one edge of the node graph, from an output socket to an input
// socket.
type Link struct {
	from *Socket
	to   *Socket
}

func (l *Link) From() *Socket {
	return l.from
}

func (l *Link) To() *Socket {
	return l.to
}

// NodeTree is a shader node graph. Node names stay unique inside one tree,
// so the second Emission node becomes "Emission.001".
type NodeTree struct {
	nodes []*Node
	links []*Link
}

// NewMaterialNodeTree seeds the graph a material starts with: a Principled
// BSDF wired into a Material Output.
func NewMaterialNodeTree() *NodeTree {
	t := &NodeTree{}
	bsdf := t.New(NodeTypePrincipledBSDF)
	out := t.New(NodeTypeMaterialOutput)
	mustLink(t, bsdf, "BSDF", out, "Surface")
	return t
}

// NewWorldNodeTree seeds the graph a world starts with: a Background shader
// wired into a World Output.
func NewWorldNodeTree() *NodeTree {
	t := &NodeTree{}
	bg := t.New(NodeTypeBackground)
	out := t.New(NodeTypeWorldOutput)
	mustLink(t, bg, "Background", out, "Surface")
	return t
}

// mustLink wires two freshly built nodes whose sockets are known to exist.
func mustLink(t *NodeTree, from *Node, output string, to *Node, input string) {
	src, err := from.Output(output)
	if err != nil {
		panic(err)
	}
	dst, err := to.Input(input)
	if err != nil {
		panic(err)
	}
	if _, err := t.Link(src, dst); err != nil {
		panic(err)
	}
}

// New appends a node of the given type, renaming it if its label is taken.
func (t *NodeTree) New(typ NodeType) *Node {
	n := newNode(typ)
	n.name = core.UniqueName(n.name, func(name string) bool {
		_, ok := t.get(name)
		return ok
	})
	t.nodes = append(t.nodes, n)
	return n
}

func (t *NodeTree) get(name string) (*Node, bool) {
	for _, n := range t.nodes {
		if n.name == name {
			return n, true
		}
	}
	return nil, false
}

// Get looks a node up by name.
func (t *NodeTree) Get(name string) (*Node, bool) {
	return t.get(name)
}

// Remove drops the node and every link touching it.
func (t *NodeTree) Remove(n *Node) error {
	if n == nil {
		return fmt.Errorf("remove node: %w", core.ErrResourceUnavailable)
	}
	idx := -1
	for i, have := range t.nodes {
		if have == n {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("remove node %q: not in this tree: %w", n.name, core.ErrResourceUnavailable)
	}
	t.nodes = append(t.nodes[:idx], t.nodes[idx+1:]...)

	kept := t.links[:0]
	for _, l := range t.links {
		if l.from.node == n || l.to.node == n {
			l.to.link = nil
			continue
		}
		kept = append(kept, l)
	}
	t.links = kept
	return nil
}

// Link wires an output socket into an input socket. An input holds at most
// one incoming link; linking again replaces the old edge.
func (t *NodeTree) Link(from, to *Socket) (*Link, error) {
	if from == nil || to == nil {
		return nil, fmt.Errorf("link needs two sockets: %w", core.ErrInvalidParameter)
	}
	if !from.isOutput {
		return nil, fmt.Errorf("link source %q on %q is not an output: %w", from.name, from.node.name, core.ErrInvalidParameter)
	}
	if to.isOutput {
		return nil, fmt.Errorf("link target %q on %q is not an input: %w", to.name, to.node.name, core.ErrInvalidParameter)
	}
	if _, ok := t.find(from.node); !ok {
		return nil, fmt.Errorf("link source node %q not in this tree: %w", from.node.name, core.ErrResourceUnavailable)
	}
	if _, ok := t.find(to.node); !ok {
		return nil, fmt.Errorf("link target node %q not in this tree: %w", to.node.name, core.ErrResourceUnavailable)
	}

	if old := to.link; old != nil {
		for i, l := range t.links {
			if l == old {
				t.links = append(t.links[:i], t.links[i+1:]...)
				break
			}
		}
	}
	l := &Link{from: from, to: to}
	to.link = l
	t.links = append(t.links, l)
	return l, nil
}

func (t *NodeTree) find(n *Node) (int, bool) {
	for i, have := range t.nodes {
		if have == n {
			return i, true
		}
	}
	return 0, false
}

func (t *NodeTree) Nodes() []*Node {
	return append([]*Node(nil), t.nodes...)
}

func (t *NodeTree) Links() []*Link {
	return append([]*Link(nil), t.links...)
}

func (t *NodeTree) NodeCount() int {
	return len(t.nodes)
}

func (t *NodeTree) LinkCount() int {
	return len(t.links)
}
