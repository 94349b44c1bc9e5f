package shading

import (
	"fmt"

	"github.com/cj-mills/trimotion/studio/core"
	"gonum.org/v1/gonum/spatial/r3"
)

type NodeType uint8

const (
	NodeTypePrincipledBSDF NodeType = iota
	NodeTypeEmission
	NodeTypeHoldout
	NodeTypeBackground
	NodeTypeMaterialOutput
	NodeTypeWorldOutput
)

// Label is the display name a node of this type starts with.
func (t NodeType) Label() string {
	switch t {
	case NodeTypePrincipledBSDF:
		return "Principled BSDF"
	case NodeTypeEmission:
		return "Emission"
	case NodeTypeHoldout:
		return "Holdout"
	case NodeTypeBackground:
		return "Background"
	case NodeTypeMaterialOutput:
		return "Material Output"
	case NodeTypeWorldOutput:
		return "World Output"
	}
	return "Unknown"
}

type SocketKind uint8

const (
	// SocketShader carries a closure between nodes and holds no value.
	SocketShader SocketKind = iota
	SocketColor
	SocketFloat
	SocketVector
)

// Socket is one typed input or output on a node. Inputs hold a default
// value used when nothing is linked; shader sockets only ever link.
type Socket struct {
	name     string
	kind     SocketKind
	node     *Node
	isOutput bool
	link     *Link

	color  Color
	scalar float64
	vector r3.Vec
}

func (s *Socket) Name() string {
	return s.name
}

func (s *Socket) Kind() SocketKind {
	return s.kind
}

func (s *Socket) Node() *Node {
	return s.node
}

func (s *Socket) IsOutput() bool {
	return s.isOutput
}

// Link returns the incoming link on an input socket, nil when unlinked.
func (s *Socket) Link() *Link {
	return s.link
}

func (s *Socket) Color() Color {
	return s.color
}

func (s *Socket) Float() float64 {
	return s.scalar
}

func (s *Socket) Vector() r3.Vec {
	return s.vector
}

func (s *Socket) SetColor(c Color) error {
	if s.kind != SocketColor {
		return fmt.Errorf("socket %q on %q holds no color: %w", s.name, s.node.name, core.ErrInvalidParameter)
	}
	s.color = c
	return nil
}

func (s *Socket) SetFloat(v float64) error {
	if s.kind != SocketFloat {
		return fmt.Errorf("socket %q on %q holds no float: %w", s.name, s.node.name, core.ErrInvalidParameter)
	}
	s.scalar = v
	return nil
}

func (s *Socket) SetVector(v r3.Vec) error {
	if s.kind != SocketVector {
		return fmt.Errorf("socket %q on %q holds no vector: %w", s.name, s.node.name, core.ErrInvalidParameter)
	}
	s.vector = v
	return nil
}

// Node is one shader node inside a tree. Its socket layout is fixed by the
// node type at creation.
type Node struct {
	name    string
	typ     NodeType
	inputs  []*Socket
	outputs []*Socket
}

func newNode(typ NodeType) *Node {
	n := &Node{name: typ.Label(), typ: typ}
	switch typ {
	case NodeTypePrincipledBSDF:
		n.addInput("Base Color", SocketColor).color = Color{0.8, 0.8, 0.8, 1}
		n.addInput("Metallic", SocketFloat)
		n.addInput("Roughness", SocketFloat).scalar = 0.5
		n.addInput("Alpha", SocketFloat).scalar = 1
		n.addOutput("BSDF", SocketShader)
	case NodeTypeEmission:
		n.addInput("Color", SocketColor).color = ColorWhite
		n.addInput("Strength", SocketFloat).scalar = 1
		n.addOutput("Emission", SocketShader)
	case NodeTypeHoldout:
		n.addOutput("Holdout", SocketShader)
	case NodeTypeBackground:
		n.addInput("Color", SocketColor).color = Color{0.05, 0.05, 0.05, 1}
		n.addInput("Strength", SocketFloat).scalar = 1
		n.addOutput("Background", SocketShader)
	case NodeTypeMaterialOutput:
		n.addInput("Surface", SocketShader)
		n.addInput("Volume", SocketShader)
		n.addInput("Displacement", SocketVector)
	case NodeTypeWorldOutput:
		n.addInput("Surface", SocketShader)
		n.addInput("Volume", SocketShader)
	}
	return n
}

func (n *Node) addInput(name string, kind SocketKind) *Socket {
	s := &Socket{name: name, kind: kind, node: n}
	n.inputs = append(n.inputs, s)
	return s
}

func (n *Node) addOutput(name string, kind SocketKind) *Socket {
	s := &Socket{name: name, kind: kind, node: n, isOutput: true}
	n.outputs = append(n.outputs, s)
	return s
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) Type() NodeType {
	return n.typ
}

// Input looks an input socket up by name.
func (n *Node) Input(name string) (*Socket, error) {
	for _, s := range n.inputs {
		if s.name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("input %q on node %q: %w", name, n.name, core.ErrResourceUnavailable)
}

// InputAt looks an input socket up by position.
func (n *Node) InputAt(i int) (*Socket, error) {
	if i < 0 || i >= len(n.inputs) {
		return nil, fmt.Errorf("input %d of %d on node %q: %w", i, len(n.inputs), n.name, core.ErrIndexOutOfRange)
	}
	return n.inputs[i], nil
}

// Output looks an output socket up by name.
func (n *Node) Output(name string) (*Socket, error) {
	for _, s := range n.outputs {
		if s.name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("output %q on node %q: %w", name, n.name, core.ErrResourceUnavailable)
}

// OutputAt looks an output socket up by position.
func (n *Node) OutputAt(i int) (*Socket, error) {
	if i < 0 || i >= len(n.outputs) {
		return nil, fmt.Errorf("output %d of %d on node %q: %w", i, len(n.outputs), n.name, core.ErrIndexOutOfRange)
	}
	return n.outputs[i], nil
}

func (n *Node) Inputs() []*Socket {
	return append([]*Socket(nil), n.inputs...)
}

func (n *Node) Outputs() []*Socket {
	return append([]*Socket(nil), n.outputs...)
}
