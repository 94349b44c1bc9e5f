package shading

import (
	"fmt"

	"github.com/cj-mills/trimotion/studio/core"
)

// Material is a named surface datablock. It starts without a node tree;
// EnableNodes switches it over and seeds the default graph.
type Material struct {
	handle   core.Handle
	name     string
	useNodes bool
	tree     *NodeTree
}

func newMaterial(name string) *Material {
	return &Material{
		handle: core.NewHandle(),
		name:   name,
	}
}

func (m *Material) Handle() core.Handle {
	return m.handle
}

func (m *Material) Name() string {
	return m.name
}

func (m *Material) UseNodes() bool {
	return m.useNodes
}

// NodeTree is nil until EnableNodes has run.
func (m *Material) NodeTree() *NodeTree {
	return m.tree
}

// EnableNodes turns the material into a node-driven one, seeding the
// default Principled BSDF graph. Calling it again is a no-op; the existing
// tree is kept.
func (m *Material) EnableNodes() {
	if m.useNodes {
		return
	}
	m.useNodes = true
	m.tree = NewMaterialNodeTree()
}

// System owns every material datablock in a document, keyed by name.
type System struct {
	materials map[string]*Material
	order     []string
}

func NewSystem() *System {
	return &System{
		materials: make(map[string]*Material),
	}
}

// FindOrCreate returns the named material, creating it on first use.
func (s *System) FindOrCreate(name string) *Material {
	if m, ok := s.materials[name]; ok {
		return m
	}
	m := newMaterial(name)
	s.materials[name] = m
	s.order = append(s.order, name)
	core.LogDebug("material system created %q", name)
	return m
}

func (s *System) Get(name string) (*Material, bool) {
	m, ok := s.materials[name]
	return m, ok
}

func (s *System) Remove(name string) error {
	if _, ok := s.materials[name]; !ok {
		return fmt.Errorf("remove material %q: %w", name, core.ErrResourceUnavailable)
	}
	delete(s.materials, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *System) Count() int {
	return len(s.materials)
}

// Names lists the materials in creation order.
func (s *System) Names() []string {
	return append([]string(nil), s.order...)
}
