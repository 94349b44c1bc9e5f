package mesh

import (
	"fmt"

	"github.com/cj-mills/trimotion/studio/core"
)

// System owns every mesh datablock in a document, keyed by name. Names are
// made unique on registration the way datablock names usually are, with a
// ".001" style suffix.
type System struct {
	meshes map[string]*Mesh
	order  []string
}

func NewSystem() *System {
	return &System{
		meshes: make(map[string]*Mesh),
	}
}

func (s *System) taken(name string) bool {
	_, ok := s.meshes[name]
	return ok
}

// Add registers m, renaming it if its name is already in use, and returns it.
func (s *System) Add(m *Mesh) *Mesh {
	m.name = core.UniqueName(m.name, s.taken)
	s.meshes[m.name] = m
	s.order = append(s.order, m.name)
	core.LogDebug("mesh system registered %q (%d vertices, %d polygons)", m.name, m.VertexCount(), m.PolygonCount())
	return m
}

func (s *System) CreateCone(name string, p ConeParams) (*Mesh, error) {
	m, err := NewCone(name, p)
	if err != nil {
		return nil, err
	}
	return s.Add(m), nil
}

func (s *System) CreateCylinder(name string, p CylinderParams) (*Mesh, error) {
	m, err := NewCylinder(name, p)
	if err != nil {
		return nil, err
	}
	return s.Add(m), nil
}

func (s *System) CreateCube(name string, p CubeParams) (*Mesh, error) {
	m, err := NewCube(name, p)
	if err != nil {
		return nil, err
	}
	return s.Add(m), nil
}

func (s *System) CreatePlane(name string, p PlaneParams) (*Mesh, error) {
	m, err := NewPlane(name, p)
	if err != nil {
		return nil, err
	}
	return s.Add(m), nil
}

func (s *System) CreateCircle(name string, p CircleParams) (*Mesh, error) {
	m, err := NewCircle(name, p)
	if err != nil {
		return nil, err
	}
	return s.Add(m), nil
}

func (s *System) CreateUVSphere(name string, p UVSphereParams) (*Mesh, error) {
	m, err := NewUVSphere(name, p)
	if err != nil {
		return nil, err
	}
	return s.Add(m), nil
}

func (s *System) Get(name string) (*Mesh, bool) {
	m, ok := s.meshes[name]
	return m, ok
}

// Duplicate deep-copies the named mesh and registers the copy under the
// next free suffixed name.
func (s *System) Duplicate(name string) (*Mesh, error) {
	m, ok := s.meshes[name]
	if !ok {
		return nil, fmt.Errorf("duplicate mesh %q: %w", name, core.ErrResourceUnavailable)
	}
	return s.Add(m.clone(m.name)), nil
}

func (s *System) Remove(name string) error {
	if _, ok := s.meshes[name]; !ok {
		return fmt.Errorf("remove mesh %q: %w", name, core.ErrResourceUnavailable)
	}
	delete(s.meshes, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *System) Count() int {
	return len(s.meshes)
}

// Names lists the registered meshes in insertion order.
func (s *System) Names() []string {
	return append([]string(nil), s.order...)
}
