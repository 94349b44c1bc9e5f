// Package mesh holds polygon-list mesh datablocks and the edit buffer used
// to mutate them.
package mesh

import (
	"fmt"

	"github.com/cj-mills/trimotion/studio/core"
	"github.com/cj-mills/trimotion/studio/math3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a vertex sequence plus polygons indexing into it. Vertices have no
// identity beyond their position in the sequence: deleting one renumbers
// everything behind it. Mutations go through an EditBuffer so the stored
// geometry never holds dangling polygon indices.
type Mesh struct {
	handle   core.Handle
	name     string
	vertices []r3.Vec
	polygons [][]int
}

// New builds a mesh from the given geometry. Every polygon index must fall
// inside the vertex sequence and every polygon needs at least three corners.
func New(name string, vertices []r3.Vec, polygons [][]int) (*Mesh, error) {
	if err := validatePolygons(len(vertices), polygons); err != nil {
		return nil, fmt.Errorf("mesh %q: %w", name, err)
	}
	return &Mesh{
		handle:   core.NewHandle(),
		name:     name,
		vertices: cloneVertices(vertices),
		polygons: clonePolygons(polygons),
	}, nil
}

func (m *Mesh) Handle() core.Handle {
	return m.handle
}

func (m *Mesh) Name() string {
	return m.name
}

func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

func (m *Mesh) PolygonCount() int {
	return len(m.polygons)
}

// Vertex returns the position at index i.
func (m *Mesh) Vertex(i int) (r3.Vec, error) {
	if i < 0 || i >= len(m.vertices) {
		return r3.Vec{}, fmt.Errorf("vertex %d of %d in %q: %w", i, len(m.vertices), m.name, core.ErrIndexOutOfRange)
	}
	return m.vertices[i], nil
}

// Vertices returns a copy of the vertex sequence.
func (m *Mesh) Vertices() []r3.Vec {
	return cloneVertices(m.vertices)
}

// Polygon returns the corner indices of polygon i.
func (m *Mesh) Polygon(i int) ([]int, error) {
	if i < 0 || i >= len(m.polygons) {
		return nil, fmt.Errorf("polygon %d of %d in %q: %w", i, len(m.polygons), m.name, core.ErrIndexOutOfRange)
	}
	return append([]int(nil), m.polygons[i]...), nil
}

// Polygons returns a deep copy of the polygon list.
func (m *Mesh) Polygons() [][]int {
	return clonePolygons(m.polygons)
}

// Centroid is the arithmetic mean of the vertices in local space.
func (m *Mesh) Centroid() r3.Vec {
	return math3.Centroid(m.vertices)
}

// PolygonNormal is the unit normal of polygon i, oriented by its winding.
// The cyclic cross sum keeps non-planar polygons well defined.
func (m *Mesh) PolygonNormal(i int) (r3.Vec, error) {
	if i < 0 || i >= len(m.polygons) {
		return r3.Vec{}, fmt.Errorf("polygon %d of %d in %q: %w", i, len(m.polygons), m.name, core.ErrIndexOutOfRange)
	}
	poly := m.polygons[i]
	var n r3.Vec
	for k, vi := range poly {
		n = r3.Add(n, r3.Cross(m.vertices[vi], m.vertices[poly[(k+1)%len(poly)]]))
	}
	if r3.Norm(n) == 0 {
		return r3.Vec{}, fmt.Errorf("polygon %d in %q is degenerate: %w", i, m.name, core.ErrInvalidParameter)
	}
	return r3.Unit(n), nil
}

// clone deep-copies the geometry under a new name and handle.
func (m *Mesh) clone(name string) *Mesh {
	return &Mesh{
		handle:   core.NewHandle(),
		name:     name,
		vertices: cloneVertices(m.vertices),
		polygons: clonePolygons(m.polygons),
	}
}

func validatePolygons(vertexCount int, polygons [][]int) error {
	for pi, poly := range polygons {
		if len(poly) < 3 {
			return fmt.Errorf("polygon %d has %d corners: %w", pi, len(poly), core.ErrInvalidParameter)
		}
		for _, vi := range poly {
			if vi < 0 || vi >= vertexCount {
				return fmt.Errorf("polygon %d references vertex %d of %d: %w", pi, vi, vertexCount, core.ErrIndexOutOfRange)
			}
		}
	}
	return nil
}

func cloneVertices(vertices []r3.Vec) []r3.Vec {
	return append([]r3.Vec(nil), vertices...)
}

func clonePolygons(polygons [][]int) [][]int {
	out := make([][]int, len(polygons))
	for i, poly := range polygons {
		out[i] = append([]int(nil), poly...)
	}
	return out
}
