package mesh

import (
	"fmt"

	"github.com/cj-mills/trimotion/studio/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// EditBuffer is a working copy of one mesh's geometry. Edits accumulate in
// the buffer and reach the mesh only on Commit, so a failed edit never
// leaves the mesh half-changed. A freed buffer rejects every further call.
type EditBuffer struct {
	src      *Mesh
	vertices []r3.Vec
	polygons [][]int
	freed    bool
}

// NewEditBuffer copies m's geometry into a fresh working copy.
func NewEditBuffer(m *Mesh) (*EditBuffer, error) {
	if m == nil {
		return nil, fmt.Errorf("edit buffer needs a mesh: %w", core.ErrResourceUnavailable)
	}
	return &EditBuffer{
		src:      m,
		vertices: cloneVertices(m.vertices),
		polygons: clonePolygons(m.polygons),
	}, nil
}

func (b *EditBuffer) ready() error {
	if b.freed {
		return fmt.Errorf("edit buffer for %q already freed: %w", b.src.name, core.ErrResourceUnavailable)
	}
	return nil
}

func (b *EditBuffer) VertexCount() int {
	return len(b.vertices)
}

func (b *EditBuffer) PolygonCount() int {
	return len(b.polygons)
}

// DeleteVertices removes the vertices at the given indices together with
// every polygon that uses one of them, then renumbers the survivors.
// Indices refer to the buffer's current vertex order and duplicates
// collapse. The buffer is untouched when any index is out of range.
func (b *EditBuffer) DeleteVertices(indices ...int) error {
	if err := b.ready(); err != nil {
		return err
	}
	for _, vi := range indices {
		if vi < 0 || vi >= len(b.vertices) {
			return fmt.Errorf("delete vertex %d of %d: %w", vi, len(b.vertices), core.ErrIndexOutOfRange)
		}
	}
	doomed := make(map[int]bool, len(indices))
	for _, vi := range indices {
		doomed[vi] = true
	}

	remap := make([]int, len(b.vertices))
	vertices := make([]r3.Vec, 0, len(b.vertices)-len(doomed))
	for i, v := range b.vertices {
		if doomed[i] {
			remap[i] = -1
			continue
		}
		remap[i] = len(vertices)
		vertices = append(vertices, v)
	}

	polygons := make([][]int, 0, len(b.polygons))
polys:
	for _, poly := range b.polygons {
		for _, vi := range poly {
			if remap[vi] < 0 {
				continue polys
			}
		}
		next := make([]int, len(poly))
		for i, vi := range poly {
			next[i] = remap[vi]
		}
		polygons = append(polygons, next)
	}

	b.vertices = vertices
	b.polygons = polygons
	return nil
}

// Translate moves every vertex in the buffer by delta.
func (b *EditBuffer) Translate(delta r3.Vec) error {
	if err := b.ready(); err != nil {
		return err
	}
	for i := range b.vertices {
		b.vertices[i] = r3.Add(b.vertices[i], delta)
	}
	return nil
}

// Commit writes the buffer's geometry back to the source mesh.
func (b *EditBuffer) Commit() error {
	if err := b.ready(); err != nil {
		return err
	}
	b.src.vertices = cloneVertices(b.vertices)
	b.src.polygons = clonePolygons(b.polygons)
	return nil
}

// Free releases the working copy. Safe to call more than once; every
// operation after the first Free fails with ErrResourceUnavailable.
func (b *EditBuffer) Free() {
	b.freed = true
	b.vertices = nil
	b.polygons = nil
}

// Derive rebuilds m in place with the vertices at the given indices removed,
// along with every polygon that used them. Indices refer to m's current
// vertex order; on any out-of-range index the mesh is left untouched. The
// working copy is freed on every path out.
func Derive(m *Mesh, remove []int) error {
	b, err := NewEditBuffer(m)
	if err != nil {
		return err
	}
	defer b.Free()
	if err := b.DeleteVertices(remove...); err != nil {
		return err
	}
	return b.Commit()
}
