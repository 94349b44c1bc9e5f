package mesh_test

import (
	"errors"
	"testing"

	"github.com/cj-mills/trimotion/studio/core"
	"github.com/cj-mills/trimotion/studio/math3"
	"github.com/cj-mills/trimotion/studio/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-12

func TestConeVertexOrder(t *testing.T) {
	const (
		segments = 3
		depth    = 0.5
	)
	m, err := mesh.NewCone("Cone", mesh.ConeParams{Segments: segments, Radius: 1, Depth: depth})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.VertexCount(); got != segments+1 {
		t.Fatalf("vertex count mismatch. got %d. want %d", got, segments+1)
	}
	if got := m.PolygonCount(); got != segments+1 {
		t.Fatalf("polygon count mismatch. got %d. want %d", got, segments+1)
	}
	apex, err := m.Vertex(segments)
	if err != nil {
		t.Fatal(err)
	}
	if !math3.EqualWithin(apex, r3.Vec{Z: depth / 2}, tol) {
		t.Errorf("apex position mismatch. got %v. want %v", apex, r3.Vec{Z: depth / 2})
	}
	for i := 0; i < segments; i++ {
		v, err := m.Vertex(i)
		if err != nil {
			t.Fatal(err)
		}
		if v.Z != -depth/2 {
			t.Errorf("ring vertex %d off the base plane. got z=%g. want %g", i, v.Z, -depth/2)
		}
	}
}

func TestDeriveRemovesApex(t *testing.T) {
	m, err := mesh.NewCone("Cone", mesh.ConeParams{Segments: 3, Radius: 1, Depth: 2})
	if err != nil {
		t.Fatal(err)
	}
	if err := mesh.Derive(m, []int{3}); err != nil {
		t.Fatal(err)
	}
	if got := m.VertexCount(); got != 3 {
		t.Errorf("vertex count mismatch. got %d. want 3", got)
	}
	if got := m.PolygonCount(); got != 1 {
		t.Fatalf("polygon count mismatch. got %d. want 1", got)
	}
	poly, err := m.Polygon(0)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{2, 1, 0}
	if len(poly) != len(want) {
		t.Fatalf("base polygon arity mismatch. got %d. want %d", len(poly), len(want))
	}
	for i := range want {
		if poly[i] != want[i] {
			t.Errorf("base polygon corner %d mismatch. got %d. want %d", i, poly[i], want[i])
		}
	}
}

func TestDeriveOutOfRangeLeavesMeshUntouched(t *testing.T) {
	m, err := mesh.NewCone("Cone", mesh.ConeParams{Segments: 3, Radius: 1, Depth: 2})
	if err != nil {
		t.Fatal(err)
	}
	for _, bad := range [][]int{{4}, {-1}, {0, 99}} {
		err := mesh.Derive(m, bad)
		if !errors.Is(err, core.ErrIndexOutOfRange) {
			t.Fatalf("remove %v: got %v. want ErrIndexOutOfRange", bad, err)
		}
		if got := m.VertexCount(); got != 4 {
			t.Errorf("remove %v mutated vertices. got %d. want 4", bad, got)
		}
		if got := m.PolygonCount(); got != 4 {
			t.Errorf("remove %v mutated polygons. got %d. want 4", bad, got)
		}
	}
}

func TestDeriveEmptySelectionIsNoOp(t *testing.T) {
	m, err := mesh.NewCone("Cone", mesh.ConeParams{Segments: 3, Radius: 1, Depth: 2})
	if err != nil {
		t.Fatal(err)
	}
	vertices := m.Vertices()
	polygons := m.Polygons()

	if err := mesh.Derive(m, nil); err != nil {
		t.Fatal(err)
	}
	if err := mesh.Derive(m, []int{}); err != nil {
		t.Fatal(err)
	}

	after := m.Vertices()
	if len(after) != len(vertices) {
		t.Fatalf("vertex count changed. got %d. want %d", len(after), len(vertices))
	}
	for i := range vertices {
		if !math3.EqualWithin(after[i], vertices[i], tol) {
			t.Errorf("vertex %d moved. got %v. want %v", i, after[i], vertices[i])
		}
	}
	afterPolys := m.Polygons()
	if len(afterPolys) != len(polygons) {
		t.Fatalf("polygon count changed. got %d. want %d", len(afterPolys), len(polygons))
	}
	for i := range polygons {
		for j := range polygons[i] {
			if afterPolys[i][j] != polygons[i][j] {
				t.Errorf("polygon %d corner %d changed. got %d. want %d", i, j, afterPolys[i][j], polygons[i][j])
			}
		}
	}
}

func TestDeriveDuplicateIndicesCollapse(t *testing.T) {
	m, err := mesh.NewCone("Cone", mesh.ConeParams{Segments: 3, Radius: 1, Depth: 2})
	if err != nil {
		t.Fatal(err)
	}
	if err := mesh.Derive(m, []int{3, 3, 3}); err != nil {
		t.Fatal(err)
	}
	if got := m.VertexCount(); got != 3 {
		t.Errorf("vertex count mismatch. got %d. want 3", got)
	}
}

func TestDeriveRenumbersSurvivingPolygons(t *testing.T) {
	vertices := []r3.Vec{
		{X: 0},
		{X: 1},
		{X: 2},
		{X: 3},
	}
	polygons := [][]int{
		{0, 1, 2},
		{1, 2, 3},
	}
	m, err := mesh.New("strip", vertices, polygons)
	if err != nil {
		t.Fatal(err)
	}
	if err := mesh.Derive(m, []int{0}); err != nil {
		t.Fatal(err)
	}
	if got := m.PolygonCount(); got != 1 {
		t.Fatalf("polygon count mismatch. got %d. want 1", got)
	}
	poly, err := m.Polygon(0)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, 2}
	for i := range want {
		if poly[i] != want[i] {
			t.Errorf("corner %d mismatch. got %d. want %d", i, poly[i], want[i])
		}
	}
	v, err := m.Vertex(0)
	if err != nil {
		t.Fatal(err)
	}
	if v.X != 1 {
		t.Errorf("vertex 0 should be the old vertex 1. got x=%g. want 1", v.X)
	}
}

func TestEditBufferFreeIsIdempotent(t *testing.T) {
	m, err := mesh.NewCone("Cone", mesh.ConeParams{Segments: 3, Radius: 1, Depth: 2})
	if err != nil {
		t.Fatal(err)
	}
	b, err := mesh.NewEditBuffer(m)
	if err != nil {
		t.Fatal(err)
	}
	b.Free()
	b.Free()
	if err := b.DeleteVertices(0); !errors.Is(err, core.ErrResourceUnavailable) {
		t.Errorf("delete on freed buffer: got %v. want ErrResourceUnavailable", err)
	}
	if err := b.Commit(); !errors.Is(err, core.ErrResourceUnavailable) {
		t.Errorf("commit on freed buffer: got %v. want ErrResourceUnavailable", err)
	}
}

func TestEditBufferCommitWritesBack(t *testing.T) {
	m, err := mesh.NewPlane("Plane", mesh.PlaneParams{Size: 2})
	if err != nil {
		t.Fatal(err)
	}
	b, err := mesh.NewEditBuffer(m)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Free()
	if err := b.Translate(r3.Vec{Z: 5}); err != nil {
		t.Fatal(err)
	}
	v, err := m.Vertex(0)
	if err != nil {
		t.Fatal(err)
	}
	if v.Z != 0 {
		t.Fatalf("mesh mutated before commit. got z=%g. want 0", v.Z)
	}
	if err := b.Commit(); err != nil {
		t.Fatal(err)
	}
	v, err = m.Vertex(0)
	if err != nil {
		t.Fatal(err)
	}
	if v.Z != 5 {
		t.Errorf("commit did not write back. got z=%g. want 5", v.Z)
	}
}

func TestNewRejectsBadPolygons(t *testing.T) {
	vertices := []r3.Vec{{}, {X: 1}, {Y: 1}}
	if _, err := mesh.New("bad", vertices, [][]int{{0, 1, 5}}); !errors.Is(err, core.ErrIndexOutOfRange) {
		t.Errorf("dangling index: got %v. want ErrIndexOutOfRange", err)
	}
	if _, err := mesh.New("bad", vertices, [][]int{{0, 1}}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("two-corner polygon: got %v. want ErrInvalidParameter", err)
	}
}

func TestConeRejectsTooFewSegments(t *testing.T) {
	if _, err := mesh.NewCone("Cone", mesh.ConeParams{Segments: 2, Radius: 1, Depth: 2}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("got %v. want ErrInvalidParameter", err)
	}
}

func TestPrimitiveCounts(t *testing.T) {
	cube, err := mesh.NewCube("Cube", mesh.DefaultCubeParams())
	if err != nil {
		t.Fatal(err)
	}
	if cube.VertexCount() != 8 || cube.PolygonCount() != 6 {
		t.Errorf("cube mismatch. got %d/%d. want 8/6", cube.VertexCount(), cube.PolygonCount())
	}

	plane, err := mesh.NewPlane("Plane", mesh.DefaultPlaneParams())
	if err != nil {
		t.Fatal(err)
	}
	if plane.VertexCount() != 4 || plane.PolygonCount() != 1 {
		t.Errorf("plane mismatch. got %d/%d. want 4/1", plane.VertexCount(), plane.PolygonCount())
	}

	cyl, err := mesh.NewCylinder("Cylinder", mesh.CylinderParams{Segments: 3, Radius: 1, Depth: 2})
	if err != nil {
		t.Fatal(err)
	}
	if cyl.VertexCount() != 6 || cyl.PolygonCount() != 5 {
		t.Errorf("cylinder mismatch. got %d/%d. want 6/5", cyl.VertexCount(), cyl.PolygonCount())
	}

	sphere, err := mesh.NewUVSphere("Sphere", mesh.UVSphereParams{Segments: 4, Rings: 2, Radius: 1})
	if err != nil {
		t.Fatal(err)
	}
	if sphere.VertexCount() != 6 || sphere.PolygonCount() != 8 {
		t.Errorf("sphere mismatch. got %d/%d. want 6/8", sphere.VertexCount(), sphere.PolygonCount())
	}

	fan, err := mesh.NewCircle("Circle", mesh.CircleParams{Segments: 5, Radius: 1, Fill: mesh.FillTriangleFan})
	if err != nil {
		t.Fatal(err)
	}
	if fan.VertexCount() != 6 || fan.PolygonCount() != 5 {
		t.Errorf("fan circle mismatch. got %d/%d. want 6/5", fan.VertexCount(), fan.PolygonCount())
	}
}

func TestPolygonNormal(t *testing.T) {
	cone, err := mesh.NewCone("Cone", mesh.ConeParams{Segments: 3, Radius: 1, Depth: 2})
	if err != nil {
		t.Fatal(err)
	}
	// The base polygon faces straight down.
	base, err := cone.PolygonNormal(0)
	if err != nil {
		t.Fatal(err)
	}
	if !math3.EqualWithin(base, r3.Vec{Z: -1}, 1e-9) {
		t.Errorf("base normal mismatch. got %v. want -Z", base)
	}

	cube, err := mesh.NewCube("Cube", mesh.DefaultCubeParams())
	if err != nil {
		t.Fatal(err)
	}
	outward := []r3.Vec{
		{X: -1}, {Y: 1}, {X: 1}, {Y: -1}, {Z: -1}, {Z: 1},
	}
	for i, want := range outward {
		n, err := cube.PolygonNormal(i)
		if err != nil {
			t.Fatal(err)
		}
		if !math3.EqualWithin(n, want, 1e-9) {
			t.Errorf("cube face %d normal mismatch. got %v. want %v", i, n, want)
		}
	}

	if _, err := cube.PolygonNormal(6); !errors.Is(err, core.ErrIndexOutOfRange) {
		t.Errorf("face 6: got %v. want ErrIndexOutOfRange", err)
	}
}

func TestCentroid(t *testing.T) {
	m, err := mesh.NewCone("Cone", mesh.ConeParams{Segments: 3, Radius: 1, Depth: 2})
	if err != nil {
		t.Fatal(err)
	}
	want := r3.Vec{Z: -0.5}
	if got := m.Centroid(); !math3.EqualWithin(got, want, 1e-9) {
		t.Errorf("centroid mismatch. got %v. want %v", got, want)
	}
}

func TestSystemNamesAndDuplicate(t *testing.T) {
	s := mesh.NewSystem()
	if _, err := s.CreateCone("Cone", mesh.ConeParams{Segments: 3, Radius: 1, Depth: 2}); err != nil {
		t.Fatal(err)
	}
	second, err := s.CreateCone("Cone", mesh.ConeParams{Segments: 4, Radius: 1, Depth: 2})
	if err != nil {
		t.Fatal(err)
	}
	if second.Name() != "Cone.001" {
		t.Errorf("second name mismatch. got %q. want %q", second.Name(), "Cone.001")
	}

	dup, err := s.Duplicate("Cone.001")
	if err != nil {
		t.Fatal(err)
	}
	if dup.Name() != "Cone.002" {
		t.Errorf("duplicate name mismatch. got %q. want %q", dup.Name(), "Cone.002")
	}
	if dup.VertexCount() != second.VertexCount() {
		t.Errorf("duplicate geometry mismatch. got %d vertices. want %d", dup.VertexCount(), second.VertexCount())
	}
	if dup.Handle() == second.Handle() {
		t.Error("duplicate shares the source handle")
	}

	// Deep copy: editing the duplicate must not touch the source.
	if err := mesh.Derive(dup, []int{0}); err != nil {
		t.Fatal(err)
	}
	if second.VertexCount() != 5 {
		t.Errorf("source mutated by duplicate edit. got %d vertices. want 5", second.VertexCount())
	}

	names := s.Names()
	wantNames := []string{"Cone", "Cone.001", "Cone.002"}
	if len(names) != len(wantNames) {
		t.Fatalf("name count mismatch. got %d. want %d", len(names), len(wantNames))
	}
	for i := range wantNames {
		if names[i] != wantNames[i] {
			t.Errorf("name %d mismatch. got %q. want %q", i, names[i], wantNames[i])
		}
	}

	if err := s.Remove("Cone.002"); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("Cone.002"); !errors.Is(err, core.ErrResourceUnavailable) {
		t.Errorf("double remove: got %v. want ErrResourceUnavailable", err)
	}
	if got := s.Count(); got != 2 {
		t.Errorf("count mismatch. got %d. want 2", got)
	}
}
