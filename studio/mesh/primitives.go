package mesh

import (
	"fmt"
	"math"

	"github.com/cj-mills/trimotion/studio/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// Primitive builders. Each returns a fresh mesh with a deterministic vertex
// order so callers can edit by index right after creation.

type ConeParams struct {
	// Segments is the number of vertices in the base ring.
	Segments int
	// Radius of the base ring.
	Radius float64
	// TipRadius of the top ring. Zero closes the cone to a single apex.
	TipRadius float64
	// Depth is the height along Z; the cone is centered on the origin.
	Depth float64
}

func DefaultConeParams() ConeParams {
	return ConeParams{Segments: 32, Radius: 1, TipRadius: 0, Depth: 2}
}

// NewCone builds a cone: Segments base-ring vertices first, then the apex
// (or the top ring when TipRadius is nonzero). With a closed tip that means
// the apex sits at index Segments, after the ring.
func NewCone(name string, p ConeParams) (*Mesh, error) {
	if p.Segments < 3 {
		return nil, fmt.Errorf("cone %q needs at least 3 segments, got %d: %w", name, p.Segments, core.ErrInvalidParameter)
	}
	if p.Radius <= 0 {
		core.LogWarn("cone radius must be positive. Defaulting to one.")
		p.Radius = 1.0
	}
	if p.Depth <= 0 {
		core.LogWarn("cone depth must be positive. Defaulting to two.")
		p.Depth = 2.0
	}
	if p.TipRadius < 0 {
		core.LogWarn("cone tip radius must not be negative. Defaulting to zero.")
		p.TipRadius = 0
	}

	n := p.Segments
	half := p.Depth / 2
	vertices := ring(n, p.Radius, -half)

	var polygons [][]int
	if p.TipRadius == 0 {
		apex := n
		vertices = append(vertices, r3.Vec{Z: half})
		polygons = append(polygons, ngonDown(n))
		for i := 0; i < n; i++ {
			polygons = append(polygons, []int{i, (i + 1) % n, apex})
		}
	} else {
		vertices = append(vertices, ring(n, p.TipRadius, half)...)
		polygons = append(polygons, ngonDown(n), ngonUp(n, n))
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			polygons = append(polygons, []int{i, j, n + j, n + i})
		}
	}
	return New(name, vertices, polygons)
}

type CylinderParams struct {
	Segments int
	Radius   float64
	Depth    float64
}

func DefaultCylinderParams() CylinderParams {
	return CylinderParams{Segments: 32, Radius: 1, Depth: 2}
}

// NewCylinder is a cone whose top ring matches the base.
func NewCylinder(name string, p CylinderParams) (*Mesh, error) {
	if p.Radius <= 0 {
		core.LogWarn("cylinder radius must be positive. Defaulting to one.")
		p.Radius = 1.0
	}
	return NewCone(name, ConeParams{
		Segments:  p.Segments,
		Radius:    p.Radius,
		TipRadius: p.Radius,
		Depth:     p.Depth,
	})
}

type CubeParams struct {
	Size float64
}

func DefaultCubeParams() CubeParams {
	return CubeParams{Size: 2}
}

// NewCube builds an axis-aligned cube of edge length Size centered on the
// origin: eight vertices, six quads.
func NewCube(name string, p CubeParams) (*Mesh, error) {
	if p.Size <= 0 {
		core.LogWarn("cube size must be positive. Defaulting to two.")
		p.Size = 2.0
	}
	h := p.Size / 2
	vertices := []r3.Vec{
		{X: -h, Y: -h, Z: -h},
		{X: -h, Y: -h, Z: h},
		{X: -h, Y: h, Z: -h},
		{X: -h, Y: h, Z: h},
		{X: h, Y: -h, Z: -h},
		{X: h, Y: -h, Z: h},
		{X: h, Y: h, Z: -h},
		{X: h, Y: h, Z: h},
	}
	polygons := [][]int{
		{0, 1, 3, 2},
		{2, 3, 7, 6},
		{6, 7, 5, 4},
		{4, 5, 1, 0},
		{2, 6, 4, 0},
		{7, 3, 1, 5},
	}
	return New(name, vertices, polygons)
}

type PlaneParams struct {
	Size float64
}

func DefaultPlaneParams() PlaneParams {
	return PlaneParams{Size: 2}
}

// NewPlane builds a single quad of edge length Size in the XY plane.
func NewPlane(name string, p PlaneParams) (*Mesh, error) {
	if p.Size <= 0 {
		core.LogWarn("plane size must be positive. Defaulting to two.")
		p.Size = 2.0
	}
	h := p.Size / 2
	vertices := []r3.Vec{
		{X: -h, Y: -h},
		{X: h, Y: -h},
		{X: -h, Y: h},
		{X: h, Y: h},
	}
	return New(name, vertices, [][]int{{0, 1, 3, 2}})
}

// FillKind selects how a circle's interior is filled.
type FillKind uint8

const (
	FillNone FillKind = iota
	FillNGon
	FillTriangleFan
)

type CircleParams struct {
	Segments int
	Radius   float64
	Fill     FillKind
}

func DefaultCircleParams() CircleParams {
	return CircleParams{Segments: 32, Radius: 1, Fill: FillNone}
}

// NewCircle builds a ring of vertices in the XY plane. FillNGon closes it
// with one polygon; FillTriangleFan appends a center vertex after the ring
// and fans triangles from it.
func NewCircle(name string, p CircleParams) (*Mesh, error) {
	if p.Segments < 3 {
		return nil, fmt.Errorf("circle %q needs at least 3 segments, got %d: %w", name, p.Segments, core.ErrInvalidParameter)
	}
	if p.Radius <= 0 {
		core.LogWarn("circle radius must be positive. Defaulting to one.")
		p.Radius = 1.0
	}

	n := p.Segments
	vertices := ring(n, p.Radius, 0)
	var polygons [][]int
	switch p.Fill {
	case FillNone:
	case FillNGon:
		polygons = append(polygons, ngonUp(0, n))
	case FillTriangleFan:
		center := n
		vertices = append(vertices, r3.Vec{})
		for i := 0; i < n; i++ {
			polygons = append(polygons, []int{i, (i + 1) % n, center})
		}
	default:
		return nil, fmt.Errorf("circle %q fill kind %d: %w", name, p.Fill, core.ErrInvalidParameter)
	}
	return New(name, vertices, polygons)
}

type UVSphereParams struct {
	Segments int
	Rings    int
	Radius   float64
}

func DefaultUVSphereParams() UVSphereParams {
	return UVSphereParams{Segments: 32, Rings: 16, Radius: 1}
}

// NewUVSphere builds a latitude/longitude sphere: top pole at index zero,
// then Rings-1 latitude rows of Segments vertices from north to south, then
// the bottom pole last.
func NewUVSphere(name string, p UVSphereParams) (*Mesh, error) {
	if p.Segments < 3 {
		return nil, fmt.Errorf("sphere %q needs at least 3 segments, got %d: %w", name, p.Segments, core.ErrInvalidParameter)
	}
	if p.Rings < 2 {
		return nil, fmt.Errorf("sphere %q needs at least 2 rings, got %d: %w", name, p.Rings, core.ErrInvalidParameter)
	}
	if p.Radius <= 0 {
		core.LogWarn("sphere radius must be positive. Defaulting to one.")
		p.Radius = 1.0
	}

	s, r := p.Segments, p.Rings
	vertices := []r3.Vec{{Z: p.Radius}}
	for row := 1; row < r; row++ {
		phi := math.Pi * float64(row) / float64(r)
		z := p.Radius * math.Cos(phi)
		vertices = append(vertices, ring(s, p.Radius*math.Sin(phi), z)...)
	}
	bottom := len(vertices)
	vertices = append(vertices, r3.Vec{Z: -p.Radius})

	rowStart := func(row int) int { return 1 + (row-1)*s }

	var polygons [][]int
	top := rowStart(1)
	for i := 0; i < s; i++ {
		polygons = append(polygons, []int{0, top + i, top + (i+1)%s})
	}
	for row := 1; row < r-1; row++ {
		a, b := rowStart(row), rowStart(row+1)
		for i := 0; i < s; i++ {
			j := (i + 1) % s
			polygons = append(polygons, []int{a + i, b + i, b + j, a + j})
		}
	}
	last := rowStart(r - 1)
	for i := 0; i < s; i++ {
		polygons = append(polygons, []int{bottom, last + (i+1)%s, last + i})
	}
	return New(name, vertices, polygons)
}

// ring lays out n vertices counter-clockwise in the plane z, starting on the
// positive X axis.
func ring(n int, radius, z float64) []r3.Vec {
	out := make([]r3.Vec, 0, n)
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		out = append(out, r3.Vec{X: radius * cos, Y: radius * sin, Z: z})
	}
	return out
}

// ngonDown is the polygon over ring indices [0,n) wound to face -Z.
func ngonDown(n int) []int {
	poly := make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		poly = append(poly, i)
	}
	return poly
}

// ngonUp is the polygon over indices [start,start+n) wound to face +Z.
func ngonUp(start, n int) []int {
	poly := make([]int, 0, n)
	for i := 0; i < n; i++ {
		poly = append(poly, start+i)
	}
	return poly
}
