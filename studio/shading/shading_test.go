package shading_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cj-mills/trimotion/studio/core"
	"github.com/cj-mills/trimotion/studio/shading"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestEnableNodesSeedsDefaultGraph(t *testing.T) {
	s := shading.NewSystem()
	m := s.FindOrCreate("Material")
	if m.UseNodes() {
		t.Fatal("fresh material should not use nodes")
	}
	if m.NodeTree() != nil {
		t.Fatal("fresh material should have no tree")
	}

	m.EnableNodes()
	nt := m.NodeTree()
	if nt == nil {
		t.Fatal("enable nodes left no tree")
	}
	if got := nt.NodeCount(); got != 2 {
		t.Fatalf("node count mismatch. got %d. want 2", got)
	}
	if got := nt.LinkCount(); got != 1 {
		t.Fatalf("link count mismatch. got %d. want 1", got)
	}

	bsdf, ok := nt.Get("Principled BSDF")
	if !ok {
		t.Fatal("no Principled BSDF in default graph")
	}
	out, ok := nt.Get("Material Output")
	if !ok {
		t.Fatal("no Material Output in default graph")
	}
	surface, err := out.Input("Surface")
	if err != nil {
		t.Fatal(err)
	}
	link := surface.Link()
	if link == nil {
		t.Fatal("surface input is unlinked")
	}
	if link.From().Node() != bsdf {
		t.Errorf("surface linked from %q. want Principled BSDF", link.From().Node().Name())
	}

	// Enabling twice keeps the tree.
	m.EnableNodes()
	if m.NodeTree() != nt {
		t.Error("second EnableNodes replaced the tree")
	}
}

func TestSwapPrincipledForEmission(t *testing.T) {
	s := shading.NewSystem()
	m := s.FindOrCreate("Material")
	m.EnableNodes()
	nt := m.NodeTree()

	if bsdf, ok := nt.Get("Principled BSDF"); ok {
		if err := nt.Remove(bsdf); err != nil {
			t.Fatal(err)
		}
	}
	out, ok := nt.Get("Material Output")
	if !ok {
		t.Fatal("no Material Output")
	}
	surface, err := out.Input("Surface")
	if err != nil {
		t.Fatal(err)
	}
	if surface.Link() != nil {
		t.Fatal("removing the source node should drop its link")
	}
	if got := nt.LinkCount(); got != 0 {
		t.Fatalf("link count after removal mismatch. got %d. want 0", got)
	}

	emi := nt.New(shading.NodeTypeEmission)
	colorIn, err := emi.Input("Color")
	if err != nil {
		t.Fatal(err)
	}
	want := shading.NewColor(0, 0.5, 1, 1)
	if err := colorIn.SetColor(want); err != nil {
		t.Fatal(err)
	}
	if got := colorIn.Color(); got != want {
		t.Errorf("emission color mismatch. got %v. want %v", got, want)
	}

	emiOut, err := emi.Output("Emission")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := nt.Link(emiOut, surface); err != nil {
		t.Fatal(err)
	}
	if surface.Link() == nil || surface.Link().From().Node() != emi {
		t.Error("surface not linked to the emission shader")
	}
}

func TestLinkReplacesExistingEdge(t *testing.T) {
	nt := shading.NewMaterialNodeTree()
	out, _ := nt.Get("Material Output")
	surface, err := out.Input("Surface")
	if err != nil {
		t.Fatal(err)
	}

	hold := nt.New(shading.NodeTypeHoldout)
	holdOut, err := hold.Output("Holdout")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := nt.Link(holdOut, surface); err != nil {
		t.Fatal(err)
	}
	if got := nt.LinkCount(); got != 1 {
		t.Errorf("link count mismatch. got %d. want 1", got)
	}
	if surface.Link().From().Node() != hold {
		t.Error("relink did not replace the edge")
	}
}

func TestLinkRejectsBadSockets(t *testing.T) {
	nt := shading.NewMaterialNodeTree()
	out, _ := nt.Get("Material Output")
	bsdf, _ := nt.Get("Principled BSDF")
	surface, err := out.Input("Surface")
	if err != nil {
		t.Fatal(err)
	}
	baseColor, err := bsdf.Input("Base Color")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := nt.Link(baseColor, surface); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("input as source: got %v. want ErrInvalidParameter", err)
	}

	foreign := shading.NewMaterialNodeTree()
	foreignBSDF, _ := foreign.Get("Principled BSDF")
	foreignOut, err := foreignBSDF.Output("BSDF")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := nt.Link(foreignOut, surface); !errors.Is(err, core.ErrResourceUnavailable) {
		t.Errorf("foreign source node: got %v. want ErrResourceUnavailable", err)
	}
}

func TestNodeNamesStayUnique(t *testing.T) {
	nt := shading.NewMaterialNodeTree()
	first := nt.New(shading.NodeTypeEmission)
	second := nt.New(shading.NodeTypeEmission)
	if first.Name() != "Emission" {
		t.Errorf("first name mismatch. got %q. want %q", first.Name(), "Emission")
	}
	if second.Name() != "Emission.001" {
		t.Errorf("second name mismatch. got %q. want %q", second.Name(), "Emission.001")
	}
}

func TestSocketKindGuards(t *testing.T) {
	nt := shading.NewMaterialNodeTree()
	bsdf, _ := nt.Get("Principled BSDF")
	rough, err := bsdf.Input("Roughness")
	if err != nil {
		t.Fatal(err)
	}
	if err := rough.SetColor(shading.ColorWhite); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("color into float socket: got %v. want ErrInvalidParameter", err)
	}
	if err := rough.SetFloat(0.25); err != nil {
		t.Fatal(err)
	}
	if got := rough.Float(); got != 0.25 {
		t.Errorf("roughness mismatch. got %g. want 0.25", got)
	}

	out, _ := nt.Get("Material Output")
	disp, err := out.Input("Displacement")
	if err != nil {
		t.Fatal(err)
	}
	want := r3.Vec{Z: 0.1}
	if err := disp.SetVector(want); err != nil {
		t.Fatal(err)
	}
	if got := disp.Vector(); got != want {
		t.Errorf("displacement mismatch. got %v. want %v", got, want)
	}
	if err := disp.SetFloat(1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("float into vector socket: got %v. want ErrInvalidParameter", err)
	}
	if err := rough.SetVector(want); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("vector into float socket: got %v. want ErrInvalidParameter", err)
	}

	if _, err := bsdf.InputAt(99); !errors.Is(err, core.ErrIndexOutOfRange) {
		t.Errorf("input index 99: got %v. want ErrIndexOutOfRange", err)
	}
	if _, err := bsdf.Input("No Such Socket"); !errors.Is(err, core.ErrResourceUnavailable) {
		t.Errorf("missing socket: got %v. want ErrResourceUnavailable", err)
	}
}

func TestRemoveForeignNode(t *testing.T) {
	nt := shading.NewMaterialNodeTree()
	other := shading.NewMaterialNodeTree()
	foreign, _ := other.Get("Principled BSDF")
	if err := nt.Remove(foreign); !errors.Is(err, core.ErrResourceUnavailable) {
		t.Errorf("got %v. want ErrResourceUnavailable", err)
	}
}

func TestHoldoutShape(t *testing.T) {
	nt := shading.NewMaterialNodeTree()
	hold := nt.New(shading.NodeTypeHoldout)
	if got := len(hold.Inputs()); got != 0 {
		t.Errorf("holdout input count mismatch. got %d. want 0", got)
	}
	if got := len(hold.Outputs()); got != 1 {
		t.Errorf("holdout output count mismatch. got %d. want 1", got)
	}
}

func TestWorldTreeShape(t *testing.T) {
	nt := shading.NewWorldNodeTree()
	bg, ok := nt.Get("Background")
	if !ok {
		t.Fatal("no Background node")
	}
	out, ok := nt.Get("World Output")
	if !ok {
		t.Fatal("no World Output node")
	}
	surface, err := out.Input("Surface")
	if err != nil {
		t.Fatal(err)
	}
	if surface.Link() == nil || surface.Link().From().Node() != bg {
		t.Error("background not linked into the world output")
	}
	// The background color rides at input index zero.
	first, err := bg.InputAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if first.Name() != "Color" {
		t.Errorf("first background input mismatch. got %q. want %q", first.Name(), "Color")
	}
}

func TestFindOrCreate(t *testing.T) {
	s := shading.NewSystem()
	a := s.FindOrCreate("X-ray")
	b := s.FindOrCreate("X-ray")
	if a != b {
		t.Error("second FindOrCreate built a new material")
	}
	if got := s.Count(); got != 1 {
		t.Errorf("count mismatch. got %d. want 1", got)
	}
	if err := s.Remove("X-ray"); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("X-ray"); !errors.Is(err, core.ErrResourceUnavailable) {
		t.Errorf("double remove: got %v. want ErrResourceUnavailable", err)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want shading.Color
	}{
		{"#0080ff", shading.Color{R: 0, G: 128.0 / 255, B: 1, A: 1}},
		{"#0080ff80", shading.Color{R: 0, G: 128.0 / 255, B: 1, A: 128.0 / 255}},
		{"black", shading.Color{R: 0, G: 0, B: 0, A: 1}},
		{"DeepSkyBlue", shading.Color{R: 0, G: 191.0 / 255, B: 1, A: 1}},
	}
	for _, c := range cases {
		got, err := shading.ParseColor(c.in)
		if err != nil {
			t.Fatalf("parse %q: %v", c.in, err)
		}
		if !colorsClose(got, c.want) {
			t.Errorf("parse %q mismatch. got %v. want %v", c.in, got, c.want)
		}
	}
	for _, bad := range []string{"", "#12", "#gggggg", "no-such-color"} {
		if _, err := shading.ParseColor(bad); !errors.Is(err, core.ErrInvalidParameter) {
			t.Errorf("parse %q: got %v. want ErrInvalidParameter", bad, err)
		}
	}
}

func colorsClose(a, b shading.Color) bool {
	const tol = 1e-9
	return math.Abs(a.R-b.R) <= tol &&
		math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol &&
		math.Abs(a.A-b.A) <= tol
}
