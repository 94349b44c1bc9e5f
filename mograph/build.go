package mograph

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cj-mills/trimotion/studio"
	"github.com/cj-mills/trimotion/studio/anim"
	"github.com/cj-mills/trimotion/studio/core"
	"github.com/cj-mills/trimotion/studio/math3"
	"github.com/cj-mills/trimotion/studio/mesh"
	"github.com/cj-mills/trimotion/studio/scene"
	"github.com/cj-mills/trimotion/studio/shading"
)

// Build assembles the motion graphic in doc: scene settings and world
// background, an orthographic camera, the emission triangle derived from a
// cone, and its animated holdout ghost.
func Build(doc *studio.Document, cfg *Config) error {
	if err := setupScene(doc, &cfg.Scene); err != nil {
		return err
	}
	if err := addCamera(doc, &cfg.Camera); err != nil {
		return err
	}
	emission, err := emissionMaterial(doc, &cfg.Triangle)
	if err != nil {
		return err
	}
	tri, err := addTriangle(doc, &cfg.Triangle, emission)
	if err != nil {
		return err
	}
	ghost, err := ghostTriangle(doc, &cfg.Triangle, tri)
	if err != nil {
		return err
	}
	return animateGhost(doc, &cfg.Animation, ghost)
}

func setupScene(doc *studio.Document, cfg *SceneConfig) error {
	vt, err := scene.ParseViewTransform(cfg.ViewTransform)
	if err != nil {
		return err
	}
	doc.Settings.SetViewTransform(vt)
	doc.Settings.SetFilmTransparent(cfg.FilmTransparent)
	if err := doc.Settings.SetFPS(cfg.FPS); err != nil {
		return err
	}
	if err := doc.Settings.SetFrameRange(cfg.FrameStart, cfg.FrameEnd); err != nil {
		return err
	}
	doc.Settings.SetCurrentFrame(cfg.FrameCurrent)

	bg, ok := doc.World.Background()
	if !ok {
		return fmt.Errorf("world %q has no background node: %w", doc.World.Name(), core.ErrResourceUnavailable)
	}
	color, err := shading.ParseColor(cfg.Background)
	if err != nil {
		return err
	}
	// The background color rides on the node's first input.
	in, err := bg.InputAt(0)
	if err != nil {
		return err
	}
	if err := in.SetColor(color); err != nil {
		return err
	}

	return doc.Objects.ClearCollection(scene.DefaultCollectionName)
}

func addCamera(doc *studio.Document, cfg *CameraConfig) error {
	camType, err := scene.ParseCameraType(cfg.Type)
	if err != nil {
		return err
	}
	cam := doc.Objects.NewCamera("Camera")
	cam.Transform.Location = vec3(cfg.Location)
	cam.Transform.RotationEuler = math3.Deg2RadVec(vec3(cfg.RotationDeg))
	cam.Camera().Type = camType
	return nil
}

// swapShader strips the default surface shader, and any leftover shader of
// the requested type, then wires a fresh one into the output's first
// input, the surface slot.
func swapShader(m *shading.Material, typ shading.NodeType) (*shading.Node, error) {
	m.EnableNodes()
	nt := m.NodeTree()
	if bsdf, ok := nt.Get("Principled BSDF"); ok {
		if err := nt.Remove(bsdf); err != nil {
			return nil, err
		}
	}
	if old, ok := nt.Get(typ.Label()); ok {
		if err := nt.Remove(old); err != nil {
			return nil, err
		}
	}
	out, ok := nt.Get("Material Output")
	if !ok {
		return nil, fmt.Errorf("material %q has no output node: %w", m.Name(), core.ErrResourceUnavailable)
	}
	node := nt.New(typ)
	src, err := node.OutputAt(0)
	if err != nil {
		return nil, err
	}
	dst, err := out.InputAt(0)
	if err != nil {
		return nil, err
	}
	if _, err := nt.Link(src, dst); err != nil {
		return nil, err
	}
	return node, nil
}

func emissionMaterial(doc *studio.Document, cfg *TriangleConfig) (*shading.Material, error) {
	mat := doc.Materials.FindOrCreate("Material")
	node, err := swapShader(mat, shading.NodeTypeEmission)
	if err != nil {
		return nil, err
	}
	colorIn, err := node.Input("Color")
	if err != nil {
		return nil, err
	}
	c := cfg.EmissionColor
	if err := colorIn.SetColor(shading.NewColor(c[0], c[1], c[2], c[3])); err != nil {
		return nil, err
	}
	return mat, nil
}

func addTriangle(doc *studio.Document, cfg *TriangleConfig, mat *shading.Material) (*scene.Object, error) {
	m, err := doc.Meshes.CreateCone("Cone", mesh.ConeParams{
		Segments: cfg.Segments,
		Radius:   cfg.Radius,
		Depth:    cfg.Depth,
	})
	if err != nil {
		return nil, err
	}
	obj := doc.Objects.New("Cone")
	obj.SetMesh(m)
	obj.Transform.RotationEuler = math3.Deg2RadVec(vec3(cfg.RotationDeg))
	obj.Transform.Location = vec3(cfg.Location)
	obj.Transform.Scale = math3.Uniform(cfg.Scale)

	if obj.SlotCount() > 0 {
		if err := obj.SetMaterial(0, mat); err != nil {
			return nil, err
		}
	} else {
		obj.AppendMaterial(mat)
	}

	// The apex sits after the base ring, at index Segments. Dropping it
	// takes the side faces with it and leaves the flat base polygon.
	if err := mesh.Derive(m, []int{cfg.Segments}); err != nil {
		return nil, err
	}
	return obj, obj.SetOriginToGeometry()
}

func ghostTriangle(doc *studio.Document, cfg *TriangleConfig, tri *scene.Object) (*scene.Object, error) {
	ghost, err := doc.Objects.Duplicate(tri)
	if err != nil {
		return nil, err
	}
	ghost.Transform.Location = vec3(cfg.GhostLocation)

	xray := doc.Materials.FindOrCreate("X-ray")
	if _, err := swapShader(xray, shading.NodeTypeHoldout); err != nil {
		return nil, err
	}
	// The slot exists on the ghost because the duplicate carried it over.
	if err := ghost.SetMaterial(0, xray); err != nil {
		return nil, err
	}
	return ghost, nil
}

func animateGhost(doc *studio.Document, cfg *AnimationConfig, ghost *scene.Object) error {
	rotations := make([]anim.Value, 0, len(cfg.RotationDeg))
	for _, deg := range cfg.RotationDeg {
		rotations = append(rotations, anim.FromVec(math3.Deg2RadVec(vec3(deg))))
	}
	if err := doc.Animation.ApplySequence(ghost, "rotation_euler", rotations, cfg.RotationFrames); err != nil {
		return err
	}

	scales := make([]anim.Value, 0, len(cfg.Scale))
	for _, s := range cfg.Scale {
		scales = append(scales, anim.FromVec(math3.Uniform(s)))
	}
	return doc.Animation.ApplySequence(ghost, "scale", scales, cfg.ScaleFrames)
}

func vec3(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}
