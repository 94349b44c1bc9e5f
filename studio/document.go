// Package studio assembles the scene document and drives builds of it.
package studio

import (
	"github.com/cj-mills/trimotion/studio/anim"
	"github.com/cj-mills/trimotion/studio/core"
	"github.com/cj-mills/trimotion/studio/mesh"
	"github.com/cj-mills/trimotion/studio/scene"
	"github.com/cj-mills/trimotion/studio/shading"
)

// Document is one self-contained scene: the datablock stores, the world,
// and the render settings. A document and everything in it belong to a
// single goroutine.
type Document struct {
	Meshes    *mesh.System
	Materials *shading.System
	Objects   *scene.ObjectSystem
	Animation *anim.System
	Settings  *scene.Settings
	World     *scene.World
}

// NewDocument wires up an empty document: empty stores, default settings,
// a default collection and a world named "World".
func NewDocument() *Document {
	meshes := mesh.NewSystem()
	return &Document{
		Meshes:    meshes,
		Materials: shading.NewSystem(),
		Objects:   scene.NewObjectSystem(meshes),
		Animation: anim.NewSystem(),
		Settings:  scene.NewSettings(),
		World:     scene.NewWorld("World"),
	}
}

// Stats snapshots the document contents for logging.
func (d *Document) Stats() core.Stats {
	return core.Stats{
		Objects:   d.Objects.Count(),
		Meshes:    d.Meshes.Count(),
		Materials: d.Materials.Count(),
		Actions:   d.Animation.ActionCount(),
		Channels:  d.Animation.ChannelCount(),
		Keyframes: d.Animation.KeyframeCount(),
	}
}
