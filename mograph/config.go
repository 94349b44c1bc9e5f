// Package mograph describes the triangle motion graphic: a flat emission
// triangle with a holdout "x-ray" copy hovering in front, spinning and
// shrinking over the timeline.
package mograph

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/cj-mills/trimotion/studio/core"
)

type SceneConfig struct {
	ViewTransform   string `toml:"view_transform"`
	FilmTransparent bool   `toml:"film_transparent"`
	// Background is a color name or #RRGGBB[AA] string.
	Background   string `toml:"background"`
	FPS          int    `toml:"fps"`
	FrameStart   int    `toml:"frame_start"`
	FrameEnd     int    `toml:"frame_end"`
	FrameCurrent int    `toml:"frame_current"`
}

type CameraConfig struct {
	Type        string     `toml:"type"`
	Location    [3]float64 `toml:"location"`
	RotationDeg [3]float64 `toml:"rotation_deg"`
}

type TriangleConfig struct {
	Segments    int        `toml:"segments"`
	Radius      float64    `toml:"radius"`
	Depth       float64    `toml:"depth"`
	RotationDeg [3]float64 `toml:"rotation_deg"`
	Location    [3]float64 `toml:"location"`
	Scale       float64    `toml:"scale"`
	// EmissionColor is raw RGBA so exact channel values survive the trip
	// through the config file.
	EmissionColor [4]float64 `toml:"emission_color"`
	// GhostLocation is where the holdout copy sits, slightly in front of
	// the emission triangle.
	GhostLocation [3]float64 `toml:"ghost_location"`
}

type AnimationConfig struct {
	RotationDeg    [][3]float64 `toml:"rotation_deg"`
	RotationFrames []float64    `toml:"rotation_frames"`
	Scale          []float64    `toml:"scale"`
	ScaleFrames    []float64    `toml:"scale_frames"`
}

type Config struct {
	Scene     SceneConfig     `toml:"scene"`
	Camera    CameraConfig    `toml:"camera"`
	Triangle  TriangleConfig  `toml:"triangle"`
	Animation AnimationConfig `toml:"animation"`
}

// DefaultConfig is the motion graphic as originally framed: orthographic
// camera looking down +Y, black background, 60 fps over frames 0..250.
func DefaultConfig() *Config {
	return &Config{
		Scene: SceneConfig{
			ViewTransform:   "Standard",
			FilmTransparent: true,
			Background:      "black",
			FPS:             60,
			FrameStart:      0,
			FrameEnd:        250,
			FrameCurrent:    0,
		},
		Camera: CameraConfig{
			Type:        "orthographic",
			Location:    [3]float64{0, -8, 0},
			RotationDeg: [3]float64{90, 0, 0},
		},
		Triangle: TriangleConfig{
			Segments:      3,
			Radius:        1,
			Depth:         2,
			RotationDeg:   [3]float64{90, 180, 0},
			Location:      [3]float64{0, 0, -0.25},
			Scale:         0.75,
			EmissionColor: [4]float64{0, 0.5, 1, 1},
			GhostLocation: [3]float64{0, -0.05, -0.25},
		},
		Animation: AnimationConfig{
			RotationDeg: [][3]float64{
				{90, 180, 0},
				{90, 145, 0},
				{90, 90, 0},
				{90, 180, 0},
			},
			RotationFrames: []float64{20, 70, 120, 250},
			Scale:          []float64{0.75, 0.5, 0, 0.75},
			ScaleFrames:    []float64{10, 60, 100, 250},
		},
	}
}

// LoadConfig reads a TOML file over the defaults, so a file only has to
// name what it changes. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate catches structurally broken configs before a build starts.
// Sequence lengths are not checked here; the sequencer owns that contract.
func (c *Config) Validate() error {
	if c.Triangle.Segments < 3 {
		return fmt.Errorf("triangle needs at least 3 segments, got %d: %w", c.Triangle.Segments, core.ErrInvalidParameter)
	}
	if c.Scene.FPS <= 0 {
		return fmt.Errorf("fps %d: %w", c.Scene.FPS, core.ErrInvalidParameter)
	}
	if c.Scene.FrameEnd < c.Scene.FrameStart {
		return fmt.Errorf("frame range [%d, %d]: %w", c.Scene.FrameStart, c.Scene.FrameEnd, core.ErrInvalidParameter)
	}
	return nil
}
