package studio

import (
	"github.com/cj-mills/trimotion/studio/core"
)

type ProjectConfig struct {
	// The project name used in logs and window titles, if applicable.
	Name     string
	LogLevel core.LogLevel
}

// Build populates a fresh document. It runs once per build, on an empty
// document each time.
type Build func(*Document) error

// Project is what a caller hands to the studio: configuration plus the
// callback that describes the scene.
type Project struct {
	Config  *ProjectConfig
	FnBuild Build
}
