package studio

import (
	"fmt"
	"sync"
	"time"

	"github.com/cj-mills/trimotion/studio/core"
)

type Stage uint8

const (
	// Studio has been created but has not built anything yet
	StageCreated Stage = iota
	// Studio holds a built document
	StageBuilt
	// Studio is watching for changes and rebuilding
	StageWatching
	// Studio is in the process of shutting down
	StageShuttingDown
)

// Studio drives a project: it builds documents from the project's build
// callback and optionally rebuilds them on filesystem changes. The current
// document is swapped atomically so watch-mode readers never see a
// half-built scene.
type Studio struct {
	project      *Project
	clock        *core.Clock
	watcher      *Watcher
	currentStage Stage

	mu  sync.RWMutex
	doc *Document
}

func New(p *Project) (*Studio, error) {
	if p == nil || p.FnBuild == nil {
		err := fmt.Errorf("project needs a build callback: %w", core.ErrInvalidParameter)
		core.LogError(err.Error())
		return nil, err
	}
	if p.Config == nil {
		p.Config = &ProjectConfig{Name: "Untitled", LogLevel: core.InfoLevel}
	}
	core.SetLogLevel(p.Config.LogLevel)

	return &Studio{
		project:      p,
		clock:        core.NewClock(),
		currentStage: StageCreated,
	}, nil
}

// Build runs the project callback against a fresh document and makes the
// result current. A failed build keeps the previous document.
func (s *Studio) Build() (*Document, error) {
	s.clock.Start()
	doc := NewDocument()
	if err := s.project.FnBuild(doc); err != nil {
		core.LogError("build of %q failed: %s", s.project.Config.Name, err)
		return nil, err
	}
	elapsed := s.clock.Elapsed()
	core.MetricsRecordBuild(elapsed)

	s.mu.Lock()
	s.doc = doc
	if s.currentStage == StageCreated {
		s.currentStage = StageBuilt
	}
	s.mu.Unlock()

	core.LogInfo("built %q in %s: %s", s.project.Config.Name, elapsed, doc.Stats())
	return doc, nil
}

// Document returns the most recent successful build, nil before the first.
func (s *Studio) Document() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Watch blocks, rebuilding the document whenever path changes, until
// Shutdown is called. Build failures are logged and the previous document
// stays current.
func (s *Studio) Watch(path string) error {
	s.mu.Lock()
	if s.currentStage == StageWatching {
		s.mu.Unlock()
		return fmt.Errorf("already watching: %w", core.ErrInvalidParameter)
	}
	w, err := NewWatcher(250 * time.Millisecond)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := w.Add(path); err != nil {
		s.mu.Unlock()
		w.Close()
		return err
	}
	s.watcher = w
	s.currentStage = StageWatching
	s.mu.Unlock()

	core.LogInfo("watching %s for changes", path)
	w.Run(func() {
		if _, err := s.Build(); err != nil {
			core.LogWarn("keeping previous document")
		}
	})
	return nil
}

// Shutdown stops watch mode. Safe to call at any stage, more than once.
func (s *Studio) Shutdown() error {
	s.mu.Lock()
	w := s.watcher
	s.watcher = nil
	s.currentStage = StageShuttingDown
	s.mu.Unlock()

	if w != nil {
		core.LogInfo("shutting down watch mode after %d builds, %s average", core.MetricsBuilds(), core.MetricsBuildTime())
		return w.Close()
	}
	return nil
}

// ExportCurves writes the current document's animation curves over its
// frame range.
func (s *Studio) ExportCurves(path string) error {
	doc := s.Document()
	if doc == nil {
		return fmt.Errorf("no document built yet: %w", core.ErrResourceUnavailable)
	}
	start := float64(doc.Settings.FrameStart())
	end := float64(doc.Settings.FrameEnd())
	return doc.Animation.ExportCurves(path, start, end)
}
