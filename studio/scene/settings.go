package scene

import (
	"fmt"
	"strings"

	"github.com/cj-mills/trimotion/studio/core"
	"github.com/cj-mills/trimotion/studio/math3"
)

// ViewTransform picks the display color transform applied on render.
type ViewTransform uint8

const (
	ViewTransformStandard ViewTransform = iota
	ViewTransformFilmic
	ViewTransformRaw
)

func (v ViewTransform) String() string {
	switch v {
	case ViewTransformStandard:
		return "Standard"
	case ViewTransformFilmic:
		return "Filmic"
	case ViewTransformRaw:
		return "Raw"
	}
	return "Unknown"
}

func ParseViewTransform(s string) (ViewTransform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return ViewTransformStandard, nil
	case "filmic":
		return ViewTransformFilmic, nil
	case "raw":
		return ViewTransformRaw, nil
	}
	return ViewTransformStandard, fmt.Errorf("view transform %q: %w", s, core.ErrInvalidParameter)
}

// Settings holds the document-wide render and playback options.
type Settings struct {
	fps             int
	frameStart      int
	frameEnd        int
	frameCurrent    int
	viewTransform   ViewTransform
	filmTransparent bool
	resolutionX     int
	resolutionY     int
}

func NewSettings() *Settings {
	return &Settings{
		fps:           24,
		frameStart:    1,
		frameEnd:      250,
		frameCurrent:  1,
		viewTransform: ViewTransformFilmic,
		resolutionX:   1920,
		resolutionY:   1080,
	}
}

func (s *Settings) FPS() int {
	return s.fps
}

func (s *Settings) SetFPS(fps int) error {
	if fps <= 0 {
		return fmt.Errorf("fps %d: %w", fps, core.ErrInvalidParameter)
	}
	s.fps = fps
	return nil
}

func (s *Settings) FrameStart() int {
	return s.frameStart
}

func (s *Settings) FrameEnd() int {
	return s.frameEnd
}

// SetFrameRange sets playback bounds. The current frame is clamped into the
// new range.
func (s *Settings) SetFrameRange(start, end int) error {
	if start < 0 {
		return fmt.Errorf("frame start %d: %w", start, core.ErrInvalidParameter)
	}
	if end < start {
		return fmt.Errorf("frame range [%d, %d]: %w", start, end, core.ErrInvalidParameter)
	}
	s.frameStart = start
	s.frameEnd = end
	s.frameCurrent = math3.Clamp(s.frameCurrent, start, end)
	return nil
}

func (s *Settings) CurrentFrame() int {
	return s.frameCurrent
}

// SetCurrentFrame moves the playhead, clamped into the frame range, and
// reports where it landed.
func (s *Settings) SetCurrentFrame(frame int) int {
	s.frameCurrent = math3.Clamp(frame, s.frameStart, s.frameEnd)
	return s.frameCurrent
}

func (s *Settings) ViewTransform() ViewTransform {
	return s.viewTransform
}

func (s *Settings) SetViewTransform(v ViewTransform) {
	s.viewTransform = v
}

func (s *Settings) FilmTransparent() bool {
	return s.filmTransparent
}

func (s *Settings) SetFilmTransparent(on bool) {
	s.filmTransparent = on
}

func (s *Settings) Resolution() (int, int) {
	return s.resolutionX, s.resolutionY
}

func (s *Settings) SetResolution(x, y int) error {
	if x <= 0 || y <= 0 {
		return fmt.Errorf("resolution %dx%d: %w", x, y, core.ErrInvalidParameter)
	}
	s.resolutionX, s.resolutionY = x, y
	return nil
}
