package scene

import (
	"fmt"
	"strings"

	"github.com/cj-mills/trimotion/studio/core"
)

type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrthographic
)

func (t CameraType) String() string {
	switch t {
	case CameraPerspective:
		return "perspective"
	case CameraOrthographic:
		return "orthographic"
	}
	return "unknown"
}

func ParseCameraType(s string) (CameraType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perspective", "persp":
		return CameraPerspective, nil
	case "orthographic", "ortho":
		return CameraOrthographic, nil
	}
	return CameraPerspective, fmt.Errorf("camera type %q: %w", s, core.ErrInvalidParameter)
}

// Camera is the lens datablock attached to a camera object. Fields are
// assigned directly and are valid animation targets.
type Camera struct {
	Type CameraType
	// Lens is the focal length in millimeters, used in perspective mode.
	Lens float64
	// OrthoScale is the viewport width covered in orthographic mode.
	OrthoScale float64
	ClipStart  float64
	ClipEnd    float64
}

func NewCamera() *Camera {
	return &Camera{
		Type:       CameraPerspective,
		Lens:       50,
		OrthoScale: 6,
		ClipStart:  0.1,
		ClipEnd:    100,
	}
}

func (c *Camera) clone() *Camera {
	out := *c
	return &out
}
