// Package shading holds material datablocks and the shader node graphs
// behind them.
package shading

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cj-mills/trimotion/studio/core"
	"golang.org/x/image/colornames"
)

// Color is an RGBA quadruple with float components, usually in [0, 1].
type Color struct {
	R, G, B, A float64
}

func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// ParseColor accepts "#RRGGBB", "#RRGGBBAA" or an SVG 1.1 color name such
// as "deepskyblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: float64(c.A) / 255,
		}, nil
	}
	return Color{}, fmt.Errorf("color %q: %w", s, core.ErrInvalidParameter)
}

func parseHex(s string) (Color, error) {
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: %w", s, core.ErrInvalidParameter)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, core.ErrInvalidParameter)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
