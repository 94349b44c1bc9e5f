package anim

import (
	"fmt"
	"math"

	"github.com/cj-mills/trimotion/studio/core"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var componentSuffix = [...]string{".x", ".y", ".z", ".w"}

// ExportCurves renders every recorded channel between start and end to an
// image file, one line per value component, sampled once per frame. The
// format follows the file extension; png, pdf and svg all work.
func (s *System) ExportCurves(path string, start, end float64) error {
	if end < start {
		return fmt.Errorf("curve range [%g, %g]: %w", start, end, core.ErrInvalidParameter)
	}

	p := plot.New()
	p.Title.Text = "Animation Curves"
	p.X.Label.Text = "frame"
	p.Y.Label.Text = "value"
	p.X.Min, p.X.Max = start, end
	p.Add(plotter.NewGrid())

	samples := int(math.Ceil(end-start)) + 1
	series := 0
	for _, act := range s.Actions() {
		for _, ch := range act.Channels() {
			if ch.Len() == 0 {
				continue
			}
			for comp := 0; comp < ch.Components(); comp++ {
				pts := make(plotter.XYs, 0, samples)
				for i := 0; i < samples; i++ {
					frame := math.Min(start+float64(i), end)
					pts = append(pts, plotter.XY{X: frame, Y: ch.Evaluate(frame)[comp]})
				}
				line, err := plotter.NewLine(pts)
				if err != nil {
					return fmt.Errorf("curve %s.%s: %w", act.ownerName, ch.Path(), err)
				}
				line.Color = plotutil.Color(series)
				series++

				label := act.ownerName + "." + ch.Path()
				if ch.Components() > 1 && comp < len(componentSuffix) {
					label += componentSuffix[comp]
				}
				p.Add(line)
				p.Legend.Add(label, line)
			}
		}
	}
	if series == 0 {
		return fmt.Errorf("no channels to plot: %w", core.ErrResourceUnavailable)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save curves: %w", err)
	}
	core.LogInfo("wrote %d animation curves to %s", series, path)
	return nil
}
