package export

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"energy-flow/internal/circuit"
	"energy-flow/internal/palette"
)

// WritePlot renders i(t) and p(t) to an image; the format follows the file
// extension (.png, .svg, .pdf).
func WritePlot(filename string, cfg circuit.Config, samples []Sample) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s source, %gV across %gΩ", strings.ToUpper(cfg.Mode.String()), cfg.Voltage, cfg.Resistance)
	p.X.Label.Text = "t [s]"
	p.Y.Label.Text = "i(t) [A], p(t) [W]"
	p.Add(plotter.NewGrid())

	current := make(plotter.XYs, len(samples))
	power := make(plotter.XYs, len(samples))
	for i, s := range samples {
		current[i] = plotter.XY{X: s.Time, Y: s.InstantCurrent}
		power[i] = plotter.XY{X: s.Time, Y: s.InstantPower}
	}

	cl, err := plotter.NewLine(current)
	if err != nil {
		return fmt.Errorf("export: current line: %w", err)
	}
	cl.Color = palette.Magnetic
	cl.Width = vg.Points(1.5)

	pl, err := plotter.NewLine(power)
	if err != nil {
		return fmt.Errorf("export: power line: %w", err)
	}
	pl.Color = palette.Poynting
	pl.Width = vg.Points(1.5)

	p.Add(cl, pl)
	p.Legend.Add("i(t)", cl)
	p.Legend.Add("p(t)", pl)
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
