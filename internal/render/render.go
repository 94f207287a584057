package render

import (
	"fmt"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/eytandecker/glideperf/internal/glide"
)

// panel describes one chart: which curve series it draws and how to scale it
// into presentation units.
type panel struct {
	title  string
	ylabel string
	file   string
	series func(c glide.Curve) []float64
	scale  float64
}

var panels = []panel{
	{
		title:  "Glide distance vs velocity",
		ylabel: "Glide distance (km)",
		file:   "glide_distance.png",
		series: func(c glide.Curve) []float64 { return c.Distance },
		scale:  1.0 / 1000,
	},
	{
		title:  "Glide time vs velocity",
		ylabel: "Glide time (min)",
		file:   "glide_time.png",
		series: func(c glide.Curve) []float64 { return c.Time },
		scale:  1.0 / 60,
	},
	{
		title:  "Angle of attack vs velocity",
		ylabel: "Angle of attack (deg)",
		file:   "angle_of_attack.png",
		series: func(c glide.Curve) []float64 { return c.AngleOfAttack },
		scale:  1,
	},
}

// Charts writes the three performance charts as PNG files under dir, one
// line per airfoil. Callers pass curves in the order the legends should
// show them.
func Charts(dir string, curves []glide.Curve) error {
	for _, pn := range panels {
		p := plot.New()
		p.Title.Text = pn.title
		p.X.Label.Text = "Velocity (m/s)"
		p.Y.Label.Text = pn.ylabel
		p.Add(plotter.NewGrid())
		p.Legend.Top = true

		args := make([]any, 0, 2*len(curves))
		for _, c := range curves {
			args = append(args, c.Name, points(c.Velocity, pn.series(c), pn.scale))
		}
		if err := plotutil.AddLines(p, args...); err != nil {
			return fmt.Errorf("render %s: %w", pn.file, err)
		}

		out := filepath.Join(dir, pn.file)
		if err := p.Save(8*vg.Inch, 6*vg.Inch, out); err != nil {
			return fmt.Errorf("save %s: %w", out, err)
		}
	}
	return nil
}

// points converts aligned velocity/value slices to plot points, dropping the
// NaN markers so unrepresentable velocities leave gaps instead of spikes.
func points(xs, ys []float64, scale float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if math.IsNaN(ys[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i] * scale})
	}
	return pts
}
