// Package render draws hydropathy profiles as SVG charts using gonum/plot.
package render

import (
	"bytes"
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"hydroplot/hydropathy"
)

// ErrEmptyProfile is returned when there are no profile points to draw.
var ErrEmptyProfile = errors.New("profile contains no points")

// ProfileSVG renders a hydropathy profile as an SVG chart: a dashed zero
// reference line, the profile curve, and independently shaded hydrophobic
// (above zero) and hydrophilic (below zero) regions. The x axis spans the
// full sequence length, not just the scored subrange, with minor ticks
// every 5 residues on x and every 0.2 units on y.
func ProfileSVG(title string, seqLen int, prof hydropathy.Profile) (string, error) {
	if prof.Empty() {
		return "", ErrEmptyProfile
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Amino Acid Number"
	p.Y.Label.Text = "Hydropathy Index"
	p.X.Min = 0
	p.X.Max = float64(seqLen)
	p.X.Tick.Marker = MinorTicks{Step: 5}
	p.Y.Tick.Marker = MinorTicks{Step: 0.2}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, prof.Len())
	for i := range prof.Positions {
		pts[i].X = float64(prof.Positions[i])
		pts[i].Y = prof.Values[i]
	}

	// Shaded regions go in first so the curve draws on top of them.
	hydrophobic, err := regionPolygon(pts, true)
	if err != nil {
		return "", err
	}
	if hydrophobic != nil {
		hydrophobic.Color = color.RGBA{R: 227, G: 119, B: 104, A: 190}
		hydrophobic.LineStyle.Width = 0
		p.Add(hydrophobic)
		p.Legend.Add("Hydrophobic Regions", hydrophobic)
	}
	hydrophilic, err := regionPolygon(pts, false)
	if err != nil {
		return "", err
	}
	if hydrophilic != nil {
		hydrophilic.Color = color.RGBA{R: 64, G: 130, B: 138, A: 190}
		hydrophilic.LineStyle.Width = 0
		p.Add(hydrophilic)
		p.Legend.Add("Hydrophilic   Regions", hydrophilic)
	}

	zero, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: float64(seqLen), Y: 0},
	})
	if err != nil {
		return "", err
	}
	zero.LineStyle.Color = color.RGBA{A: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(zero)

	curve, err := plotter.NewLine(pts)
	if err != nil {
		return "", err
	}
	curve.LineStyle.Color = color.RGBA{A: 200}
	curve.LineStyle.Width = vg.Points(1.5)
	p.Add(curve)

	p.Legend.Top = true

	var buf bytes.Buffer
	writer, err := p.WriterTo(12*vg.Inch, 8*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// regionPolygon builds the fill polygon for the part of the curve above
// (or below) zero. Zero crossings between adjacent points are interpolated
// so the fill meets the axis cleanly; the excluded side is clamped to the
// axis. Returns nil when the curve never enters the region.
func regionPolygon(pts plotter.XYs, above bool) (*plotter.Polygon, error) {
	inside := func(y float64) bool {
		if above {
			return y > 0
		}
		return y < 0
	}

	any := false
	ring := make(plotter.XYs, 0, len(pts)+4)
	for i, pt := range pts {
		if i > 0 {
			prev := pts[i-1]
			if inside(prev.Y) != inside(pt.Y) && prev.Y != pt.Y {
				x := prev.X + (pt.X-prev.X)*(0-prev.Y)/(pt.Y-prev.Y)
				ring = append(ring, plotter.XY{X: x, Y: 0})
			}
		}
		y := pt.Y
		if !inside(y) {
			y = 0
		} else {
			any = true
		}
		ring = append(ring, plotter.XY{X: pt.X, Y: y})
	}
	if !any {
		return nil, nil
	}

	// Close the ring along the axis.
	ring = append(ring,
		plotter.XY{X: ring[len(ring)-1].X, Y: 0},
		plotter.XY{X: ring[0].X, Y: 0},
	)
	return plotter.NewPolygon(ring)
}
