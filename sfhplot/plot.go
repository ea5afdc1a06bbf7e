// Package sfhplot renders star-formation histories as step plots on
// logarithmic axes: the recorded series in black with a shaded one-sigma
// band, and the resampled series, when present, in dashed firebrick on top.
package sfhplot

import (
	"errors"
	"image/color"

	sfhandle "github.com/WilfriedMercier/SFHandle"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	black         = color.NRGBA{A: 255}
	blackBand     = color.NRGBA{A: 76}
	firebrick     = color.NRGBA{R: 178, G: 34, B: 34, A: 255}
	firebrickBand = color.NRGBA{R: 178, G: 34, B: 34, A: 76}
)

// New assembles the plot of a record. Points that cannot be drawn on
// logarithmic axes (non-positive time or rate) are dropped, the way the
// original series' leading zero edge always is.
func New(rec *sfhandle.SFH) (*plot.Plot, error) {
	p := plot.New()

	p.X.Label.Text = "Lookback time [Myr]"
	p.Y.Label.Text = "SFH [Msun/yr]"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	drawn, err := addSeries(p,
		rec.LookbackTime(), rec.Rate(), rec.RateError(),
		black, blackBand, nil, draw.CircleGlyph{},
	)
	if err != nil {
		return nil, err
	}
	if !drawn {
		return nil, errors.New("record has no positive points to draw on logarithmic axes")
	}

	if resampled := rec.ResampledTime(); resampled != nil {
		dashes := []vg.Length{vg.Points(4), vg.Points(2)}
		_, err := addSeries(p,
			resampled, rec.ResampledRate(), rec.ResampledRateError(),
			firebrick, firebrickBand, dashes, draw.CrossGlyph{},
		)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Save renders the record to an image file, with the format inferred from the
// file extension.
func Save(rec *sfhandle.SFH, path string) error {
	p, err := New(rec)
	if err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

// addSeries draws one series as a pre-step line with markers and a shaded
// one-sigma band. It reports whether any point survived the positivity
// filter.
func addSeries(p *plot.Plot, xs, ys, errs []float64, lineColor, bandColor color.Color, dashes []vg.Length, glyph draw.GlyphDrawer) (bool, error) {
	pts := positivePoints(xs, ys)
	if len(pts) == 0 {
		return false, nil
	}

	band, err := plotter.NewPolygon(bandPath(xs, ys, errs))
	if err != nil {
		return false, err
	}
	band.Color = bandColor
	band.LineStyle.Width = 0
	p.Add(band)

	line, err := plotter.NewLine(pts)
	if err != nil {
		return false, err
	}
	line.StepStyle = plotter.PreStep
	line.LineStyle.Color = lineColor
	line.LineStyle.Dashes = dashes
	p.Add(line)

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return false, err
	}
	scatter.GlyphStyle.Color = lineColor
	scatter.GlyphStyle.Shape = glyph
	p.Add(scatter)

	return true, nil
}

// positivePoints keeps the points that are drawable on log-log axes.
func positivePoints(xs, ys []float64) plotter.XYs {
	var pts plotter.XYs
	for i := range xs {
		if xs[i] > 0 && ys[i] > 0 {
			pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
		}
	}
	return pts
}

// bandPath traces the one-sigma band as a closed pre-step polygon: along the
// upper edge, then back along the lower edge. Lower vertices that would fall
// to or below zero are clamped just above it so the band stays drawable on
// logarithmic axes.
func bandPath(xs, ys, errs []float64) plotter.XYs {
	floor := 0.0
	for i := range ys {
		if ys[i] > 0 && (floor == 0 || ys[i] < floor) {
			floor = ys[i]
		}
	}
	floor *= 1e-3

	upper := stepPath(xs, ys, errs, 1, floor)
	lower := stepPath(xs, ys, errs, -1, floor)

	path := upper
	for i := len(lower) - 1; i >= 0; i-- {
		path = append(path, lower[i])
	}
	return path
}

// stepPath builds the pre-step outline of ys + sign*errs over the positive
// part of xs, clamping values below the floor.
func stepPath(xs, ys, errs []float64, sign float64, floor float64) plotter.XYs {
	var path plotter.XYs
	for i := range xs {
		if xs[i] <= 0 {
			continue
		}

		y := ys[i] + sign*errs[i]
		if y < floor {
			y = floor
		}

		if n := len(path); n > 0 {
			// vertical riser of the pre step
			path = append(path, plotter.XY{X: path[n-1].X, Y: y})
		}
		path = append(path, plotter.XY{X: xs[i], Y: y})
	}
	return path
}
