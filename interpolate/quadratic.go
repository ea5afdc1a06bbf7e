package interpolate

import (
	"sort"

	"gonum.org/v1/gonum/interp"
)

// parabolicPredictor evaluates the Lagrange parabola through the three
// samples bracketing the query, sliding the window along the series. Any
// series sampled from a single quadratic is reproduced exactly; between
// windows the fit is local rather than a global smooth spline.
type parabolicPredictor struct {
	xs []float64
	ys []float64
}

var _ interp.FittablePredictor = (*parabolicPredictor)(nil)

// Fit stores the sample points. It assumes xs is strictly increasing with at
// least three entries and of the same length as ys.
func (p *parabolicPredictor) Fit(xs, ys []float64) error {
	p.xs = append(p.xs[:0], xs...)
	p.ys = append(p.ys[:0], ys...)
	return nil
}

// Predict returns the parabola through the window around x evaluated at x.
func (p *parabolicPredictor) Predict(x float64) float64 {
	// left edge of the interval holding x
	seg := sort.SearchFloat64s(p.xs, x) - 1
	if seg < 0 {
		seg = 0
	}
	if seg > len(p.xs)-2 {
		seg = len(p.xs) - 2
	}

	lo := seg - 1
	if lo < 0 {
		lo = 0
	}
	if lo > len(p.xs)-3 {
		lo = len(p.xs) - 3
	}

	x0, x1, x2 := p.xs[lo], p.xs[lo+1], p.xs[lo+2]
	y0, y1, y2 := p.ys[lo], p.ys[lo+1], p.ys[lo+2]

	return y0*(x-x1)*(x-x2)/((x0-x1)*(x0-x2)) +
		y1*(x-x0)*(x-x2)/((x1-x0)*(x1-x2)) +
		y2*(x-x0)*(x-x1)/((x2-x0)*(x2-x1))
}
