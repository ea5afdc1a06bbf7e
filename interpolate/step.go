package interpolate

import (
	"sort"

	"gonum.org/v1/gonum/interp"
)

// stepPredictor is a right-continuous piecewise constant predictor: queries
// take the value of the sample at or before them. It backs both the previous
// and the zero kinds, which agree everywhere on the sampled domain. Unlike
// the gonum predictors it accepts a single sample point, as the zero kind
// allows.
type stepPredictor struct {
	xs []float64
	ys []float64
}

var _ interp.FittablePredictor = (*stepPredictor)(nil)

// Fit stores the sample points. It assumes xs is strictly increasing and of
// the same length as ys.
func (p *stepPredictor) Fit(xs, ys []float64) error {
	p.xs = append(p.xs[:0], xs...)
	p.ys = append(p.ys[:0], ys...)
	return nil
}

// Predict returns the value of the last sample whose x does not exceed x.
// Queries below the first sample clamp to it; the engine substitutes its
// fill value before such queries reach the predictor.
func (p *stepPredictor) Predict(x float64) float64 {
	i := sort.SearchFloat64s(p.xs, x)
	if i < len(p.xs) && p.xs[i] == x {
		return p.ys[i]
	}
	if i == 0 {
		return p.ys[0]
	}
	return p.ys[i-1]
}
