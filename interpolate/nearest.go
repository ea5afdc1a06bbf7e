package interpolate

import (
	"sort"

	"gonum.org/v1/gonum/interp"
)

// nearestPredictor returns the value of the sample closest to the query.
// Queries landing exactly halfway between two samples round down to the
// younger sample by default and round up when up is set, giving the nearest
// and nearest-up kinds their only behavioural difference.
type nearestPredictor struct {
	xs []float64
	ys []float64
	up bool
}

var _ interp.FittablePredictor = (*nearestPredictor)(nil)

// Fit stores the sample points. It assumes xs is strictly increasing and of
// the same length as ys.
func (p *nearestPredictor) Fit(xs, ys []float64) error {
	p.xs = append(p.xs[:0], xs...)
	p.ys = append(p.ys[:0], ys...)
	return nil
}

// Predict returns the value of the sample nearest to x.
func (p *nearestPredictor) Predict(x float64) float64 {
	i := sort.SearchFloat64s(p.xs, x)
	if i == 0 {
		return p.ys[0]
	}
	if i == len(p.xs) {
		return p.ys[len(p.ys)-1]
	}

	mid := 0.5 * (p.xs[i-1] + p.xs[i])
	switch {
	case x < mid:
		return p.ys[i-1]
	case x > mid:
		return p.ys[i]
	case p.up:
		return p.ys[i]
	default:
		return p.ys[i-1]
	}
}
