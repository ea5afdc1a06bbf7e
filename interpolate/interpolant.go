package interpolate

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// Interpolant is a 1-D interpolation function fitted to a sampled series.
type Interpolant struct {
	kind Kind
	xs   []float64
	ys   []float64
	pred interp.Predictor
}

// New1D fits an interpolant of the given kind to the sample points. The
// samples may be unordered; they are sorted by x before fitting, and
// duplicate x values collapse to the last value given. The empty kind
// defaults to Next.
func New1D(xs, ys []float64, kind Kind) (*Interpolant, error) {
	if kind == "" {
		kind = Next
	}
	spec, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("x has length %d, but y has length %d: %w",
			len(xs), len(ys), ErrShapeMismatch)
	}

	sx, sy := sortSamples(xs, ys)
	if len(sx) < spec.minPoints {
		return nil, fmt.Errorf("%s interpolation needs at least %d sample points, got %d: %w",
			kind, spec.minPoints, len(sx), ErrInsufficientData)
	}

	pred := spec.newPredictor()
	if err := pred.Fit(sx, sy); err != nil {
		return nil, err
	}

	return &Interpolant{kind: kind, xs: sx, ys: sy, pred: pred}, nil
}

// Kind returns the interpolation kind the interpolant was fitted with.
func (in *Interpolant) Kind() Kind {
	return in.kind
}

// Domain returns the x range covered by the fitted samples.
func (in *Interpolant) Domain() (min, max float64) {
	return in.xs[0], in.xs[len(in.xs)-1]
}

// Evaluate interpolates the fitted series at every grid point; the grid may
// be unordered. Points outside the sampled domain fail with a DomainError
// when boundsError is set and take fill otherwise. NaN grid points count as
// out of domain, and fill itself may be NaN when NaN output is wanted as an
// extrapolation sentinel.
func (in *Interpolant) Evaluate(grid []float64, boundsError bool, fill float64) ([]float64, error) {
	min, max := in.Domain()

	if boundsError {
		var outside []float64
		for _, x := range grid {
			if x < min || x > max || math.IsNaN(x) {
				outside = append(outside, x)
			}
		}
		if len(outside) > 0 {
			return nil, &DomainError{Values: outside, Min: min, Max: max}
		}
	}

	out := make([]float64, len(grid))
	for i, x := range grid {
		if x < min || x > max || math.IsNaN(x) {
			out[i] = fill
			continue
		}
		out[i] = in.pred.Predict(x)
	}
	return out, nil
}

// sortSamples returns the samples ordered by ascending x with duplicate x
// values collapsed, keeping the last y supplied for each duplicate. The
// strictly increasing result is what the fitting strategies require.
func sortSamples(xs, ys []float64) ([]float64, []float64) {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return xs[idx[i]] < xs[idx[j]] })

	sx := make([]float64, 0, n)
	sy := make([]float64, 0, n)
	for _, i := range idx {
		if m := len(sx); m > 0 && xs[i] == sx[m-1] {
			sy[m-1] = ys[i]
			continue
		}
		sx = append(sx, xs[i])
		sy = append(sy, ys[i])
	}
	return sx, sy
}
