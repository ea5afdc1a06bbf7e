package interpolate_test

import (
	"math"
	"testing"

	"github.com/WilfriedMercier/SFHandle/interpolate"
	"github.com/stretchr/testify/assert"
)

func TestNew1DInvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		xs       []float64
		ys       []float64
		kind     interpolate.Kind
		expected error
	}{
		{
			name:     "shape mismatch",
			xs:       []float64{0, 1, 2},
			ys:       []float64{0, 1},
			kind:     interpolate.Linear,
			expected: interpolate.ErrShapeMismatch,
		},
		{
			name:     "unknown kind",
			xs:       []float64{0, 1},
			ys:       []float64{0, 1},
			kind:     interpolate.Kind("bezier"),
			expected: interpolate.ErrUnknownKind,
		},
		{
			name:     "empty samples",
			xs:       []float64{},
			ys:       []float64{},
			kind:     interpolate.Next,
			expected: interpolate.ErrInsufficientData,
		},
		{
			name:     "linear needs two points",
			xs:       []float64{1},
			ys:       []float64{1},
			kind:     interpolate.Linear,
			expected: interpolate.ErrInsufficientData,
		},
		{
			name:     "quadratic needs three points",
			xs:       []float64{0, 1},
			ys:       []float64{0, 1},
			kind:     interpolate.Quadratic,
			expected: interpolate.ErrInsufficientData,
		},
		{
			name:     "cubic needs four points",
			xs:       []float64{0, 1, 2},
			ys:       []float64{0, 1, 4},
			kind:     interpolate.Cubic,
			expected: interpolate.ErrInsufficientData,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := interpolate.New1D(tc.xs, tc.ys, tc.kind)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

// A single sample point is enough for the zero-order hold.
func TestNew1DZeroHoldSinglePoint(t *testing.T) {
	in, err := interpolate.New1D([]float64{1}, []float64{5}, interpolate.Zero)
	assert.NoError(t, err)

	out, err := in.Evaluate([]float64{1}, false, 0)
	assert.NoError(t, err)
	assert.Equal(t, []float64{5}, out)
}

func TestNextStepSemantics(t *testing.T) {
	in, err := interpolate.New1D([]float64{0, 1}, []float64{1, 2}, interpolate.Next)
	assert.NoError(t, err)

	out, err := in.Evaluate([]float64{0, 0.5, 1, 1.5}, false, 0)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2, 0}, out)
}

// Every kind must reproduce the sample values exactly when queried on the
// sample grid itself.
func TestEvaluateOnSampleGrid(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 3, 2, 5, 4}

	for _, name := range interpolate.Kinds() {
		t.Run(name, func(t *testing.T) {
			in, err := interpolate.New1D(xs, ys, interpolate.Kind(name))
			assert.NoError(t, err)

			out, err := in.Evaluate(xs, false, 0)
			assert.NoError(t, err)
			for i := range ys {
				assert.InDelta(t, ys[i], out[i], 1e-12)
			}
		})
	}
}

func TestKindValuesBetweenSamples(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 0, 1}

	testCases := []struct {
		name     string
		kind     interpolate.Kind
		x        float64
		expected float64
	}{
		{name: "linear midpoint", kind: interpolate.Linear, x: 0.5, expected: 0.5},
		{name: "slinear matches linear", kind: interpolate.SLinear, x: 2.5, expected: 0.5},
		{name: "nearest below midpoint", kind: interpolate.Nearest, x: 0.4, expected: 0},
		{name: "nearest above midpoint", kind: interpolate.Nearest, x: 0.6, expected: 1},
		{name: "nearest tie rounds down", kind: interpolate.Nearest, x: 0.5, expected: 0},
		{name: "nearest-up tie rounds up", kind: interpolate.NearestUp, x: 0.5, expected: 1},
		{name: "previous holds left sample", kind: interpolate.Previous, x: 0.9, expected: 0},
		{name: "zero holds left sample", kind: interpolate.Zero, x: 1.9, expected: 1},
		{name: "next takes right sample", kind: interpolate.Next, x: 0.1, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := interpolate.New1D(xs, ys, tc.kind)
			assert.NoError(t, err)

			out, err := in.Evaluate([]float64{tc.x}, false, math.NaN())
			assert.NoError(t, err)
			assert.InDelta(t, tc.expected, out[0], 1e-12)
		})
	}
}

// The sliding-window parabola reproduces a global quadratic exactly.
func TestQuadraticReproducesParabola(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x * x
	}

	in, err := interpolate.New1D(xs, ys, interpolate.Quadratic)
	assert.NoError(t, err)

	grid := []float64{0.25, 1.5, 2.75, 3.9}
	out, err := in.Evaluate(grid, false, 0)
	assert.NoError(t, err)
	for i, x := range grid {
		assert.InDelta(t, x*x, out[i], 1e-12)
	}
}

func TestEvaluateBoundsError(t *testing.T) {
	in, err := interpolate.New1D([]float64{0, 1}, []float64{1, 2}, interpolate.Next)
	assert.NoError(t, err)

	out, err := in.Evaluate([]float64{0.5, 1.5, -0.5}, true, 0)
	assert.Nil(t, out)

	var domainErr *interpolate.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, []float64{1.5, -0.5}, domainErr.Values)
	assert.Equal(t, 0.0, domainErr.Min)
	assert.Equal(t, 1.0, domainErr.Max)
}

func TestEvaluateNaNFill(t *testing.T) {
	in, err := interpolate.New1D([]float64{0, 1}, []float64{1, 2}, interpolate.Next)
	assert.NoError(t, err)

	out, err := in.Evaluate([]float64{0, 0.5, 1, 1.5}, false, math.NaN())
	assert.NoError(t, err)

	assert.True(t, math.IsNaN(out[3]))
	for _, v := range out[:3] {
		assert.False(t, math.IsNaN(v))
	}
}

// Samples may arrive unsorted and with duplicate x values; the last value
// given for a duplicated x wins, and unordered query grids are fine.
func TestUnorderedSamplesAndGrid(t *testing.T) {
	in, err := interpolate.New1D(
		[]float64{2, 0, 1, 2},
		[]float64{9, 1, 2, 3},
		interpolate.Linear,
	)
	assert.NoError(t, err)

	min, max := in.Domain()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 2.0, max)

	out, err := in.Evaluate([]float64{2, 0, 1.5}, false, 0)
	assert.NoError(t, err)
	assert.InDelta(t, 3.0, out[0], 1e-12) // last duplicate wins
	assert.InDelta(t, 1.0, out[1], 1e-12)
	assert.InDelta(t, 2.5, out[2], 1e-12)
}
