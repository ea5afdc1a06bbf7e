// Package interpolate provides the 1-D interpolation engine used to resample
// star-formation histories onto new look-back time grids. The supported kinds
// and their names mirror the common scientific-stack conventions, so
// configuration written against those names ports over directly.
package interpolate

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// Kind selects the interpolation scheme applied between sample points.
type Kind string

// The supported interpolation kinds.
const (
	Linear    Kind = "linear"     // straight lines between neighbouring samples
	Nearest   Kind = "nearest"    // value of the closest sample, ties round down
	NearestUp Kind = "nearest-up" // value of the closest sample, ties round up
	Zero      Kind = "zero"       // zero-order hold of the sample at or before the query
	SLinear   Kind = "slinear"    // first-order spline, identical values to linear
	Quadratic Kind = "quadratic"  // parabola through the bracketing sample triple
	Cubic     Kind = "cubic"      // natural cubic spline
	Previous  Kind = "previous"   // value of the sample at or before the query
	Next      Kind = "next"       // value of the sample at or after the query
)

// kindSpec carries the per-kind fitting strategy. minPoints follows the
// order+1 rule for the spline kinds and two points otherwise.
type kindSpec struct {
	minPoints    int
	newPredictor func() interp.FittablePredictor
}

var kinds = map[Kind]kindSpec{
	Linear:    {2, func() interp.FittablePredictor { return &interp.PiecewiseLinear{} }},
	SLinear:   {2, func() interp.FittablePredictor { return &interp.PiecewiseLinear{} }},
	Next:      {2, func() interp.FittablePredictor { return &interp.PiecewiseConstant{} }},
	Cubic:     {4, func() interp.FittablePredictor { return &interp.NaturalCubic{} }},
	Nearest:   {2, func() interp.FittablePredictor { return &nearestPredictor{} }},
	NearestUp: {2, func() interp.FittablePredictor { return &nearestPredictor{up: true} }},
	Quadratic: {3, func() interp.FittablePredictor { return &parabolicPredictor{} }},
	Previous:  {2, func() interp.FittablePredictor { return &stepPredictor{} }},
	Zero:      {1, func() interp.FittablePredictor { return &stepPredictor{} }},
}

// Kinds returns the names of all supported interpolation kinds, sorted.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for kind := range kinds {
		names = append(names, string(kind))
	}
	sort.Strings(names)
	return names
}

// ParseKind returns the kind with the given name. The empty name defaults to
// Next, the resampling default of the records.
func ParseKind(name string) (Kind, error) {
	if name == "" {
		return Next, nil
	}
	kind := Kind(name)
	if _, ok := kinds[kind]; !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownKind)
	}
	return kind, nil
}

func (k Kind) String() string {
	return string(k)
}

// UnmarshalYAML checks the kind name against the supported set when a kind is
// read from a yaml configuration.
func (k *Kind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	kind, err := ParseKind(name)
	if err != nil {
		return err
	}

	*k = kind
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler so mapstructure-based
// configuration loaders can parse kind names via their text unmarshal hook.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k), nil
}
