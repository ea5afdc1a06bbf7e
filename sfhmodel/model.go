// Package sfhmodel synthesises star-formation histories from closed-form
// models. A model function gives the rate at each look-back time; a Generator
// samples it on a grid, optionally with noise and burst events, and yields a
// record ready for resampling and integration.
package sfhmodel

import (
	"errors"
	"math"

	"github.com/teknico/sigourney/fast"
)

// A ModelFunction returns the star-formation rate in Msun/yr at look-back
// time t (Myr), for a rate scale (Msun/yr) and a timescale tau (Myr).
type ModelFunction func(t, scale, tau float64) float64

// A map between string name and model function pairs
var modelFunctions = map[string]ModelFunction{
	"constant":          constant,
	"exponential_decay": exponentialDecay,
	"exponential_rise":  exponentialRise,
	"delayed":           delayedTau,
	"gaussian_burst":    gaussianBurst,
	"periodic_burst":    periodicBurst,
}

// GetModelFunctionNames returns the names of all registered model functions.
func GetModelFunctionNames() []string {
	names := make([]string, 0, len(modelFunctions))
	for name := range modelFunctions {
		names = append(names, name)
	}
	return names
}

// GetModelFunctionFromName returns the named model function.
func GetModelFunctionFromName(name string) (ModelFunction, error) {
	modelFunc, ok := modelFunctions[name]
	if !ok {
		return nil, errors.New("model function not found")
	}

	return modelFunc, nil
}

// Returns a constant rate y=scale at every look-back time.
func constant(_, scale, _ float64) float64 {
	return scale
}

// Returns y=scale*exp(-t/tau): a rate that was highest in the recent past and
// decays towards older look-back times.
func exponentialDecay(t, scale, tau float64) float64 {
	return scale * math.Exp(-t/tau)
}

// Returns y=scale*(1-exp(-t/tau)): a rate rising towards older look-back
// times, saturating at scale.
func exponentialRise(t, scale, tau float64) float64 {
	return scale * (1 - math.Exp(-t/tau))
}

// Returns the delayed-tau shape y=scale*(t/tau)*exp(-t/tau), peaking at t=tau
// with value scale/e.
func delayedTau(t, scale, tau float64) float64 {
	return scale * (t / tau) * math.Exp(-t/tau)
}

// Returns a Gaussian burst centred on look-back time tau with a width of
// tau/4, peaking at scale.
func gaussianBurst(t, scale, tau float64) float64 {
	sigma := tau / 4
	d := (t - tau) / sigma
	return scale * math.Exp(-d*d/2)
}

// Returns recurring bursts y=scale*(1+sin(2*pi*t/tau))/2 of period tau,
// oscillating between 0 and scale.
func periodicBurst(t, scale, tau float64) float64 {
	return scale * (1 + fast.Sin(2*math.Pi*t/tau)) / 2
}
