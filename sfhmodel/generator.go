package sfhmodel

import (
	"errors"
	"math/rand/v2"
	"time"

	sfhandle "github.com/WilfriedMercier/SFHandle"
)

// Generator samples an analytic star-formation model on look-back time grids.
type Generator struct {
	name      string
	modelName string  // registry name of the model, defaults to "constant" if empty
	scale     float64 // rate scale of the model in Msun/yr
	tau       float64 // model timescale in Myr

	noiseFrac float64 // Gaussian scatter on the rate, as a fraction of the rate
	errorFrac float64 // reported one-sigma error, as a fraction of the rate

	burst *burstEvent

	// internal state
	model ModelFunction // set from modelName
	rng   *rand.Rand
}

// A burst of extra star formation on top of the model rate.
type burstEvent struct {
	time     float64 // look-back time at which the burst starts, in Myr
	duration float64 // burst duration in Myr
	scale    float64 // extra rate during the burst in Msun/yr
}

// Parameters to use for a Generator. All can be accessed publicly and used to
// define a Generator.
type Params struct {
	Name      string  `yaml:"Name" mapstructure:"Name"`           // name of the generator, used for identification
	ModelName string  `yaml:"Model" mapstructure:"Model"`         // name of the model function, empty defaults to "constant"
	Scale     float64 `yaml:"Scale" mapstructure:"Scale"`         // rate scale of the model in Msun/yr
	Tau       float64 `yaml:"Tau" mapstructure:"Tau"`             // model timescale in Myr
	NoiseFrac float64 `yaml:"NoiseFrac" mapstructure:"NoiseFrac"` // Gaussian scatter on the rate, as a fraction of the rate
	ErrorFrac float64 `yaml:"ErrorFrac" mapstructure:"ErrorFrac"` // reported one-sigma error, as a fraction of the rate
	Seed      uint64  `yaml:"Seed" mapstructure:"Seed"`           // seed for the noise stream, 0 seeds from the clock

	BurstTime     float64 `yaml:"BurstTime" mapstructure:"BurstTime"`         // look-back time at which an optional burst starts, in Myr
	BurstDuration float64 `yaml:"BurstDuration" mapstructure:"BurstDuration"` // burst duration in Myr, 0 for no burst
	BurstScale    float64 `yaml:"BurstScale" mapstructure:"BurstScale"`       // extra rate during the burst in Msun/yr
}

// NewGenerator returns a Generator with the requested parameters, checking
// for invalid values.
func NewGenerator(params Params) (*Generator, error) {
	gen := &Generator{}

	// Fields that can never be invalid set directly
	gen.name = params.Name

	// Invalid values checked by setters
	if err := gen.SetModelByName(params.ModelName); err != nil {
		return nil, err
	}
	if err := gen.SetScale(params.Scale); err != nil {
		return nil, err
	}
	if err := gen.SetTau(params.Tau); err != nil {
		return nil, err
	}
	if err := gen.SetNoiseFrac(params.NoiseFrac); err != nil {
		return nil, err
	}
	if err := gen.SetErrorFrac(params.ErrorFrac); err != nil {
		return nil, err
	}
	if err := gen.SetBurst(params.BurstTime, params.BurstDuration, params.BurstScale); err != nil {
		return nil, err
	}

	seed := params.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gen.rng = rand.New(rand.NewPCG(seed, seed))

	return gen, nil
}

// Initialise the internal fields of a Generator when it is unmarshalled from
// yaml.
func (g *Generator) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params Params
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	gen, err := NewGenerator(params)
	if err != nil {
		return err
	}

	*g = *gen

	return nil
}

// Build samples the model on the grid of look-back times and returns the
// resulting record. Rates are the model value plus the burst contribution,
// scattered by the noise fraction and clamped at zero; the error series is
// the error fraction of each rate.
func (g *Generator) Build(grid []float64) (*sfhandle.SFH, error) {
	rate := make([]float64, len(grid))
	rateErr := make([]float64, len(grid))

	for i, t := range grid {
		r := g.model(t, g.scale, g.tau)
		if g.burst != nil && t >= g.burst.time && t < g.burst.time+g.burst.duration {
			r += g.burst.scale
		}
		if g.noiseFrac > 0 {
			r *= 1 + g.noiseFrac*g.rng.NormFloat64()
		}
		if r < 0 {
			r = 0
		}

		rate[i] = r
		rateErr[i] = g.errorFrac * r
	}

	return sfhandle.New(grid, rate, rateErr)
}

// Setters

// SetModelByName looks up the model function in the registry. An empty name
// selects the constant model.
func (g *Generator) SetModelByName(name string) error {
	if name == "" {
		name = "constant"
	}

	model, err := GetModelFunctionFromName(name)
	if err != nil {
		return err
	}

	g.model = model
	g.modelName = name
	return nil
}

// SetScale sets the rate scale of the model in Msun/yr if scale >= 0.
func (g *Generator) SetScale(scale float64) error {
	if scale < 0 {
		return errors.New("scale must not be negative")
	}
	g.scale = scale
	return nil
}

// SetTau sets the model timescale in Myr if tau > 0.
func (g *Generator) SetTau(tau float64) error {
	if tau <= 0 {
		return errors.New("tau must be a positive value")
	}
	g.tau = tau
	return nil
}

// SetNoiseFrac sets the Gaussian scatter on the rate if noiseFrac >= 0.
func (g *Generator) SetNoiseFrac(noiseFrac float64) error {
	if noiseFrac < 0 {
		return errors.New("noiseFrac must not be negative")
	}
	g.noiseFrac = noiseFrac
	return nil
}

// SetErrorFrac sets the reported one-sigma error fraction if errorFrac >= 0.
func (g *Generator) SetErrorFrac(errorFrac float64) error {
	if errorFrac < 0 {
		return errors.New("errorFrac must not be negative")
	}
	g.errorFrac = errorFrac
	return nil
}

// SetBurst configures the optional burst. A zero duration disables the burst;
// otherwise the start time must not be negative and the extra rate must be
// positive.
func (g *Generator) SetBurst(start, duration, scale float64) error {
	if duration == 0 {
		g.burst = nil
		return nil
	}
	if duration < 0 {
		return errors.New("burst duration must not be negative")
	}
	if start < 0 {
		return errors.New("burst start time must not be negative")
	}
	if scale <= 0 {
		return errors.New("burst scale must be a positive value")
	}

	g.burst = &burstEvent{time: start, duration: duration, scale: scale}
	return nil
}

// Getters

// Name returns the name of the generator.
func (g *Generator) Name() string {
	return g.name
}

// ModelName returns the registry name of the model function in use.
func (g *Generator) ModelName() string {
	return g.modelName
}

// Model returns the model function in use.
func (g *Generator) Model() ModelFunction {
	return g.model
}
