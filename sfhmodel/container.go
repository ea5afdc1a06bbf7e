package sfhmodel

import (
	"fmt"
	"reflect"

	sfhandle "github.com/WilfriedMercier/SFHandle"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

// Container is a named set of generators, typically one per mock galaxy.
type Container map[string]*Generator

// UnmarshalYAML unmarshals each container entry through the Generator
// constructor so that invalid parameters are rejected during decoding.
func (c *Container) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw map[string]*Generator
	if err := unmarshal(&raw); err != nil {
		return err
	}

	if *c == nil {
		*c = Container{}
	}
	for key, gen := range raw {
		(*c)[key] = gen
	}

	return nil
}

// AddGenerator adds a generator to the container with a UUID and returns the
// UUID.
func (c *Container) AddGenerator(gen *Generator) uuid.UUID {
	uuid := uuid.New()
	(*c)[uuid.String()] = gen
	return uuid
}

// Build samples every generator on the grid and returns the records keyed
// like the container itself.
func (c Container) Build(grid []float64) (sfhandle.Collection, error) {
	records := sfhandle.Collection{}
	for key := range c {
		rec, err := c[key].Build(grid)
		if err != nil {
			return nil, fmt.Errorf("generator %q: %w", key, err)
		}
		records.Set(key, rec)
	}
	return records, nil
}

// GetDecodeHook returns a decodeHook function that can be used to unmarshal
// generators from a yaml file using mapstructure. This supports configuration
// solutions like spf13/viper that use mapstructure to unmarshal yaml files.
func GetDecodeHook() (mapstructure.DecodeHookFunc, error) {
	decodeHook := func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(Generator{}) || t == reflect.TypeOf(&Generator{}) {
			// unmarshal into Params and use the constructor to create the Generator
			var params Params
			if err := decodeParams(&params, data); err != nil {
				return nil, err
			}
			return NewGenerator(params)
		}
		// Otherwise, return the entry as is (default behaviour)
		return data, nil
	}

	return decodeHook, nil
}

// Use mapstructure to unmarshal data into params.
func decodeParams(params *Params, data interface{}) error {
	m, ok := data.(map[string]interface{})
	if !ok {
		return fmt.Errorf("expected map[string]interface{}, got %T", data)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
		Result:     params,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(m)
}
