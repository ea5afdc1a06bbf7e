package interpolate_test

import (
	"testing"

	"github.com/WilfriedMercier/SFHandle/interpolate"
	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestParseKind(t *testing.T) {
	testCases := []struct {
		name     string
		expected interpolate.Kind
		isError  bool
	}{
		{name: "linear", expected: interpolate.Linear},
		{name: "nearest", expected: interpolate.Nearest},
		{name: "nearest-up", expected: interpolate.NearestUp},
		{name: "zero", expected: interpolate.Zero},
		{name: "slinear", expected: interpolate.SLinear},
		{name: "quadratic", expected: interpolate.Quadratic},
		{name: "cubic", expected: interpolate.Cubic},
		{name: "previous", expected: interpolate.Previous},
		{name: "next", expected: interpolate.Next},
		{name: "", expected: interpolate.Next}, // empty name selects the default
		{name: "not_a_kind", isError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := interpolate.ParseKind(tc.name)

			if tc.isError {
				assert.ErrorIs(t, err, interpolate.ErrUnknownKind)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, kind)
		})
	}
}

func TestKinds(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"cubic", "linear", "nearest", "nearest-up", "next",
		"previous", "quadratic", "slinear", "zero",
	}, interpolate.Kinds())
}

func TestKindUnmarshalYAML(t *testing.T) {
	var config struct {
		Kind interpolate.Kind `yaml:"Kind"`
	}

	err := yaml.Unmarshal([]byte("Kind: quadratic"), &config)
	assert.NoError(t, err)
	assert.Equal(t, interpolate.Quadratic, config.Kind)

	err = yaml.Unmarshal([]byte("Kind: bezier"), &config)
	assert.ErrorIs(t, err, interpolate.ErrUnknownKind)
}

func TestGetDecodeHook(t *testing.T) {
	hook, err := interpolate.GetDecodeHook()
	assert.NoError(t, err)

	var config struct {
		Kind interpolate.Kind
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: hook,
		Result:     &config,
	})
	assert.NoError(t, err)

	err = decoder.Decode(map[string]interface{}{"Kind": "previous"})
	assert.NoError(t, err)
	assert.Equal(t, interpolate.Previous, config.Kind)

	err = decoder.Decode(map[string]interface{}{"Kind": "bezier"})
	assert.Error(t, err)
}
