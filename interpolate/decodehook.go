package interpolate

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// GetDecodeHook returns a decodeHook function that parses interpolation kind
// names when resampling options are unmarshalled with mapstructure. This
// supports configuration solutions like spf13/viper that use mapstructure to
// unmarshal yaml files.
func GetDecodeHook() (mapstructure.DecodeHookFunc, error) {
	decodeHook := func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(Kind("")) {
			name, ok := data.(string)
			if !ok {
				return data, nil
			}
			return ParseKind(name)
		}
		// Otherwise, return the entry as is (default behaviour)
		return data, nil
	}

	return decodeHook, nil
}
