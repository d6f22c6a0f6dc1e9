package conv

import (
	"fmt"
	"reflect"

	"github.com/viant/schemaconv/encoding/json"
	"github.com/viant/schemaconv/value"
)

type mapConverter struct {
	key   Converter
	value Converter
}

// Convert converts map keys and values, a key converted to nil is kept as nil key.
// When converted keys collide, nil keys included, the later visited entry wins, Go map iteration order is random.
func (c *mapConverter) Convert(src interface{}) (interface{}, error) {
	if src == nil {
		return nil, nil
	}
	visitor, size, ok := value.MapVisitorOf(src)
	if !ok {
		return nil, unexpectedValue("map", src)
	}
	ret := make(map[interface{}]interface{}, size)
	err := visitor(func(key, element interface{}) (bool, error) {
		convertedKey, err := c.key.Convert(key)
		if err != nil {
			return false, fmt.Errorf("failed to convert key %v: %w", key, err)
		}
		convertedValue, err := c.value.Convert(element)
		if err != nil {
			return false, fmt.Errorf("failed to convert value of %v: %w", key, err)
		}
		if convertedKey != nil {
			if convertedKey, err = hashable(convertedKey); err != nil {
				return false, err
			}
		}
		ret[convertedKey] = convertedValue
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// hashable returns key usable in Go map, binary and other non comparable keys are represented as text
func hashable(key interface{}) (interface{}, error) {
	switch actual := key.(type) {
	case []byte:
		return string(actual), nil
	case string, bool, int8, int16, int32, int64, float32, float64:
		return key, nil
	}
	if reflect.TypeOf(key).Comparable() {
		return key, nil
	}
	data, err := json.Marshal(key)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
