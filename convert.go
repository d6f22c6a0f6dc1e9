package schemaconv

import (
	"github.com/viant/schemaconv/conv"
	"github.com/viant/schemaconv/schema"
	"github.com/viant/schemaconv/value"
)

var (
	types      = value.NewSyncMap[string, *schema.Type]()
	converters = conv.NewCache()
)

// Convert converts v from source to destination signature,
// converters built with default options are pooled and reused across calls
func Convert(source, destination string, v interface{}, opts ...conv.Option) (interface{}, error) {
	sourceType, destinationType, err := typesOf(source, destination)
	if err != nil {
		return nil, err
	}
	if len(opts) > 0 {
		converter, err := conv.New(sourceType, destinationType, opts...)
		if err != nil {
			return nil, err
		}
		return converter.Convert(v)
	}
	converter, err := converters.Acquire(sourceType, destinationType)
	if err != nil {
		return nil, err
	}
	defer converters.Release(sourceType, destinationType, converter)
	return converter.Convert(v)
}

// Resolve returns signature of values produced by source to destination conversion
func Resolve(source, destination string, opts ...conv.Option) (string, error) {
	sourceType, destinationType, err := typesOf(source, destination)
	if err != nil {
		return "", err
	}
	return conv.ResolveConvertedType(sourceType, destinationType, opts...).String(), nil
}

func typesOf(source, destination string) (*schema.Type, *schema.Type, error) {
	sourceType, err := typeOf(source)
	if err != nil {
		return nil, nil, err
	}
	destinationType, err := typeOf(destination)
	if err != nil {
		return nil, nil, err
	}
	return sourceType, destinationType, nil
}

func typeOf(signature string) (*schema.Type, error) {
	if ret, ok := types.Get(signature); ok {
		return ret, nil
	}
	parsed, err := schema.Parse(signature)
	if err != nil {
		return nil, err
	}
	return types.GetOrCreate(signature, func() *schema.Type { return parsed }), nil
}
