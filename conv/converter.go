package conv

import (
	"fmt"

	"github.com/viant/schemaconv/schema"
)

// Converter converts a value of the source type into destination type representation, nil converts to nil
type Converter interface {
	Convert(src interface{}) (interface{}, error)
}

// Func represents converter function
type Func func(src interface{}) (interface{}, error)

// Convert converts value
func (f Func) Convert(src interface{}) (interface{}, error) {
	return f(src)
}

type (
	identity struct{}

	null struct{}

	builder struct {
		options *Options
	}
)

func (identity) Convert(src interface{}) (interface{}, error) {
	return src, nil
}

func (null) Convert(interface{}) (interface{}, error) {
	return nil, nil
}

// IsNull returns true for converter that always returns nil
func IsNull(converter Converter) bool {
	_, ok := converter.(null)
	return ok
}

// IsIdentity returns true for pass through converter
func IsIdentity(converter Converter) bool {
	_, ok := converter.(identity)
	return ok
}

// New creates a converter for source and destination types
func New(source, destination *schema.Type, opts ...Option) (Converter, error) {
	if err := source.Validate(); err != nil {
		return nil, fmt.Errorf("invalid source type: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return nil, fmt.Errorf("invalid destination type: %w", err)
	}
	b := &builder{options: newOptions(opts)}
	return b.build(source, destination, "")
}

func (b *builder) build(source, destination *schema.Type, location string) (Converter, error) {
	if !b.options.Normalize && schema.Equal(source, destination) {
		return identity{}, nil
	}
	switch destination.Category {
	case schema.CategoryPrimitive:
		if source.Category != schema.CategoryPrimitive {
			if destination.Kind.IsText() {
				return b.newRendered(source, destination)
			}
			return b.null(source, destination, location), nil
		}
		return b.newPrimitive(source, destination, location)
	case schema.CategoryStruct:
		if source.Category != schema.CategoryStruct {
			return b.null(source, destination, location), nil
		}
		return b.newStruct(source, destination, location)
	case schema.CategoryList:
		if source.Category != schema.CategoryList {
			return b.null(source, destination, location), nil
		}
		elem, err := b.build(source.Elem, destination.Elem, location+"[]")
		if err != nil {
			return nil, err
		}
		return &listConverter{elem: elem}, nil
	case schema.CategoryMap:
		if source.Category != schema.CategoryMap {
			return b.null(source, destination, location), nil
		}
		key, err := b.build(source.Key, destination.Key, location+"{key}")
		if err != nil {
			return nil, err
		}
		value, err := b.build(source.Value, destination.Value, location+"{value}")
		if err != nil {
			return nil, err
		}
		return &mapConverter{key: key, value: value}, nil
	case schema.CategoryUnion:
		if source.Category != schema.CategoryUnion {
			return b.null(source, destination, location), nil
		}
		return b.newUnion(source, destination, location)
	}
	return nil, fmt.Errorf("unsupported destination category %v at %q", destination.Category, location)
}

func (b *builder) null(source, destination *schema.Type, location string) Converter {
	b.options.Logger.Debug("incompatible types, converting to null",
		"source", source.String(),
		"destination", destination.String(),
		"location", location)
	return null{}
}
