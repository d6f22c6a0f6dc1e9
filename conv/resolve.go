package conv

import "github.com/viant/schemaconv/schema"

// ResolveConvertedType returns a type values conform to after conversion.
// For the same parameterized kind the narrower length wins; decimals keep destination scale with precision
// bounded by source integer digits. Nested types are resolved recursively, otherwise destination is returned.
func ResolveConvertedType(source, destination *schema.Type, opts ...Option) *schema.Type {
	return resolve(source, destination, newOptions(opts))
}

func resolve(source, destination *schema.Type, options *Options) *schema.Type {
	if source == nil || destination == nil || source.Category != destination.Category {
		return destination
	}
	switch destination.Category {
	case schema.CategoryPrimitive:
		if source.Kind != destination.Kind || !destination.IsParameterized() {
			return destination
		}
		ret := *destination
		switch destination.Kind {
		case schema.KindVarchar, schema.KindChar:
			ret.Length = min(source.Length, destination.Length)
		case schema.KindDecimal:
			ret.Precision = resolvePrecision(source, destination)
		}
		return &ret
	case schema.CategoryList:
		return schema.NewList(resolve(source.Elem, destination.Elem, options))
	case schema.CategoryMap:
		return schema.NewMap(resolve(source.Key, destination.Key, options), resolve(source.Value, destination.Value, options))
	case schema.CategoryStruct:
		fields := make([]*schema.Field, len(destination.Fields))
		for i, field := range destination.Fields {
			index := -1
			switch {
			case options.StructByName:
				index = source.Lookup(field.Name)
			case i < len(source.Fields):
				index = i
			}
			fields[i] = resolveField(source, field, index, options)
		}
		return schema.NewStruct(fields...)
	case schema.CategoryUnion:
		fields := make([]*schema.Field, len(destination.Fields))
		for i, alternative := range destination.Fields {
			index := -1
			switch {
			case options.UnionByPosition:
				if i < len(source.Fields) {
					index = i
				}
			default:
				index = source.Lookup(alternative.Name)
			}
			fields[i] = resolveField(source, alternative, index, options)
		}
		return schema.NewUnion(fields...)
	}
	return destination
}

func resolveField(source *schema.Type, field *schema.Field, index int, options *Options) *schema.Field {
	if index == -1 {
		return field
	}
	return schema.NewField(field.Name, resolve(source.Fields[index].Type, field.Type, options))
}

// resolvePrecision returns precision of decimals rounded to destination scale,
// rounding to a smaller scale can carry into one extra integer digit
func resolvePrecision(source, destination *schema.Type) int {
	digits := source.Precision - source.Scale
	if destination.Scale < source.Scale {
		digits++
	}
	digits = min(digits, destination.Precision-destination.Scale)
	return max(digits+destination.Scale, 1)
}
