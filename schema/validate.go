package schema

import (
	"errors"
	"fmt"
	"strings"
)

// signatureDelimiters cannot appear in field names, canonical signatures would become ambiguous
const signatureDelimiters = "<>(),: \t\r\n"

var (
	//ErrInvalidType reports malformed type descriptor
	ErrInvalidType = errors.New("invalid type")
	//ErrSyntax reports malformed type signature
	ErrSyntax = errors.New("invalid type signature")
)

// Validate checks type descriptor contract: unique struct field names, non empty unions, complete nested types and valid parameters
func (t *Type) Validate() error {
	return t.validate("")
}

func (t *Type) validate(location string) error {
	if t == nil {
		return fmt.Errorf("%w: %vtype was nil", ErrInvalidType, at(location))
	}
	switch t.Category {
	case CategoryPrimitive:
		return t.validatePrimitive(location)
	case CategoryList:
		if t.Elem == nil {
			return fmt.Errorf("%w: %vlist element type was nil", ErrInvalidType, at(location))
		}
		return t.Elem.validate(location + "[]")
	case CategoryMap:
		if t.Key == nil || t.Value == nil {
			return fmt.Errorf("%w: %vmap key and value types are required", ErrInvalidType, at(location))
		}
		if err := t.Key.validate(location + "{key}"); err != nil {
			return err
		}
		return t.Value.validate(location + "{value}")
	case CategoryStruct, CategoryUnion:
		if t.Category == CategoryUnion && len(t.Fields) == 0 {
			return fmt.Errorf("%w: %vunion has no alternatives", ErrInvalidType, at(location))
		}
		seen := make(map[string]bool, len(t.Fields))
		for i, field := range t.Fields {
			if field == nil {
				return fmt.Errorf("%w: %v%v field %v was nil", ErrInvalidType, at(location), t.Category, i)
			}
			if field.Name == "" || strings.ContainsAny(field.Name, signatureDelimiters) {
				return fmt.Errorf("%w: %v%v field %v has invalid name %q", ErrInvalidType, at(location), t.Category, i, field.Name)
			}
			if seen[field.Name] {
				return fmt.Errorf("%w: %v%v has duplicate field %q", ErrInvalidType, at(location), t.Category, field.Name)
			}
			seen[field.Name] = true
			if err := field.Type.validate(join(location, field.Name)); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %vunsupported category %v", ErrInvalidType, at(location), int(t.Category))
}

func (t *Type) validatePrimitive(location string) error {
	switch t.Kind {
	case KindVarchar, KindChar:
		if t.Length <= 0 {
			return fmt.Errorf("%w: %v%v length must be positive, but had %v", ErrInvalidType, at(location), t.Kind, t.Length)
		}
	case KindDecimal:
		if t.Precision < 1 || t.Precision > MaxDecimalPrecision {
			return fmt.Errorf("%w: %vdecimal precision %v out of range 1..%v", ErrInvalidType, at(location), t.Precision, MaxDecimalPrecision)
		}
		if t.Scale < 0 || t.Scale > t.Precision {
			return fmt.Errorf("%w: %vdecimal scale %v out of range 0..%v", ErrInvalidType, at(location), t.Scale, t.Precision)
		}
	case KindVoid, KindBoolean, KindByte, KindShort, KindInt, KindLong, KindFloat, KindDouble,
		KindString, KindBinary, KindDate, KindTimestamp:
	default:
		return fmt.Errorf("%w: %vunsupported primitive kind %v", ErrInvalidType, at(location), int(t.Kind))
	}
	return nil
}

func at(location string) string {
	if location == "" {
		return ""
	}
	return location + ": "
}

func join(location, name string) string {
	if location == "" {
		return name
	}
	return location + "." + name
}
