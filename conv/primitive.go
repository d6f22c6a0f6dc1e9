package conv

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	ftime "github.com/viant/schemaconv/format/time"
	"github.com/viant/schemaconv/schema"
)

type (
	integer interface {
		~int8 | ~int16 | ~int32 | ~int64
	}

	float interface {
		~float32 | ~float64
	}

	// primitive holds source reader with its scratch cell
	primitive struct {
		read    reader
		scratch scalar
	}

	booleanConverter struct {
		primitive
	}

	integralConverter[T integer] struct {
		primitive
	}

	floatConverter[T float] struct {
		primitive
	}

	textConverter struct {
		primitive
		maxLength int
		buffer    []byte
	}

	binaryConverter struct {
		primitive
	}

	decimalConverter struct {
		primitive
		scale int32
		limit decimal.Decimal
	}

	dateConverter struct {
		primitive
		options *Options
	}

	timestampConverter struct {
		primitive
		options *Options
	}
)

func (b *builder) newPrimitive(source, destination *schema.Type, location string) (Converter, error) {
	read := readerOf(source.Kind)
	if read == nil {
		return nil, fmt.Errorf("unsupported source kind %v at %q", source.Kind, location)
	}
	return b.newPrimitiveWriter(primitive{read: read}, destination, location)
}

func (b *builder) newPrimitiveWriter(p primitive, destination *schema.Type, location string) (Converter, error) {
	switch destination.Kind {
	case schema.KindVoid:
		return null{}, nil
	case schema.KindBoolean:
		return &booleanConverter{primitive: p}, nil
	case schema.KindByte:
		return &integralConverter[int8]{primitive: p}, nil
	case schema.KindShort:
		return &integralConverter[int16]{primitive: p}, nil
	case schema.KindInt:
		return &integralConverter[int32]{primitive: p}, nil
	case schema.KindLong:
		return &integralConverter[int64]{primitive: p}, nil
	case schema.KindFloat:
		return &floatConverter[float32]{primitive: p}, nil
	case schema.KindDouble:
		return &floatConverter[float64]{primitive: p}, nil
	case schema.KindString:
		return &textConverter{primitive: p}, nil
	case schema.KindVarchar, schema.KindChar:
		return &textConverter{primitive: p, maxLength: destination.Length}, nil
	case schema.KindBinary:
		return &binaryConverter{primitive: p}, nil
	case schema.KindDecimal:
		return &decimalConverter{
			primitive: p,
			scale:     int32(destination.Scale),
			limit:     decimal.New(1, int32(destination.Precision-destination.Scale)),
		}, nil
	case schema.KindDate:
		return &dateConverter{primitive: p, options: b.options}, nil
	case schema.KindTimestamp:
		return &timestampConverter{primitive: p, options: b.options}, nil
	}
	return nil, fmt.Errorf("unsupported destination kind %v at %q", destination.Kind, location)
}

func (p *primitive) load(src interface{}) *scalar {
	if src == nil || !p.read(src, &p.scratch) {
		return nil
	}
	return &p.scratch
}

func (c *booleanConverter) Convert(src interface{}) (interface{}, error) {
	s := c.load(src)
	if s == nil {
		return nil, nil
	}
	if v, ok := s.asBool(); ok {
		return v, nil
	}
	return nil, nil
}

// Convert converts to integral value, out of range integers wrap, out of range floats saturate
func (c *integralConverter[T]) Convert(src interface{}) (interface{}, error) {
	s := c.load(src)
	if s == nil {
		return nil, nil
	}
	if s.kind == scalarFloat {
		if v, ok := floatToInt[T](s.f); ok {
			return v, nil
		}
		return nil, nil
	}
	if v, ok := s.asInt(); ok {
		return T(v), nil
	}
	return nil, nil
}

func (c *floatConverter[T]) Convert(src interface{}) (interface{}, error) {
	s := c.load(src)
	if s == nil {
		return nil, nil
	}
	if v, ok := s.asFloat(); ok {
		return T(v), nil
	}
	return nil, nil
}

// Convert renders text, the returned string never shares the converter buffer
func (c *textConverter) Convert(src interface{}) (interface{}, error) {
	s := c.load(src)
	if s == nil {
		return nil, nil
	}
	var ok bool
	if c.buffer, ok = s.appendText(c.buffer[:0]); !ok {
		return nil, nil
	}
	if c.maxLength > 0 {
		c.buffer = truncate(c.buffer, c.maxLength)
	}
	return string(c.buffer), nil
}

func (c *binaryConverter) Convert(src interface{}) (interface{}, error) {
	s := c.load(src)
	if s == nil {
		return nil, nil
	}
	switch s.kind {
	case scalarText:
		return []byte(s.text), nil
	case scalarBinary:
		return append(make([]byte, 0, len(s.raw)), s.raw...), nil
	}
	return nil, nil
}

// Convert rounds half up to the destination scale, values exceeding destination precision convert to nil
func (c *decimalConverter) Convert(src interface{}) (interface{}, error) {
	s := c.load(src)
	if s == nil {
		return nil, nil
	}
	dec, ok := s.asDecimal()
	if !ok {
		return nil, nil
	}
	dec = dec.Round(c.scale)
	if dec.Abs().Cmp(c.limit) >= 0 {
		return nil, nil
	}
	return dec, nil
}

func (c *dateConverter) Convert(src interface{}) (interface{}, error) {
	s := c.load(src)
	if s == nil || !(s.kind == scalarText || s.isTemporal()) {
		return nil, nil
	}
	ts, ok := s.asTime(c.options)
	if !ok {
		return nil, nil
	}
	return ftime.TruncateDay(ts), nil
}

func (c *timestampConverter) Convert(src interface{}) (interface{}, error) {
	s := c.load(src)
	if s == nil || s.kind == scalarBool || s.kind == scalarBinary {
		return nil, nil
	}
	ts, ok := s.asTime(c.options)
	if !ok {
		return nil, nil
	}
	return ts, nil
}

// truncate truncates text to max characters
func truncate(text []byte, length int) []byte {
	count := 0
	for i := 0; i < len(text); {
		if count == length {
			return text[:i]
		}
		_, size := utf8.DecodeRune(text[i:])
		i += size
		count++
	}
	return text
}
