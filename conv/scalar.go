package conv

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unsafe"

	"github.com/shopspring/decimal"
	ftime "github.com/viant/schemaconv/format/time"
	"github.com/viant/schemaconv/schema"
)

type scalarKind int

const (
	scalarInt scalarKind = iota + 1
	scalarFloat
	scalarBool
	scalarText
	scalarBinary
	scalarDecimal
	scalarDate
	scalarTimestamp
)

// scalar is a reusable cell holding source primitive value
type scalar struct {
	kind scalarKind
	i    int64
	f    float64
	bits int
	b    bool
	text string
	raw  []byte
	dec  decimal.Decimal
	ts   time.Time
}

// reader loads source value into scalar, it returns false for values that do not fit the source kind
type reader func(v interface{}, s *scalar) bool

func readerOf(kind schema.Kind) reader {
	switch kind {
	case schema.KindVoid:
		return readVoid
	case schema.KindBoolean:
		return readBool
	case schema.KindByte, schema.KindShort, schema.KindInt, schema.KindLong:
		return readInt
	case schema.KindFloat, schema.KindDouble:
		return readFloat
	case schema.KindString, schema.KindVarchar, schema.KindChar:
		return readText
	case schema.KindBinary:
		return readBinary
	case schema.KindDecimal:
		return readDecimal
	case schema.KindDate:
		return readDate
	case schema.KindTimestamp:
		return readTimestamp
	}
	return nil
}

func readVoid(interface{}, *scalar) bool {
	return false
}

func readBool(v interface{}, s *scalar) bool {
	actual, ok := v.(bool)
	if !ok {
		return false
	}
	s.kind = scalarBool
	s.b = actual
	return true
}

func readInt(v interface{}, s *scalar) bool {
	s.kind = scalarInt
	switch actual := v.(type) {
	case int:
		s.i = int64(actual)
	case int8:
		s.i = int64(actual)
	case int16:
		s.i = int64(actual)
	case int32:
		s.i = int64(actual)
	case int64:
		s.i = actual
	case uint:
		s.i = int64(actual)
	case uint8:
		s.i = int64(actual)
	case uint16:
		s.i = int64(actual)
	case uint32:
		s.i = int64(actual)
	case uint64:
		s.i = int64(actual)
	default:
		return false
	}
	return true
}

func readFloat(v interface{}, s *scalar) bool {
	switch actual := v.(type) {
	case float64:
		s.kind, s.f, s.bits = scalarFloat, actual, 64
	case float32:
		s.kind, s.f, s.bits = scalarFloat, float64(actual), 32
	default:
		return readInt(v, s)
	}
	return true
}

func readText(v interface{}, s *scalar) bool {
	switch actual := v.(type) {
	case string:
		s.text = actual
	case []byte:
		s.text = string(actual)
	default:
		return false
	}
	s.kind = scalarText
	return true
}

func readBinary(v interface{}, s *scalar) bool {
	switch actual := v.(type) {
	case []byte:
		s.kind = scalarBinary
		s.raw = actual
		return true
	case string:
		s.kind = scalarText
		s.text = actual
		return true
	}
	return false
}

func readDecimal(v interface{}, s *scalar) bool {
	switch actual := v.(type) {
	case decimal.Decimal:
		s.dec = actual
	case *decimal.Decimal:
		if actual == nil {
			return false
		}
		s.dec = *actual
	case string:
		dec, err := decimal.NewFromString(strings.TrimSpace(actual))
		if err != nil {
			return false
		}
		s.dec = dec
	default:
		return readFloat(v, s)
	}
	s.kind = scalarDecimal
	return true
}

func readDate(v interface{}, s *scalar) bool {
	if !readTime(v, s) {
		return false
	}
	s.kind = scalarDate
	return true
}

func readTimestamp(v interface{}, s *scalar) bool {
	if !readTime(v, s) {
		return false
	}
	s.kind = scalarTimestamp
	return true
}

func readTime(v interface{}, s *scalar) bool {
	switch actual := v.(type) {
	case time.Time:
		s.ts = actual
	case *time.Time:
		if actual == nil {
			return false
		}
		s.ts = *actual
	default:
		return false
	}
	return true
}

func (s *scalar) isTemporal() bool {
	return s.kind == scalarDate || s.kind == scalarTimestamp
}

func (s *scalar) asBool() (bool, bool) {
	switch s.kind {
	case scalarBool:
		return s.b, true
	case scalarInt:
		return s.i != 0, true
	case scalarFloat:
		return s.f != 0, true
	case scalarDecimal:
		return !s.dec.IsZero(), true
	case scalarText:
		return parseBool(s.text)
	}
	return false, false
}

func (s *scalar) asInt() (int64, bool) {
	switch s.kind {
	case scalarInt:
		return s.i, true
	case scalarBool:
		if s.b {
			return 1, true
		}
		return 0, true
	case scalarFloat:
		return floatToInt[int64](s.f)
	case scalarDecimal:
		return s.dec.IntPart(), true
	case scalarText:
		return parseInt(s.text)
	case scalarDate, scalarTimestamp:
		return s.ts.Unix(), true
	}
	return 0, false
}

func (s *scalar) asFloat() (float64, bool) {
	switch s.kind {
	case scalarFloat:
		return s.f, true
	case scalarInt:
		return float64(s.i), true
	case scalarBool:
		if s.b {
			return 1, true
		}
		return 0, true
	case scalarDecimal:
		return s.dec.InexactFloat64(), true
	case scalarText:
		f, err := strconv.ParseFloat(strings.TrimSpace(s.text), 64)
		return f, err == nil
	case scalarDate, scalarTimestamp:
		return float64(s.ts.Unix()) + float64(s.ts.Nanosecond())/1e9, true
	}
	return 0, false
}

func (s *scalar) asDecimal() (decimal.Decimal, bool) {
	switch s.kind {
	case scalarDecimal:
		return s.dec, true
	case scalarInt:
		return decimal.NewFromInt(s.i), true
	case scalarFloat:
		if math.IsNaN(s.f) || math.IsInf(s.f, 0) {
			return decimal.Zero, false
		}
		if s.bits == 32 {
			return decimal.NewFromFloat32(float32(s.f)), true
		}
		return decimal.NewFromFloat(s.f), true
	case scalarBool:
		if s.b {
			return decimal.NewFromInt(1), true
		}
		return decimal.Zero, true
	case scalarText:
		dec, err := decimal.NewFromString(strings.TrimSpace(s.text))
		return dec, err == nil
	case scalarDate, scalarTimestamp:
		return decimal.NewFromInt(s.ts.Unix()).Add(decimal.New(int64(s.ts.Nanosecond()), -9)), true
	}
	return decimal.Zero, false
}

func (s *scalar) asTime(options *Options) (time.Time, bool) {
	switch s.kind {
	case scalarDate, scalarTimestamp:
		return s.ts, true
	case scalarText:
		return options.parseTime(s.text)
	case scalarInt:
		return time.Unix(s.i, 0).UTC(), true
	case scalarFloat:
		if math.IsNaN(s.f) || math.IsInf(s.f, 0) {
			return time.Time{}, false
		}
		sec := math.Floor(s.f)
		return time.Unix(int64(sec), int64((s.f-sec)*1e9)).UTC(), true
	case scalarDecimal:
		sec := s.dec.Floor()
		nanos := s.dec.Sub(sec).Shift(9).IntPart()
		return time.Unix(sec.IntPart(), nanos).UTC(), true
	}
	return time.Time{}, false
}

func (s *scalar) appendText(dst []byte) ([]byte, bool) {
	switch s.kind {
	case scalarBool:
		return strconv.AppendBool(dst, s.b), true
	case scalarInt:
		return strconv.AppendInt(dst, s.i, 10), true
	case scalarFloat:
		return strconv.AppendFloat(dst, s.f, 'f', -1, s.bits), true
	case scalarText:
		return append(dst, s.text...), true
	case scalarBinary:
		return append(dst, s.raw...), true
	case scalarDecimal:
		return append(dst, s.dec.String()...), true
	case scalarDate:
		return ftime.AppendDate(dst, s.ts), true
	case scalarTimestamp:
		return ftime.AppendTimestamp(dst, s.ts, ""), true
	}
	return dst, false
}

func parseBool(text string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, true
	case "false", "f", "no", "n", "off", "0":
		return false, true
	}
	return false, false
}

func parseInt(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i, true
	}
	dec, err := decimal.NewFromString(text)
	if err != nil {
		return 0, false
	}
	return dec.IntPart(), true
}

// floatToInt truncates toward zero, values outside T range saturate, NaN and infinities do not convert
func floatToInt[T integer](f float64) (T, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	bits := unsafe.Sizeof(T(0)) * 8
	upper := int64(math.MaxInt64) >> (64 - bits)
	lower := -upper - 1
	switch {
	case f >= float64(upper):
		return T(upper), true
	case f <= float64(lower):
		return T(lower), true
	}
	return T(int64(f)), true
}
