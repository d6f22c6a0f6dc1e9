package json

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/francoispqt/gojay"
	"github.com/shopspring/decimal"
	ftime "github.com/viant/schemaconv/format/time"
	"github.com/viant/schemaconv/value"
)

var null = []byte("null")

// Marshal renders converted or source values as JSON.
// Structs with known field names should be supplied as *Object, other values use their natural JSON form:
// lists and Go slices render as arrays, maps as objects with text keys, unions as a single key object keyed by tag,
// decimals as JSON numbers, time as text.
func Marshal(v interface{}, opts ...Option) ([]byte, error) {
	cfg := newOptions(opts)
	node := cfg.node(v)
	if node == nil {
		return null, nil
	}
	if embedded, ok := node.(*gojay.EmbeddedJSON); ok {
		return []byte(*embedded), nil
	}
	return gojay.Marshal(node)
}

// Append appends JSON rendering of v to dst
func Append(dst []byte, v interface{}, opts ...Option) ([]byte, error) {
	data, err := Marshal(v, opts...)
	if err != nil {
		return dst, err
	}
	return append(dst, data...), nil
}

type (
	object struct {
		keys   []string
		values []interface{}
		cfg    *Options
	}

	array struct {
		items value.List
		cfg   *Options
	}

	mapObject struct {
		visitor value.Visitor[any, any]
		cfg     *Options
	}
)

func (o *object) MarshalJSONObject(enc *gojay.Encoder) {
	for i, key := range o.keys {
		encodeKey(enc, key, o.cfg.node(o.values[i]))
	}
}

func (o *object) IsNil() bool { return o == nil }

func (a *array) MarshalJSONArray(enc *gojay.Encoder) {
	for i := 0; i < a.items.Len(); i++ {
		encode(enc, a.cfg.node(a.items.At(i)))
	}
}

func (a *array) IsNil() bool { return a == nil }

func (m *mapObject) MarshalJSONObject(enc *gojay.Encoder) {
	_ = m.visitor(func(key, element interface{}) (bool, error) {
		encodeKey(enc, keyText(key), m.cfg.node(element))
		return true, nil
	})
}

func (m *mapObject) IsNil() bool { return m == nil }

// node normalizes v into a gojay native value
func (o *Options) node(v interface{}) interface{} {
	switch actual := v.(type) {
	case nil:
		return nil
	case string, bool, int64, uint64, float32:
		if f, ok := actual.(float32); ok && !isFinite(float64(f)) {
			return strconv.FormatFloat(float64(f), 'f', -1, 32)
		}
		return actual
	case float64:
		if !isFinite(actual) {
			return strconv.FormatFloat(actual, 'f', -1, 64)
		}
		return actual
	case int:
		return int64(actual)
	case int8:
		return int64(actual)
	case int16:
		return int64(actual)
	case int32:
		return int64(actual)
	case uint:
		return uint64(actual)
	case uint8:
		return uint64(actual)
	case uint16:
		return uint64(actual)
	case uint32:
		return uint64(actual)
	case []byte:
		return string(actual)
	case decimal.Decimal:
		embedded := gojay.EmbeddedJSON(actual.String())
		return &embedded
	case *decimal.Decimal:
		if actual == nil {
			return nil
		}
		return o.node(*actual)
	case time.Time:
		return string(ftime.AppendTimestamp(nil, actual, o.TimeLayout))
	case *Object:
		if actual == nil {
			return nil
		}
		return &object{keys: actual.Keys, values: actual.Values, cfg: o}
	case Object:
		return &object{keys: actual.Keys, values: actual.Values, cfg: o}
	case fmt.Stringer:
		if _, ok := value.ListOf(v); !ok {
			if _, _, ok = value.MapVisitorOf(v); !ok {
				if _, _, ok = value.StructOf(v); !ok {
					return actual.String()
				}
			}
		}
	}
	if tag, payload, ok := value.UnionOf(v); ok {
		return &object{keys: []string{strconv.Itoa(tag)}, values: []interface{}{payload}, cfg: o}
	}
	if list, ok := value.ListOf(v); ok {
		return &array{items: list, cfg: o}
	}
	if visitor, _, ok := value.MapVisitorOf(v); ok {
		return &mapObject{visitor: visitor, cfg: o}
	}
	if reader, ptr, ok := value.StructOf(v); ok {
		if ptr == nil {
			return nil
		}
		values := make([]interface{}, reader.Len())
		for i := range values {
			values[i] = reader.Value(ptr, i)
		}
		return &object{keys: reader.Names(), values: values, cfg: o}
	}
	return fmt.Sprint(v)
}

func encode(enc *gojay.Encoder, node interface{}) {
	switch actual := node.(type) {
	case nil:
		enc.AddNull()
	case string:
		enc.AddString(actual)
	case bool:
		enc.AddBool(actual)
	case int64:
		enc.AddInt64(actual)
	case uint64:
		enc.AddUint64(actual)
	case float32:
		enc.AddFloat32(actual)
	case float64:
		enc.AddFloat64(actual)
	case *gojay.EmbeddedJSON:
		enc.AddEmbeddedJSON(actual)
	case gojay.MarshalerJSONObject:
		enc.AddObject(actual)
	case gojay.MarshalerJSONArray:
		enc.AddArray(actual)
	}
}

func encodeKey(enc *gojay.Encoder, key string, node interface{}) {
	switch actual := node.(type) {
	case nil:
		enc.AddNullKey(key)
	case string:
		enc.AddStringKey(key, actual)
	case bool:
		enc.AddBoolKey(key, actual)
	case int64:
		enc.AddInt64Key(key, actual)
	case uint64:
		enc.AddUint64Key(key, actual)
	case float32:
		enc.AddFloat32Key(key, actual)
	case float64:
		enc.AddFloat64Key(key, actual)
	case *gojay.EmbeddedJSON:
		enc.AddEmbeddedJSONKey(key, actual)
	case gojay.MarshalerJSONObject:
		enc.AddObjectKey(key, actual)
	case gojay.MarshalerJSONArray:
		enc.AddArrayKey(key, actual)
	}
}

func keyText(key interface{}) string {
	switch actual := key.(type) {
	case nil:
		return "null"
	case string:
		return actual
	case []byte:
		return string(actual)
	case time.Time:
		return string(ftime.AppendTimestamp(nil, actual, ""))
	}
	return fmt.Sprint(key)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
