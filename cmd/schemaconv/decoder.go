package main

import (
	stdjson "encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viant/schemaconv/config"
	"github.com/viant/schemaconv/encoding/json"
	ftime "github.com/viant/schemaconv/format/time"
	"github.com/viant/schemaconv/schema"
	"github.com/viant/schemaconv/value"
)

// decoder reads JSON rows and adapts them to the source type representation
type decoder struct {
	decoder *stdjson.Decoder
	source  *schema.Type
	layout  string
}

func newDecoder(reader io.Reader, source *schema.Type, cfg *config.Config) *decoder {
	ret := &decoder{decoder: stdjson.NewDecoder(reader), source: source, layout: ftime.LayoutOf(cfg.TimeLayout, cfg.DateFormat)}
	ret.decoder.UseNumber()
	return ret
}

// Decode returns next row or io.EOF
func (d *decoder) Decode() (interface{}, error) {
	var row interface{}
	if err := d.decoder.Decode(&row); err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, fmt.Errorf("failed to decode row: %w", err)
	}
	return d.adapt(d.source, row), nil
}

func (d *decoder) adapt(aType *schema.Type, v interface{}) interface{} {
	if v == nil {
		return nil
	}
	switch aType.Category {
	case schema.CategoryStruct:
		switch actual := v.(type) {
		case map[string]interface{}:
			for _, field := range aType.Fields {
				if item, ok := actual[field.Name]; ok {
					actual[field.Name] = d.adapt(field.Type, item)
				}
			}
			return actual
		case []interface{}:
			for i := 0; i < len(actual) && i < len(aType.Fields); i++ {
				actual[i] = d.adapt(aType.Fields[i].Type, actual[i])
			}
			return actual
		}
	case schema.CategoryList:
		if actual, ok := v.([]interface{}); ok {
			for i, item := range actual {
				actual[i] = d.adapt(aType.Elem, item)
			}
			return actual
		}
	case schema.CategoryMap:
		if actual, ok := v.(map[string]interface{}); ok {
			ret := make(map[interface{}]interface{}, len(actual))
			for key, item := range actual {
				ret[d.adapt(aType.Key, key)] = d.adapt(aType.Value, item)
			}
			return ret
		}
	case schema.CategoryUnion:
		if actual, ok := v.(map[string]interface{}); ok {
			number, ok := actual["tag"].(stdjson.Number)
			if !ok {
				return v
			}
			tag, err := strconv.Atoi(number.String())
			if err != nil {
				return v
			}
			payload := actual["value"]
			if tag >= 0 && tag < len(aType.Fields) {
				payload = d.adapt(aType.Fields[tag].Type, payload)
			}
			return value.NewUnion(tag, payload)
		}
	case schema.CategoryPrimitive:
		return d.adaptPrimitive(aType.Kind, v)
	}
	return v
}

func (d *decoder) adaptPrimitive(kind schema.Kind, v interface{}) interface{} {
	var text string
	switch actual := v.(type) {
	case stdjson.Number:
		text = actual.String()
	case string:
		text = actual
	default:
		return v
	}
	switch {
	case kind.IsIntegral():
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return i
		}
	case kind.IsFloating():
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f
		}
	case kind == schema.KindDecimal:
		if dec, err := decimal.NewFromString(text); err == nil {
			return dec
		}
	case kind.IsTemporal():
		if d.layout != "" {
			if ts, err := ftime.ParseInLocation(d.layout, text, time.UTC); err == nil {
				return ts
			}
		}
		if ts, err := ftime.ParseInLocation("", text, time.UTC); err == nil {
			return ts
		}
	case kind == schema.KindBinary:
		return []byte(text)
	case kind.IsText():
		return text
	}
	return v
}

// shape attaches destination field names to converted struct values
func shape(aType *schema.Type, v interface{}) interface{} {
	if v == nil {
		return nil
	}
	switch aType.Category {
	case schema.CategoryStruct:
		values, ok := v.([]interface{})
		if !ok {
			return v
		}
		shaped := make([]interface{}, len(values))
		for i := range values {
			shaped[i] = shape(aType.Fields[i].Type, values[i])
		}
		return json.NewObject(aType.FieldNames(), shaped)
	case schema.CategoryList:
		if values, ok := v.([]interface{}); ok {
			for i := range values {
				values[i] = shape(aType.Elem, values[i])
			}
		}
	case schema.CategoryMap:
		if values, ok := v.(map[interface{}]interface{}); ok {
			for key, item := range values {
				values[key] = shape(aType.Value, item)
			}
		}
	case schema.CategoryPrimitive:
		if ts, ok := v.(time.Time); ok && aType.Kind == schema.KindDate {
			return string(ftime.AppendDate(nil, ts))
		}
	}
	return v
}
