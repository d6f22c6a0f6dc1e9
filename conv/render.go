package conv

import (
	"fmt"
	"time"

	"github.com/viant/schemaconv/encoding/json"
	ftime "github.com/viant/schemaconv/format/time"
	"github.com/viant/schemaconv/schema"
	"github.com/viant/schemaconv/value"
)

// renderer renders nested values as JSON text using source type field names
type renderer struct {
	source *schema.Type
	fields map[*schema.Type]*fields
}

func (b *builder) newRendered(source, destination *schema.Type) (Converter, error) {
	r := &renderer{source: source, fields: map[*schema.Type]*fields{}}
	p := primitive{read: r.read}
	return b.newPrimitiveWriter(p, destination, "")
}

func (r *renderer) read(v interface{}, s *scalar) bool {
	node, err := r.node(r.source, v)
	if err != nil || node == nil {
		return false
	}
	data, err := json.Marshal(node)
	if err != nil {
		return false
	}
	s.kind = scalarBinary
	s.raw = data
	return true
}

func (r *renderer) node(aType *schema.Type, v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	switch aType.Category {
	case schema.CategoryStruct:
		structFields, ok := r.fields[aType]
		if !ok {
			structFields = newFields(aType)
			r.fields[aType] = structFields
		}
		row, ok, err := structFields.rowOf(v)
		if err != nil || !ok {
			return nil, err
		}
		values := make([]interface{}, len(aType.Fields))
		for i, field := range aType.Fields {
			if values[i], err = r.node(field.Type, row.value(i)); err != nil {
				return nil, err
			}
		}
		return json.NewObject(structFields.names, values), nil
	case schema.CategoryList:
		list, ok := value.ListOf(v)
		if !ok {
			return nil, unexpectedValue("list", v)
		}
		ret := make([]interface{}, list.Len())
		var err error
		for i := range ret {
			if ret[i], err = r.node(aType.Elem, list.At(i)); err != nil {
				return nil, err
			}
		}
		return ret, nil
	case schema.CategoryMap:
		visitor, size, ok := value.MapVisitorOf(v)
		if !ok {
			return nil, unexpectedValue("map", v)
		}
		keys := make([]string, 0, size)
		values := make([]interface{}, 0, size)
		err := visitor(func(key, element interface{}) (bool, error) {
			keyNode, err := r.node(aType.Key, key)
			if err != nil {
				return false, err
			}
			text, err := keyText(keyNode)
			if err != nil {
				return false, err
			}
			elementNode, err := r.node(aType.Value, element)
			if err != nil {
				return false, err
			}
			keys = append(keys, text)
			values = append(values, elementNode)
			return true, nil
		})
		if err != nil {
			return nil, err
		}
		return json.NewObject(keys, values), nil
	case schema.CategoryUnion:
		tag, payload, ok := value.UnionOf(v)
		if !ok {
			return nil, unexpectedValue("union", v)
		}
		if tag < 0 || tag >= len(aType.Fields) {
			return nil, &UnknownTagError{Tag: tag, Alternatives: len(aType.Fields), Type: aType.String()}
		}
		payloadNode, err := r.node(aType.Fields[tag].Type, payload)
		if err != nil {
			return nil, err
		}
		return value.Union{Tag: tag, Value: payloadNode}, nil
	}
	if ts, ok := v.(time.Time); ok && aType.Kind == schema.KindDate {
		return string(ftime.AppendDate(nil, ts)), nil
	}
	return v, nil
}

func keyText(key interface{}) (string, error) {
	switch actual := key.(type) {
	case string:
		return actual, nil
	case []byte:
		return string(actual), nil
	case nil:
		return "null", nil
	}
	data, err := json.Marshal(key)
	if err != nil {
		return "", fmt.Errorf("failed to render key: %w", err)
	}
	return string(data), nil
}
