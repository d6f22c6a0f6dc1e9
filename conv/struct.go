package conv

import (
	"fmt"

	"github.com/viant/schemaconv/schema"
)

type (
	structConverter struct {
		source *fields
		fields []*structField
	}

	// structField binds destination field to a source field position, index is -1 for unmatched field
	structField struct {
		name      string
		index     int
		converter Converter
	}
)

func (b *builder) newStruct(source, destination *schema.Type, location string) (Converter, error) {
	ret := &structConverter{source: newFields(source), fields: make([]*structField, len(destination.Fields))}
	for i, field := range destination.Fields {
		index := -1
		switch {
		case b.options.StructByName:
			index = source.Lookup(field.Name)
		case i < len(source.Fields):
			index = i
		}
		ret.fields[i] = &structField{name: field.Name, index: index}
		if index == -1 {
			continue
		}
		converter, err := b.build(source.Fields[index].Type, field.Type, location+"."+field.Name)
		if err != nil {
			return nil, err
		}
		ret.fields[i].converter = converter
	}
	return ret, nil
}

// Convert returns destination field values in destination order, unmatched fields are nil
func (c *structConverter) Convert(src interface{}) (interface{}, error) {
	if src == nil {
		return nil, nil
	}
	row, ok, err := c.source.rowOf(src)
	if err != nil || !ok {
		return nil, err
	}
	ret := make([]interface{}, len(c.fields))
	for i, field := range c.fields {
		if field.index == -1 {
			continue
		}
		if ret[i], err = field.converter.Convert(row.value(field.index)); err != nil {
			return nil, fmt.Errorf("failed to convert field %v: %w", field.name, err)
		}
	}
	return ret, nil
}
