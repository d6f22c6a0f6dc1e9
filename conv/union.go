package conv

import (
	"fmt"

	"github.com/viant/schemaconv/schema"
	"github.com/viant/schemaconv/value"
)

// unionConverter holds a destination alternative converter per source tag, nil for unmatched alternative
type unionConverter struct {
	source       string
	alternatives []Converter
}

func (b *builder) newUnion(source, destination *schema.Type, location string) (Converter, error) {
	ret := &unionConverter{source: source.String(), alternatives: make([]Converter, len(source.Fields))}
	for i, alternative := range source.Fields {
		index := -1
		switch {
		case b.options.UnionByPosition:
			if i < len(destination.Fields) {
				index = i
			}
		default:
			index = destination.Lookup(alternative.Name)
		}
		if index == -1 {
			b.options.Logger.Debug("unmatched union alternative", "alternative", alternative.Name, "location", location)
			continue
		}
		converter, err := b.build(alternative.Type, destination.Fields[index].Type, location+"."+alternative.Name)
		if err != nil {
			return nil, err
		}
		ret.alternatives[i] = converter
	}
	return ret, nil
}

// Convert returns a single element slice holding converted payload, or nil when the alternative is unmatched
func (c *unionConverter) Convert(src interface{}) (interface{}, error) {
	if src == nil {
		return nil, nil
	}
	tag, payload, ok := value.UnionOf(src)
	if !ok {
		if _, isUnion := src.(*value.Union); isUnion {
			return nil, nil
		}
		return nil, unexpectedValue("union", src)
	}
	if tag < 0 || tag >= len(c.alternatives) {
		return nil, &UnknownTagError{Tag: tag, Alternatives: len(c.alternatives), Type: c.source}
	}
	converter := c.alternatives[tag]
	if converter == nil {
		return []interface{}{nil}, nil
	}
	converted, err := converter.Convert(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to convert union alternative %v: %w", tag, err)
	}
	return []interface{}{converted}, nil
}
