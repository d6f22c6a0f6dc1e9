package conv

import (
	"fmt"

	"github.com/viant/schemaconv/value"
)

type listConverter struct {
	elem Converter
}

// Convert converts list elements, empty list converts to empty list
func (c *listConverter) Convert(src interface{}) (interface{}, error) {
	if src == nil {
		return nil, nil
	}
	list, ok := value.ListOf(src)
	if !ok {
		return nil, unexpectedValue("list", src)
	}
	ret := make([]interface{}, list.Len())
	var err error
	for i := range ret {
		if ret[i], err = c.elem.Convert(list.At(i)); err != nil {
			return nil, fmt.Errorf("failed to convert element %v: %w", i, err)
		}
	}
	return ret, nil
}
