package conv

import (
	"unsafe"

	"github.com/viant/schemaconv/schema"
	"github.com/viant/schemaconv/value"
)

type (
	// fields reads struct values by source field position from any supported struct representation
	fields struct {
		names   []string
		columns map[*value.StructReader][]int
	}

	row struct {
		names   []string
		items   []interface{}
		keyed   map[string]interface{}
		reader  *value.StructReader
		ptr     unsafe.Pointer
		columns []int
		list    value.List
		isList  bool
	}
)

func newFields(source *schema.Type) *fields {
	return &fields{names: source.FieldNames()}
}

// rowOf returns a row for supplied struct value, ok is false for nil struct pointer
func (f *fields) rowOf(src interface{}) (row, bool, error) {
	switch actual := src.(type) {
	case []interface{}:
		return row{items: actual}, true, nil
	case map[string]interface{}:
		return row{names: f.names, keyed: actual}, true, nil
	}
	if reader, ptr, ok := value.StructOf(src); ok {
		if ptr == nil {
			return row{}, false, nil
		}
		return row{reader: reader, ptr: ptr, columns: f.columnsOf(reader)}, true, nil
	}
	if list, ok := value.ListOf(src); ok {
		return row{list: list, isList: true}, true, nil
	}
	return row{}, false, unexpectedValue("struct", src)
}

// columnsOf maps source field positions to Go struct columns
func (f *fields) columnsOf(reader *value.StructReader) []int {
	if ret, ok := f.columns[reader]; ok {
		return ret
	}
	ret := make([]int, len(f.names))
	for i, name := range f.names {
		ret[i] = reader.Index(name)
	}
	if f.columns == nil {
		f.columns = map[*value.StructReader][]int{}
	}
	f.columns[reader] = ret
	return ret
}

// value returns source field value at supplied position
func (r *row) value(index int) interface{} {
	switch {
	case r.items != nil:
		if index < len(r.items) {
			return r.items[index]
		}
	case r.keyed != nil:
		return r.keyed[r.names[index]]
	case r.reader != nil:
		if column := r.columns[index]; column != -1 {
			return r.reader.Value(r.ptr, column)
		}
	case r.isList:
		if index < r.list.Len() {
			return r.list.At(index)
		}
	}
	return nil
}
