package value

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

var slices = NewSyncMap[reflect.Type, *xunsafe.Slice]()

// List provides indexed read access to a list value
type List struct {
	items  []interface{}
	xSlice *xunsafe.Slice
	ptr    unsafe.Pointer
	rValue reflect.Value
	size   int
}

// Len returns list size
func (l List) Len() int {
	return l.size
}

// At returns list item at supplied position
func (l List) At(i int) interface{} {
	if l.items != nil {
		return l.items[i]
	}
	if l.xSlice != nil {
		return l.xSlice.ValueAt(l.ptr, i)
	}
	return l.rValue.Index(i).Interface()
}

// ListOf returns list accessor for []interface{}, any Go slice or array
func ListOf(v interface{}) (List, bool) {
	switch actual := v.(type) {
	case nil:
		return List{}, false
	case []interface{}:
		return List{items: actual, size: len(actual)}, true
	}
	rType := reflect.TypeOf(v)
	switch rType.Kind() {
	case reflect.Slice:
		xSlice := slices.GetOrCreate(rType, func() *xunsafe.Slice {
			return xunsafe.NewSlice(rType)
		})
		ptr := xunsafe.AsPointer(v)
		return List{xSlice: xSlice, ptr: ptr, size: xSlice.Len(ptr)}, true
	case reflect.Array:
		rValue := reflect.ValueOf(v)
		return List{rValue: rValue, size: rValue.Len()}, true
	case reflect.Ptr:
		if elem := rType.Elem().Kind(); elem == reflect.Slice || elem == reflect.Array {
			rValue := reflect.ValueOf(v)
			if rValue.IsNil() {
				return List{}, false
			}
			return ListOf(rValue.Elem().Interface())
		}
	}
	return List{}, false
}
