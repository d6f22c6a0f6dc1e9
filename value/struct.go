package value

import (
	"reflect"
	"strings"
	"time"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

var (
	timeType = reflect.TypeOf(time.Time{})
	readers  = NewSyncMap[reflect.Type, *StructReader]()
)

type (
	//StructReader reads Go struct fields as row columns, it is compiled once per struct type
	StructReader struct {
		rType   reflect.Type
		columns []*column
		index   map[string]int
	}

	column struct {
		name  string
		field *xunsafe.Field
		deref bool
	}
)

// Type returns reader struct type
func (r *StructReader) Type() reflect.Type {
	return r.rType
}

// Len returns number of readable columns
func (r *StructReader) Len() int {
	return len(r.columns)
}

// Names returns column names in declaration order
func (r *StructReader) Names() []string {
	ret := make([]string, len(r.columns))
	for i, col := range r.columns {
		ret[i] = col.name
	}
	return ret
}

// Index returns column position for supplied name or -1, matching is case insensitive,
// and UpperCamel field names also match their lower_underscore form
func (r *StructReader) Index(name string) int {
	if pos, ok := r.index[strings.ToLower(name)]; ok {
		return pos
	}
	return -1
}

// Value returns column value, nil pointers to primitives are returned as nil
func (r *StructReader) Value(ptr unsafe.Pointer, i int) interface{} {
	col := r.columns[i]
	ret := col.field.Value(ptr)
	if !col.deref {
		return ret
	}
	rValue := reflect.ValueOf(ret)
	if rValue.IsNil() {
		return nil
	}
	return rValue.Elem().Interface()
}

func (r *StructReader) register(name string, pos int) {
	key := strings.ToLower(name)
	if _, ok := r.index[key]; ok {
		return
	}
	r.index[key] = pos
}

// ReaderOf returns cached struct reader for supplied struct or struct pointer type
func ReaderOf(rType reflect.Type) *StructReader {
	structType := ensureStruct(rType)
	if structType == nil {
		return nil
	}
	return readers.GetOrCreate(structType, func() *StructReader {
		return newStructReader(structType)
	})
}

// StructOf returns a reader with a struct pointer for supplied struct or struct pointer value,
// returned pointer is nil for nil struct pointer
func StructOf(v interface{}) (*StructReader, unsafe.Pointer, bool) {
	if v == nil {
		return nil, nil, false
	}
	rType := reflect.TypeOf(v)
	switch rType.Kind() {
	case reflect.Ptr:
		reader := ReaderOf(rType)
		if reader == nil || rType.Elem().Kind() != reflect.Struct {
			return nil, nil, false
		}
		return reader, xunsafe.AsPointer(v), true
	case reflect.Struct:
		reader := ReaderOf(rType)
		if reader == nil {
			return nil, nil, false
		}
		rPointer := reflect.New(rType)
		rPointer.Elem().Set(reflect.ValueOf(v))
		return reader, xunsafe.AsPointer(rPointer.Interface()), true
	}
	return nil, nil, false
}

func newStructReader(rType reflect.Type) *StructReader {
	ret := &StructReader{rType: rType, index: make(map[string]int, rType.NumField())}
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, err := format.Parse(field.Tag); err == nil && tag != nil {
			if tag.Ignore {
				continue
			}
			if tag.Name != "" {
				name = tag.Name
			}
		}
		pos := len(ret.columns)
		ret.columns = append(ret.columns, &column{
			name:  name,
			field: xunsafe.NewField(field),
			deref: field.Type.Kind() == reflect.Ptr && (field.Type.Elem().Kind() != reflect.Struct || field.Type.Elem() == timeType),
		})
		ret.register(name, pos)
		if name == field.Name {
			ret.register(underscoreName(name), pos)
		}
	}
	return ret
}

func underscoreName(name string) string {
	caseFormat := text.DetectCaseFormat(name)
	if !caseFormat.IsDefined() {
		caseFormat = text.CaseFormatUpperCamel
	}
	return caseFormat.Format(name, text.CaseFormatLowerUnderscore)
}

func ensureStruct(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Struct:
		if t == timeType {
			return nil
		}
		return t
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	}
	return nil
}
