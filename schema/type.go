package schema

import (
	"strconv"
	"strings"
)

// Category identifies a type category
type Category int

const (
	CategoryPrimitive Category = iota
	CategoryList
	CategoryMap
	CategoryStruct
	CategoryUnion
)

// String returns category name
func (c Category) String() string {
	switch c {
	case CategoryPrimitive:
		return "primitive"
	case CategoryList:
		return "list"
	case CategoryMap:
		return "map"
	case CategoryStruct:
		return "struct"
	case CategoryUnion:
		return "union"
	}
	return "unknown"
}

type (
	//Type represents an immutable type descriptor
	Type struct {
		Category  Category
		Kind      Kind //primitive kind, only for CategoryPrimitive
		Length    int  //varchar, char max length
		Precision int  //decimal precision
		Scale     int  //decimal scale
		Elem      *Type
		Key       *Type
		Value     *Type
		Fields    []*Field //struct fields or union alternatives
	}

	//Field represents named struct field or union alternative
	Field struct {
		Name string
		Type *Type
	}
)

var (
	Void      = Primitive(KindVoid)
	Boolean   = Primitive(KindBoolean)
	Byte      = Primitive(KindByte)
	Short     = Primitive(KindShort)
	Int       = Primitive(KindInt)
	Long      = Primitive(KindLong)
	Float     = Primitive(KindFloat)
	Double    = Primitive(KindDouble)
	String    = Primitive(KindString)
	Binary    = Primitive(KindBinary)
	Date      = Primitive(KindDate)
	Timestamp = Primitive(KindTimestamp)
)

// Primitive creates unparameterized primitive type
func Primitive(kind Kind) *Type {
	ret := &Type{Category: CategoryPrimitive, Kind: kind}
	if kind == KindDecimal {
		ret.Precision = DefaultDecimalPrecision
	}
	return ret
}

// NewVarchar creates bounded length string type
func NewVarchar(length int) *Type {
	return &Type{Category: CategoryPrimitive, Kind: KindVarchar, Length: length}
}

// NewChar creates fixed length string type
func NewChar(length int) *Type {
	return &Type{Category: CategoryPrimitive, Kind: KindChar, Length: length}
}

// NewDecimal creates decimal type
func NewDecimal(precision, scale int) *Type {
	return &Type{Category: CategoryPrimitive, Kind: KindDecimal, Precision: precision, Scale: scale}
}

// NewList creates list type
func NewList(elem *Type) *Type {
	return &Type{Category: CategoryList, Elem: elem}
}

// NewMap creates map type
func NewMap(key, value *Type) *Type {
	return &Type{Category: CategoryMap, Key: key, Value: value}
}

// NewStruct creates struct type
func NewStruct(fields ...*Field) *Type {
	return &Type{Category: CategoryStruct, Fields: fields}
}

// NewUnion creates union type
func NewUnion(alternatives ...*Field) *Type {
	return &Type{Category: CategoryUnion, Fields: alternatives}
}

// NewField creates a field
func NewField(name string, fieldType *Type) *Field {
	return &Field{Name: name, Type: fieldType}
}

// IsPrimitive returns true if type is primitive
func (t *Type) IsPrimitive() bool {
	return t != nil && t.Category == CategoryPrimitive
}

// IsParameterized returns true for primitive types with length or precision
func (t *Type) IsParameterized() bool {
	return t.IsPrimitive() && t.Kind.IsParameterized()
}

// FieldNames returns struct field or union alternative names
func (t *Type) FieldNames() []string {
	ret := make([]string, len(t.Fields))
	for i, field := range t.Fields {
		ret[i] = field.Name
	}
	return ret
}

// Lookup returns field position or -1
func (t *Type) Lookup(name string) int {
	for i, field := range t.Fields {
		if field.Name == name {
			return i
		}
	}
	return -1
}

// String returns type signature
func (t *Type) String() string {
	builder := &strings.Builder{}
	t.appendSignature(builder)
	return builder.String()
}

func (t *Type) appendSignature(builder *strings.Builder) {
	if t == nil {
		builder.WriteString("<nil>")
		return
	}
	switch t.Category {
	case CategoryPrimitive:
		builder.WriteString(t.Kind.String())
		switch t.Kind {
		case KindVarchar, KindChar:
			builder.WriteByte('(')
			builder.WriteString(strconv.Itoa(t.Length))
			builder.WriteByte(')')
		case KindDecimal:
			builder.WriteByte('(')
			builder.WriteString(strconv.Itoa(t.Precision))
			builder.WriteByte(',')
			builder.WriteString(strconv.Itoa(t.Scale))
			builder.WriteByte(')')
		}
	case CategoryList:
		builder.WriteString("array<")
		t.Elem.appendSignature(builder)
		builder.WriteByte('>')
	case CategoryMap:
		builder.WriteString("map<")
		t.Key.appendSignature(builder)
		builder.WriteByte(',')
		t.Value.appendSignature(builder)
		builder.WriteByte('>')
	case CategoryStruct, CategoryUnion:
		builder.WriteString(t.Category.String())
		builder.WriteByte('<')
		for i, field := range t.Fields {
			if i > 0 {
				builder.WriteByte(',')
			}
			builder.WriteString(field.Name)
			builder.WriteByte(':')
			field.Type.appendSignature(builder)
		}
		builder.WriteByte('>')
	default:
		builder.WriteString("unknown")
	}
}

// Equal returns true if both types are structurally identical, including parameters and field names
func Equal(a, b *Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Category != b.Category {
		return false
	}
	switch a.Category {
	case CategoryPrimitive:
		if a.Kind != b.Kind {
			return false
		}
		switch a.Kind {
		case KindVarchar, KindChar:
			return a.Length == b.Length
		case KindDecimal:
			return a.Precision == b.Precision && a.Scale == b.Scale
		}
		return true
	case CategoryList:
		return Equal(a.Elem, b.Elem)
	case CategoryMap:
		return Equal(a.Key, b.Key) && Equal(a.Value, b.Value)
	case CategoryStruct, CategoryUnion:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, field := range a.Fields {
			other := b.Fields[i]
			if field.Name != other.Name || !Equal(field.Type, other.Type) {
				return false
			}
		}
		return true
	}
	return false
}
