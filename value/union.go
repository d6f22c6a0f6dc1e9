package value

// Union represents a tagged variant value, Tag selects an alternative by its ordinal
type Union struct {
	Tag   int
	Value interface{}
}

// NewUnion creates a union value
func NewUnion(tag int, value interface{}) *Union {
	return &Union{Tag: tag, Value: value}
}

// UnionOf returns union tag and payload, ok is false for non union value or nil pointer
func UnionOf(v interface{}) (tag int, payload interface{}, ok bool) {
	switch actual := v.(type) {
	case Union:
		return actual.Tag, actual.Value, true
	case *Union:
		if actual == nil {
			return 0, nil, false
		}
		return actual.Tag, actual.Value, true
	}
	return 0, nil, false
}
