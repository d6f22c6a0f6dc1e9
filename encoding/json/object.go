package json

// Object represents JSON object with ordered keys
type Object struct {
	Keys   []string
	Values []interface{}
}

// NewObject creates an object
func NewObject(keys []string, values []interface{}) *Object {
	return &Object{Keys: keys, Values: values}
}
