package value

import "reflect"

// Visitor represents a key, element iterator, iteration stops when callback returns false or an error
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error

// TypedMapVisitorOf creates typed map visitor
func TypedMapVisitorOf[K comparable, E any](m map[K]E) Visitor[any, any] {
	return func(visit func(key any, element any) (bool, error)) error {
		for k, v := range m {
			if next, err := visit(k, v); !next || err != nil {
				return err
			}
		}
		return nil
	}
}

// MapVisitorOf returns visitor with map size for supplied map value
func MapVisitorOf(v interface{}) (Visitor[any, any], int, bool) {
	switch actual := v.(type) {
	case nil:
		return nil, 0, false
	case map[interface{}]interface{}:
		return TypedMapVisitorOf(actual), len(actual), true
	case map[string]interface{}:
		return TypedMapVisitorOf(actual), len(actual), true
	case map[string]string:
		return TypedMapVisitorOf(actual), len(actual), true
	case map[string]int:
		return TypedMapVisitorOf(actual), len(actual), true
	case map[string]int64:
		return TypedMapVisitorOf(actual), len(actual), true
	case map[string]float64:
		return TypedMapVisitorOf(actual), len(actual), true
	case map[string]bool:
		return TypedMapVisitorOf(actual), len(actual), true
	case map[int]interface{}:
		return TypedMapVisitorOf(actual), len(actual), true
	case map[int]string:
		return TypedMapVisitorOf(actual), len(actual), true
	}
	rValue := reflect.ValueOf(v)
	if rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return nil, 0, false
		}
		rValue = rValue.Elem()
	}
	if rValue.Kind() != reflect.Map {
		return nil, 0, false
	}
	return reflectMapVisitor(rValue), rValue.Len(), true
}

func reflectMapVisitor(rValue reflect.Value) Visitor[any, any] {
	return func(visit func(key any, element any) (bool, error)) error {
		iter := rValue.MapRange()
		for iter.Next() {
			if next, err := visit(iter.Key().Interface(), iter.Value().Interface()); !next || err != nil {
				return err
			}
		}
		return nil
	}
}
