package value

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapVisitorOf(t *testing.T) {
	type key struct{ A int }
	var testCases = []struct {
		description string
		value       interface{}
		isMap       bool
		expect      map[interface{}]interface{}
	}{
		{description: "generic map", value: map[interface{}]interface{}{1: "a"}, isMap: true, expect: map[interface{}]interface{}{1: "a"}},
		{description: "string map", value: map[string]int{"a": 1, "b": 2}, isMap: true, expect: map[interface{}]interface{}{"a": 1, "b": 2}},
		{description: "reflection", value: map[key]uint{{A: 1}: 3}, isMap: true, expect: map[interface{}]interface{}{key{A: 1}: uint(3)}},
		{description: "map pointer", value: &map[int8]bool{1: true}, isMap: true, expect: map[interface{}]interface{}{int8(1): true}},
		{description: "slice", value: []int{1}},
		{description: "nil", value: nil},
	}

	for _, testCase := range testCases {
		visitor, size, ok := MapVisitorOf(testCase.value)
		if !assert.EqualValues(t, testCase.isMap, ok, testCase.description) || !ok {
			continue
		}
		assert.EqualValues(t, len(testCase.expect), size, testCase.description)
		actual := map[interface{}]interface{}{}
		err := visitor(func(k, v interface{}) (bool, error) {
			actual[k] = v
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestMapVisitorOf_Stop(t *testing.T) {
	visitor, _, _ := MapVisitorOf(map[string]string{"a": "1", "b": "2"})
	count := 0
	err := visitor(func(k, v interface{}) (bool, error) {
		count++
		return false, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, 1, count)

	expect := errors.New("stop")
	err = visitor(func(k, v interface{}) (bool, error) {
		return true, expect
	})
	assert.Equal(t, expect, err)
}
