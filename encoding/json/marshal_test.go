package json

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/viant/schemaconv/value"
)

func TestMarshal(t *testing.T) {
	type row struct {
		Id   int
		Name string `format:"name=name"`
	}
	var testCases = []struct {
		description string
		value       interface{}
		options     []Option
		expect      string
	}{
		{description: "nil", value: nil, expect: `null`},
		{description: "string", value: "a\"b", expect: `"a\"b"`},
		{description: "int8", value: int8(-3), expect: `-3`},
		{description: "bool", value: true, expect: `true`},
		{description: "decimal", value: decimal.RequireFromString("100.001"), expect: `100.001`},
		{description: "binary", value: []byte("abc"), expect: `"abc"`},
		{description: "nan", value: math.NaN(), expect: `"NaN"`},
		{description: "list", value: []interface{}{int32(1), nil, "x"}, expect: `[1,null,"x"]`},
		{description: "typed slice", value: []int64{1, 2}, expect: `[1,2]`},
		{
			description: "object",
			value:       NewObject([]string{"id", "tags"}, []interface{}{int32(1), []interface{}{"a"}}),
			expect:      `{"id":1,"tags":["a"]}`,
		},
		{description: "map", value: map[interface{}]interface{}{int32(1): "a"}, expect: `{"1":"a"}`},
		{description: "union", value: value.NewUnion(1, "a"), expect: `{"1":"a"}`},
		{description: "struct", value: &row{Id: 3, Name: "z"}, expect: `{"Id":3,"name":"z"}`},
		{
			description: "time",
			value:       time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
			expect:      `"2024-05-06 07:08:09"`,
		},
		{
			description: "time layout",
			value:       []interface{}{time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)},
			options:     []Option{WithTimeLayout(time.RFC3339)},
			expect:      `["2024-05-06T07:08:09Z"]`,
		},
	}

	for _, testCase := range testCases {
		actual, err := Marshal(testCase.value, testCase.options...)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, string(actual), testCase.description)
	}
}

func TestEncoder_Encode(t *testing.T) {
	buffer := new(bytes.Buffer)
	encoder := NewEncoder(buffer)
	assert.Nil(t, encoder.Encode([]interface{}{int32(1)}))
	assert.Nil(t, encoder.Encode(nil))
	assert.EqualValues(t, "[1]\nnull\n", buffer.String())
}
