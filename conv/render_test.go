package conv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/schemaconv/schema"
	"github.com/viant/schemaconv/value"
)

func TestRender_Convert(t *testing.T) {
	var testCases = []struct {
		description string
		source      *schema.Type
		destination *schema.Type
		input       interface{}
		expect      interface{}
	}{
		{
			description: "struct",
			source:      schema.MustParse("struct<id:int,tags:array<string>>"),
			destination: schema.String,
			input:       []interface{}{int32(1), []interface{}{"a", nil}},
			expect:      `{"id":1,"tags":["a",null]}`,
		},
		{
			description: "keyed struct",
			source:      schema.MustParse("struct<id:int,price:decimal(5,2)>"),
			destination: schema.String,
			input:       map[string]interface{}{"id": int32(2)},
			expect:      `{"id":2,"price":null}`,
		},
		{
			description: "map",
			source:      schema.MustParse("map<int,string>"),
			destination: schema.String,
			input:       map[interface{}]interface{}{int32(1): "a"},
			expect:      `{"1":"a"}`,
		},
		{
			description: "map with null key",
			source:      schema.MustParse("map<int,string>"),
			destination: schema.String,
			input:       map[interface{}]interface{}{nil: "a"},
			expect:      `{"null":"a"}`,
		},
		{
			description: "union",
			source:      schema.MustParse("union<a:int,b:string>"),
			destination: schema.String,
			input:       value.NewUnion(1, "x"),
			expect:      `{"1":"x"}`,
		},
		{
			description: "dates",
			source:      schema.MustParse("array<date>"),
			destination: schema.String,
			input:       []interface{}{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
			expect:      `["2024-01-02"]`,
		},
		{
			description: "varchar",
			source:      schema.MustParse("array<int>"),
			destination: schema.NewVarchar(4),
			input:       []int{10, 20, 30},
			expect:      `[10,`,
		},
		{
			description: "unexpected value",
			source:      schema.MustParse("array<int>"),
			destination: schema.String,
			input:       "abc",
			expect:      nil,
		},
		{
			description: "nested to number",
			source:      schema.MustParse("array<int>"),
			destination: schema.Int,
			input:       []interface{}{int32(1)},
			expect:      nil,
		},
	}

	for _, testCase := range testCases {
		converter, err := New(testCase.source, testCase.destination)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		actual, err := converter.Convert(testCase.input)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
