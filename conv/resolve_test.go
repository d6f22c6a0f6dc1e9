package conv

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/viant/schemaconv/schema"
)

func TestResolveConvertedType(t *testing.T) {
	var testCases = []struct {
		description string
		source      string
		destination string
		options     []Option
		expect      string
	}{
		{description: "narrower destination length", source: "varchar(10)", destination: "varchar(5)", expect: "varchar(5)"},
		{description: "narrower source length", source: "varchar(3)", destination: "varchar(5)", expect: "varchar(3)"},
		{description: "char", source: "char(2)", destination: "char(8)", expect: "char(2)"},
		{description: "decimal", source: "decimal(10,2)", destination: "decimal(5,4)", expect: "decimal(5,4)"},
		{description: "decimal wider destination", source: "decimal(4,2)", destination: "decimal(10,2)", expect: "decimal(4,2)"},
		{description: "decimal rounding carry", source: "decimal(5,3)", destination: "decimal(10,2)", expect: "decimal(5,2)"},
		{description: "decimal fraction only", source: "decimal(2,2)", destination: "decimal(6,0)", expect: "decimal(1,0)"},
		{description: "different kinds", source: "string", destination: "varchar(5)", expect: "varchar(5)"},
		{description: "not parameterized", source: "int", destination: "bigint", expect: "bigint"},
		{description: "categories differ", source: "array<varchar(3)>", destination: "varchar(5)", expect: "varchar(5)"},
		{description: "list", source: "array<varchar(10)>", destination: "array<varchar(20)>", expect: "array<varchar(10)>"},
		{description: "map", source: "map<char(2),decimal(8,1)>", destination: "map<char(4),decimal(6,3)>", expect: "map<char(2),decimal(6,3)>"},
		{
			description: "positional struct",
			source:      "struct<a:varchar(3),b:varchar(3)>",
			destination: "struct<b:varchar(5),a:varchar(5),c:varchar(5)>",
			expect:      "struct<b:varchar(3),a:varchar(3),c:varchar(5)>",
		},
		{
			description: "struct by name",
			source:      "struct<a:varchar(3),b:int>",
			destination: "struct<b:varchar(5),a:varchar(5)>",
			options:     []Option{WithStructByName(true)},
			expect:      "struct<b:varchar(5),a:varchar(3)>",
		},
		{
			description: "union",
			source:      "union<a:varchar(3),b:varchar(1)>",
			destination: "union<b:varchar(5),c:varchar(5)>",
			expect:      "union<b:varchar(1),c:varchar(5)>",
		},
	}

	for _, testCase := range testCases {
		source := schema.MustParse(testCase.source)
		destination := schema.MustParse(testCase.destination)
		actual := ResolveConvertedType(source, destination, testCase.options...)
		assert.EqualValues(t, testCase.expect, actual.String(), testCase.description)
		assert.EqualValues(t, testCase.destination, destination.String(), testCase.description)
	}
}

func TestResolveConvertedType_DecimalValues(t *testing.T) {
	var testCases = []struct {
		description string
		source      string
		destination string
		input       []string
	}{
		{description: "wider scale", source: "decimal(10,2)", destination: "decimal(5,4)", input: []string{"1.23", "-9.99", "0.01"}},
		{description: "narrower scale", source: "decimal(5,3)", destination: "decimal(10,2)", input: []string{"99.995", "-99.999", "0.004"}},
		{description: "narrower precision", source: "decimal(8,1)", destination: "decimal(6,3)", input: []string{"999.9", "1234567.8", "0.5"}},
		{description: "fraction only", source: "decimal(2,2)", destination: "decimal(6,0)", input: []string{"0.99", "0.49"}},
	}

	for _, testCase := range testCases {
		source := schema.MustParse(testCase.source)
		destination := schema.MustParse(testCase.destination)
		resolved := ResolveConvertedType(source, destination)
		converter, err := New(source, destination)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		for _, text := range testCase.input {
			actual, err := converter.Convert(decimal.RequireFromString(text))
			if !assert.Nil(t, err, testCase.description) {
				continue
			}
			if actual == nil {
				continue
			}
			dec := actual.(decimal.Decimal)
			assert.LessOrEqual(t, -int(dec.Exponent()), resolved.Scale, testCase.description+": "+text)
			limit := decimal.New(1, int32(resolved.Precision-resolved.Scale))
			assert.True(t, dec.Abs().LessThan(limit), testCase.description+": "+text+" fits "+resolved.String())
		}
	}
}
