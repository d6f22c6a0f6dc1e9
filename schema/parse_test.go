package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		signature   string
		expect      *Type
		canonical   string
	}{
		{
			description: "primitive",
			signature:   "int",
			expect:      Int,
			canonical:   "int",
		},
		{
			description: "alias",
			signature:   "BIGINT",
			expect:      Long,
			canonical:   "bigint",
		},
		{
			description: "varchar",
			signature:   "varchar(10)",
			expect:      NewVarchar(10),
			canonical:   "varchar(10)",
		},
		{
			description: "decimal default precision",
			signature:   "decimal",
			expect:      NewDecimal(10, 0),
			canonical:   "decimal(10,0)",
		},
		{
			description: "decimal with precision and scale",
			signature:   "decimal( 12, 3 )",
			expect:      NewDecimal(12, 3),
			canonical:   "decimal(12,3)",
		},
		{
			description: "nested list",
			signature:   "array<array<string>>",
			expect:      NewList(NewList(String)),
			canonical:   "array<array<string>>",
		},
		{
			description: "map",
			signature:   "map<string, decimal(5,2)>",
			expect:      NewMap(String, NewDecimal(5, 2)),
			canonical:   "map<string,decimal(5,2)>",
		},
		{
			description: "struct",
			signature:   "struct<id:int, name:varchar(20), tags:array<string>, attrs:map<string,int>>",
			expect: NewStruct(
				NewField("id", Int),
				NewField("name", NewVarchar(20)),
				NewField("tags", NewList(String)),
				NewField("attrs", NewMap(String, Int)),
			),
			canonical: "struct<id:int,name:varchar(20),tags:array<string>,attrs:map<string,int>>",
		},
		{
			description: "empty struct",
			signature:   "struct<>",
			expect:      NewStruct(),
			canonical:   "struct<>",
		},
		{
			description: "named union",
			signature:   "union<firstString:string,secondInteger:int>",
			expect:      NewUnion(NewField("firstString", String), NewField("secondInteger", Int)),
			canonical:   "union<firstString:string,secondInteger:int>",
		},
		{
			description: "positional union",
			signature:   "uniontype<int,struct<a:int>>",
			expect:      NewUnion(NewField("0", Int), NewField("1", NewStruct(NewField("a", Int)))),
			canonical:   "union<0:int,1:struct<a:int>>",
		},
	}

	for _, testCase := range testCases {
		actual, err := Parse(testCase.signature)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.True(t, Equal(testCase.expect, actual), testCase.description)
		assert.EqualValues(t, testCase.canonical, actual.String(), testCase.description)
		reparsed, err := Parse(actual.String())
		assert.Nil(t, err, testCase.description)
		assert.True(t, Equal(actual, reparsed), testCase.description)
	}
}

func TestParse_Errors(t *testing.T) {
	var testCases = []struct {
		description string
		signature   string
		expect      error
	}{
		{description: "unknown type", signature: "foo", expect: ErrSyntax},
		{description: "empty", signature: "", expect: ErrSyntax},
		{description: "unterminated", signature: "array<int", expect: ErrSyntax},
		{description: "varchar without length", signature: "varchar", expect: ErrSyntax},
		{description: "int with parameters", signature: "int(3)", expect: ErrSyntax},
		{description: "struct field without name", signature: "struct<int>", expect: ErrSyntax},
		{description: "map with single type", signature: "map<int>", expect: ErrSyntax},
		{description: "trailing input", signature: "int int", expect: ErrSyntax},
		{description: "duplicate struct field", signature: "struct<a:int,a:string>", expect: ErrInvalidType},
		{description: "empty union", signature: "union<>", expect: ErrInvalidType},
		{description: "zero length varchar", signature: "varchar(0)", expect: ErrInvalidType},
		{description: "scale above precision", signature: "decimal(2,3)", expect: ErrInvalidType},
	}
	for _, testCase := range testCases {
		_, err := Parse(testCase.signature)
		if !assert.NotNil(t, err, testCase.description) {
			continue
		}
		assert.True(t, errors.Is(err, testCase.expect), testCase.description+": "+err.Error())
	}
}
