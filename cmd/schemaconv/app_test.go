package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCommand(t *testing.T) {
	var testCases = []struct {
		description string
		args        []string
		input       string
		config      string
		expect      string
		expectErr   bool
	}{
		{
			description: "struct by name",
			args:        []string{"convert", "--source", "struct<id:int,name:string,score:double>", "--destination", "struct<name:varchar(3),id:bigint,extra:boolean>", "--by-name"},
			input:       "{\"id\":1,\"name\":\"alpha\",\"score\":1.5}\n[2,\"beta\",2.5]\nnull\n",
			expect:      "{\"name\":\"alp\",\"id\":1,\"extra\":null}\n{\"name\":\"bet\",\"id\":2,\"extra\":null}\nnull\n",
		},
		{
			description: "positional struct",
			args:        []string{"convert", "--source", "struct<id:int,name:string>", "--destination", "struct<key:string,value:string>"},
			input:       "[7,\"seven\"]\n",
			expect:      "{\"key\":\"7\",\"value\":\"seven\"}\n",
		},
		{
			description: "by name from config",
			args:        []string{"convert", "--source", "struct<a:int,b:int>", "--destination", "struct<b:string>"},
			config:      "struct_by_name: true\n",
			input:       "[1,2]\n",
			expect:      "{\"b\":\"2\"}\n",
		},
		{
			description: "union",
			args:        []string{"convert", "--source", "union<firstString:string,secondInteger:string>", "--destination", "union<firstString:string,secondInteger:int>"},
			input:       "{\"tag\":1,\"value\":\"1\"}\n{\"tag\":0,\"value\":\"x\"}\n",
			expect:      "[1]\n[\"x\"]\n",
		},
		{
			description: "decimal and dates",
			args:        []string{"convert", "--source", "array<string>", "--destination", "array<decimal(5,1)>"},
			input:       "[\"1.25\",\"abc\",null]\n",
			expect:      "[1.3,null,null]\n",
		},
		{
			description: "date",
			args:        []string{"convert", "--source", "struct<at:timestamp>", "--destination", "struct<at:date>"},
			input:       "[\"2024-03-05 10:11:12\"]\n",
			expect:      "{\"at\":\"2024-03-05\"}\n",
		},
		{
			description: "map",
			args:        []string{"convert", "--source", "map<string,int>", "--destination", "map<int,bigint>"},
			input:       "{\"5\":10}\n",
			expect:      "{\"5\":10}\n",
		},
		{
			description: "unknown tag",
			args:        []string{"convert", "--source", "union<a:int>", "--destination", "union<a:bigint>"},
			input:       "{\"tag\":3,\"value\":1}\n",
			expectErr:   true,
		},
		{
			description: "invalid signature",
			args:        []string{"convert", "--source", "struct<a:int,a:int>", "--destination", "int"},
			expectErr:   true,
		},
		{
			description: "malformed input",
			args:        []string{"convert", "--source", "int", "--destination", "string"},
			input:       "{",
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		args := testCase.args
		if testCase.config != "" {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.Nil(t, os.WriteFile(path, []byte(testCase.config), 0o644), testCase.description)
			args = append(args, "--config", path)
		}
		output := new(bytes.Buffer)
		cmd := newRootCommand()
		cmd.SetIn(strings.NewReader(testCase.input))
		cmd.SetOut(output)
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs(args)
		err := cmd.Execute()
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, output.String(), testCase.description)
	}
}

func TestResolveCommand(t *testing.T) {
	var testCases = []struct {
		description string
		args        []string
		expect      string
	}{
		{
			description: "varchar narrowing",
			args:        []string{"resolve", "--source", "varchar(10)", "--destination", "varchar(5)"},
			expect:      "varchar(5)\n",
		},
		{
			description: "nested by name",
			args:        []string{"resolve", "--source", "struct<a:varchar(2)>", "--destination", "struct<b:int,a:varchar(9)>", "--by-name"},
			expect:      "struct<b:int,a:varchar(2)>\n",
		},
	}
	for _, testCase := range testCases {
		output := new(bytes.Buffer)
		cmd := newRootCommand()
		cmd.SetOut(output)
		cmd.SetArgs(testCase.args)
		if !assert.Nil(t, cmd.Execute(), testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, output.String(), testCase.description)
	}
}
