package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/schemaconv/conv"
	"github.com/viant/schemaconv/schema"
)

func TestLoad(t *testing.T) {
	var testCases = []struct {
		description string
		file        string
		content     string
		env         map[string]string
		expect      Config
	}{
		{
			description: "defaults",
			expect:      Config{Location: "UTC", Log: Log{Level: "info", Format: "text"}},
		},
		{
			description: "yaml file",
			file:        "config.yaml",
			content:     "struct_by_name: true\nworkers: 4\nlog:\n  level: debug\n",
			expect:      Config{StructByName: true, Workers: 4, Location: "UTC", Log: Log{Level: "debug", Format: "text"}},
		},
		{
			description: "json file with env override",
			file:        "config.json",
			content:     `{"date_format":"YYYY/MM/DD","normalize":true}`,
			env:         map[string]string{"TESTCONV_NORMALIZE": "false", "TESTCONV_UNION_BY_POSITION": "true", "TESTCONV_LOG_FORMAT": "json"},
			expect:      Config{DateFormat: "YYYY/MM/DD", UnionByPosition: true, Location: "UTC", Log: Log{Level: "info", Format: "json"}},
		},
	}

	for _, testCase := range testCases {
		for key, value := range testCase.env {
			t.Setenv(key, value)
		}
		path := ""
		if testCase.file != "" {
			path = filepath.Join(t.TempDir(), testCase.file)
			require.Nil(t, os.WriteFile(path, []byte(testCase.content), 0o644), testCase.description)
		}
		actual, err := Load(path, "TESTCONV")
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, *actual, testCase.description)
		for key := range testCase.env {
			_ = os.Unsetenv(key)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.NotNil(t, err)
}

func TestConfig_ConvOptions(t *testing.T) {
	cfg := &Config{StructByName: true, Location: "UTC"}
	opts, err := cfg.ConvOptions(nil)
	require.Nil(t, err)
	converter, err := conv.New(schema.MustParse("struct<a:int,b:string>"), schema.MustParse("struct<b:string>"), opts...)
	require.Nil(t, err)
	actual, err := converter.Convert([]interface{}{int32(1), "x"})
	assert.Nil(t, err)
	assert.EqualValues(t, []interface{}{"x"}, actual)

	_, err = (&Config{Location: "Nowhere/Unknown"}).ConvOptions(nil)
	assert.NotNil(t, err)
}

func TestLog_Logger(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := (&Log{Level: "warn", Format: "json"}).Logger(buffer)
	logger.Info("skipped")
	logger.Warn("kept", "key", "value")
	output := buffer.String()
	assert.False(t, strings.Contains(output, "skipped"))
	assert.True(t, strings.Contains(output, `"msg":"kept"`))
}
