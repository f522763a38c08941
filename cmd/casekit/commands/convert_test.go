package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default camel", []string{"hello world"}, "helloWorld\n"},
		{"kebab short flag", []string{"-t", "kebab", "camelCaseExample"}, "camel-case-example\n"},
		{"dot alias", []string{"--to", "dot.case", "my-variable_name"}, "my.variable.name\n"},
		{"pascal", []string{"--to", "pascal", "hello world"}, "HelloWorld\n"},
		{"snake", []string{"--to", "snake", "This is a Test!@#"}, "this_is_a_test\n"},
		{"multiple inputs", []string{"-t", "kebab", "Hello World", "item2Name"}, "hello-world\nitem2-name\n"},
		{"punctuation only", []string{"-t", "kebab", "!@#"}, "\n"},
		{"fold accents", []string{"-t", "kebab", "--fold-accents", "Crème Brûlée"}, "creme-brulee\n"},
		{"accents dropped", []string{"-t", "kebab", "Crème Brûlée"}, "crme-brle\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			output := captureStdout(t, func() {
				err = HandleConvert(tt.args)
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, output)
		})
	}
}

func TestHandleConvert_Stdin(t *testing.T) {
	withStdin(t, "hello world\n\nThis is a Test!@#\n")

	var err error
	output := captureStdout(t, func() {
		err = HandleConvert([]string{"-t", "dot", "-"})
	})
	require.NoError(t, err)
	assert.Equal(t, "hello.world\n\nthis.is.a.test\n", output)
}

func TestHandleConvert_JSON(t *testing.T) {
	var err error
	output := captureStdout(t, func() {
		err = HandleConvert([]string{"--to", "kebab", "--format", "json", "PascalCaseExample"})
	})
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "PascalCaseExample", results[0]["input"])
	assert.Equal(t, "kebab", results[0]["convention"])
	assert.Equal(t, "pascal-case-example", results[0]["output"])
	assert.Equal(t, []any{"pascal", "case", "example"}, results[0]["tokens"])
}

func TestHandleConvert_YAML(t *testing.T) {
	var err error
	output := captureStdout(t, func() {
		err = HandleConvert([]string{"--format", "yaml", "hello world"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "output: helloWorld")
	assert.Contains(t, output, "convention: camel")
}

func TestHandleConvert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"no input", []string{"-t", "kebab"}, "requires at least one text argument"},
		{"unknown convention", []string{"-t", "title", "hello"}, "unknown convention"},
		{"invalid format", []string{"--format", "xml", "hello"}, "invalid format"},
		{"unknown flag", []string{"--bogus", "hello"}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandleConvert(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestHandleConvert_Help(t *testing.T) {
	assert.NoError(t, HandleConvert([]string{"--help"}))
}
