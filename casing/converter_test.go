package casing

import (
	"testing"

	"github.com/erraggy/casekit/caseerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	c := New()
	assert.Equal(t, Camel, c.Convention)

	result, err := c.Convert("my-variable_name")
	require.NoError(t, err)
	assert.Equal(t, "my-variable_name", result.Input)
	assert.Equal(t, []string{"my", "variable", "name"}, result.Tokens)
	assert.Equal(t, Camel, result.Convention)
	assert.Equal(t, "myVariableName", result.Output)

	_, err = c.Convert(3.14)
	assert.ErrorIs(t, err, caseerrors.ErrInvalidType)
}

func TestConverter_FoldAccents(t *testing.T) {
	c := &Converter{Convention: Kebab, FoldAccents: true}
	result, err := c.ConvertString("Crème Brûlée")
	require.NoError(t, err)
	assert.Equal(t, "creme-brulee", result.Output)

	c.FoldAccents = false
	result, err = c.ConvertString("Crème Brûlée")
	require.NoError(t, err)
	assert.Equal(t, "crme-brle", result.Output)
}

func TestConverter_ConvertTokens(t *testing.T) {
	c := &Converter{Convention: Dot}
	result, err := c.ConvertTokens([]string{"userId", "", "Created At!"})
	require.NoError(t, err)
	assert.Empty(t, result.Input)
	assert.Equal(t, []string{"user", "id", "created", "at"}, result.Tokens)
	assert.Equal(t, "user.id.created.at", result.Output)
}

func TestConverter_ConvertAll(t *testing.T) {
	c := &Converter{Convention: Snake}
	results, err := c.ConvertAll([]string{"HelloWorld", " ", "api-v2"})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "hello_world", results[0].Output)
	assert.Empty(t, results[1].Output)
	assert.Equal(t, "api_v2", results[2].Output)
}

func TestConverter_InvalidConvention(t *testing.T) {
	c := &Converter{Convention: Convention(12)}
	_, err := c.ConvertString("hello")
	assert.ErrorIs(t, err, caseerrors.ErrConfig)

	_, err = c.ConvertAll([]string{"hello"})
	assert.ErrorIs(t, err, caseerrors.ErrConfig)
}
