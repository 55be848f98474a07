package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldSelect_Valid(t *testing.T) {
	field, err := parseFieldSelect(`<Configuration><FieldSelect>comment</FieldSelect></Configuration>`)
	require.NoError(t, err)
	assert.Equal(t, "comment", field)
}

func TestParseFieldSelect_AnyRootElementName(t *testing.T) {
	field, err := parseFieldSelect(`<ToolConfig><FieldSelect>comment</FieldSelect></ToolConfig>`)
	require.NoError(t, err)
	assert.Equal(t, "comment", field)
}

func TestParseFieldSelect_MissingElement(t *testing.T) {
	_, err := parseFieldSelect(`<Configuration></Configuration>`)
	assert.ErrorIs(t, err, ErrNoFieldSelected)
}

func TestParseFieldSelect_EmptyElement(t *testing.T) {
	_, err := parseFieldSelect(`<Configuration><FieldSelect></FieldSelect></Configuration>`)
	assert.ErrorIs(t, err, ErrNoFieldSelected)
}

func TestParseFieldSelect_MalformedXML(t *testing.T) {
	_, err := parseFieldSelect(`<Configuration><FieldSelect>`)
	assert.Error(t, err)
}
