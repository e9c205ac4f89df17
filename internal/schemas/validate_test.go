package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["title"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"count": {"type": "integer", "minimum": 0}
	}
}`

func TestValidateString_ValidDocument(t *testing.T) {
	err := ValidateString(testSchema, `{"title": "ok", "count": 2}`)
	assert.NoError(t, err)
}

func TestValidateString_MissingRequiredField(t *testing.T) {
	err := ValidateString(testSchema, `{"count": 2}`)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "title")
}

func TestValidateString_WrongType(t *testing.T) {
	err := ValidateString(testSchema, `{"title": "ok", "count": "three"}`)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateString_MalformedDocument(t *testing.T) {
	err := ValidateString(testSchema, `{not json`)

	var le *SchemaLoadError
	require.ErrorAs(t, err, &le)
	assert.NotNil(t, errors.Unwrap(err))
}
