package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["compatibility_score", "justification"],
	"properties": {
		"compatibility_score": {"type": "integer", "minimum": 0, "maximum": 100},
		"justification": {"type": "string"}
	}
}`

func TestValidateJSONString(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"compatibility_score": 85, "justification": "ok"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"missing required key", `{"compatibility_score": 85}`},
		{"wrong type", `{"compatibility_score": "alto", "justification": "ok"}`},
		{"score out of range", `{"compatibility_score": 140, "justification": "ok"}`},
		{"not an object", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONString(testSchema, tt.document)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"compatibility_score": `)
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidationError_Message(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"compatibility_score": 85}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "justification")
}
