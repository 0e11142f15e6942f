package interpret

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/team-generator/internal/llm"
)

type scorePayload struct {
	Score    int    `json:"score"`
	Analysis string `json:"analysis"`
}

const scoreSchema = `{
	"type": "object",
	"required": ["score", "analysis"],
	"properties": {
		"score": {"type": "integer"},
		"analysis": {"type": "string"}
	}
}`

func TestDecode(t *testing.T) {
	var out scorePayload
	err := Decode(llm.Completion{
		Text: `{"score": 85, "analysis": "equilibrado"}`,
		Stop: llm.StopNormal,
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, 85, out.Score)
	assert.Equal(t, "equilibrado", out.Analysis)
}

func TestDecode_FencedAndBareAgree(t *testing.T) {
	payload := `{"score": 70, "analysis": "ok"}`

	var bare, fenced scorePayload
	require.NoError(t, Decode(llm.Completion{Text: payload, Stop: llm.StopNormal}, &bare))
	require.NoError(t, Decode(llm.Completion{
		Text: "```json\n" + payload + "\n```",
		Stop: llm.StopNormal,
	}, &fenced))
	assert.Equal(t, bare, fenced)
}

func TestDecode_StopSignals(t *testing.T) {
	tests := []struct {
		name       string
		completion llm.Completion
		check      func(t *testing.T, err error)
	}{
		{
			name: "refusal wins over parseable content",
			completion: llm.Completion{
				Text: `{"score": 85, "analysis": "ok"}`,
				Stop: llm.StopRefusal,
			},
			check: func(t *testing.T, err error) {
				var refusal *RefusalError
				assert.True(t, errors.As(err, &refusal))
			},
		},
		{
			name:       "context exceeded",
			completion: llm.Completion{Stop: llm.StopContextExceeded},
			check: func(t *testing.T, err error) {
				var exceeded *ContextExceededError
				assert.True(t, errors.As(err, &exceeded))
			},
		},
		{
			name: "truncated output",
			completion: llm.Completion{
				Text: `{"score": 85, "anal`,
				Stop: llm.StopMaxTokens,
			},
			check: func(t *testing.T, err error) {
				var truncated *TruncatedError
				assert.True(t, errors.As(err, &truncated))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out scorePayload
			err := Decode(tt.completion, &out)
			require.Error(t, err)
			tt.check(t, err)
			assert.Zero(t, out)
		})
	}
}

func TestDecode_ParseFailures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty response", ""},
		{"fence with nothing inside", "```json\n```"},
		{"cut-off json", `{"score": 85, "anal`},
		{"prose instead of json", "Lo siento, no puedo analizar esto."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out scorePayload
			err := Decode(llm.Completion{Text: tt.text, Stop: llm.StopNormal}, &out)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
		})
	}
}

func TestDecodeWithSchema(t *testing.T) {
	var out scorePayload
	err := DecodeWithSchema(llm.Completion{
		Text: "```json\n{\"score\": 92, \"analysis\": \"fuerte\"}\n```",
		Stop: llm.StopNormal,
	}, scoreSchema, &out)
	require.NoError(t, err)
	assert.Equal(t, 92, out.Score)
}

func TestDecodeWithSchema_ShapeMismatch(t *testing.T) {
	// Valid JSON that is missing a required key fails the shape check.
	var out scorePayload
	err := DecodeWithSchema(llm.Completion{
		Text: `{"score": 92}`,
		Stop: llm.StopNormal,
	}, scoreSchema, &out)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.NotNil(t, parseErr.Cause)
}

func TestDecodeWithSchema_RefusalSkipsValidation(t *testing.T) {
	var out scorePayload
	err := DecodeWithSchema(llm.Completion{Stop: llm.StopRefusal}, scoreSchema, &out)
	var refusal *RefusalError
	assert.True(t, errors.As(err, &refusal))
}
