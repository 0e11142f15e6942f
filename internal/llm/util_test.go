package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare json untouched",
			input:    `{"teams": []}`,
			expected: `{"teams": []}`,
		},
		{
			name:     "json fence",
			input:    "```json\n{\"teams\": []}\n```",
			expected: `{"teams": []}`,
		},
		{
			name:     "generic fence",
			input:    "```\n{\"teams\": []}\n```",
			expected: `{"teams": []}`,
		},
		{
			name:     "fence with language identifier",
			input:    "```javascript\n{\"teams\": []}\n```",
			expected: `{"teams": []}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```json\n{\"ok\": true}\n```  \n",
			expected: `{"ok": true}`,
		},
		{
			name:     "fence without closing marker",
			input:    "```json\n{\"ok\": true}",
			expected: `{"ok": true}`,
		},
		{
			name:     "inner backticks preserved",
			input:    "```json\n{\"note\": \"use `go` here\"}\n```",
			expected: "{\"note\": \"use `go` here\"}",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_Idempotent(t *testing.T) {
	// Stripping an already-clean payload must not change it further.
	once := CleanJSONBlock("```json\n{\"teams\": []}\n```")
	assert.Equal(t, once, CleanJSONBlock(once))
}
