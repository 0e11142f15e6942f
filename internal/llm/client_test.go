package llm

import (
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textResponse(text string, reason genai.FinishReason) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				FinishReason: reason,
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text(text)},
				},
			},
		},
	}
}

func TestCompletionFromResponse(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected Completion
	}{
		{
			name:     "normal stop",
			resp:     textResponse(`{"ok": true}`, genai.FinishReasonStop),
			expected: Completion{Text: `{"ok": true}`, Stop: StopNormal},
		},
		{
			name:     "safety stop is a refusal",
			resp:     textResponse("partial", genai.FinishReasonSafety),
			expected: Completion{Text: "partial", Stop: StopRefusal},
		},
		{
			name:     "recitation stop is a refusal",
			resp:     textResponse("", genai.FinishReasonRecitation),
			expected: Completion{Stop: StopRefusal},
		},
		{
			name:     "token limit is truncation",
			resp:     textResponse(`{"teams": [`, genai.FinishReasonMaxTokens),
			expected: Completion{Text: `{"teams": [`, Stop: StopMaxTokens},
		},
		{
			name: "blocked prompt is a refusal",
			resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety},
			},
			expected: Completion{Stop: StopRefusal},
		},
		{
			name:     "no candidates is a refusal",
			resp:     &genai.GenerateContentResponse{},
			expected: Completion{Stop: StopRefusal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := completionFromResponse(tt.resp)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCompletionFromResponse_EmptyNormalIsError(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop}},
	}
	_, err := completionFromResponse(resp)
	assert.Error(t, err)
}

func TestIsContextExceeded(t *testing.T) {
	tests := []struct {
		message  string
		expected bool
	}{
		{"input token count exceeds the maximum", true},
		{"request payload too large: token limit", true},
		{"prompt is too long: 2000000 tokens", true},
		{"rate limit exceeded", false},
		{"internal error", false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.expected, isContextExceeded(errors.New(tt.message)))
		})
	}
}

func TestConfigGetModel(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
	// Unknown tiers fall back to the standard model.
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(ModelTier("experimental")))
}
