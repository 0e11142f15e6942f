package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// StopSignal is the model's out-of-band completion status, distinct from its
// content. Anything other than StopNormal means the content must not be
// parsed as a result.
type StopSignal string

// Stop signals reported alongside a completion.
const (
	// StopNormal means the model finished its answer.
	StopNormal StopSignal = "normal"
	// StopRefusal means the model declined to answer.
	StopRefusal StopSignal = "refusal"
	// StopMaxTokens means the output was cut short before completion.
	StopMaxTokens StopSignal = "max_tokens"
	// StopContextExceeded means the prompt was too large for the model.
	StopContextExceeded StopSignal = "context_exceeded"
)

// Completion is one model answer: the raw text plus its stop signal.
type Completion struct {
	Text string
	Stop StopSignal
}

// Client is an abstraction over LLM providers
type Client interface {
	// Complete sends one prompt and returns one completion; there is no
	// multi-turn exchange.
	Complete(ctx context.Context, prompt string, tier ModelTier) (Completion, error)
	// GetModel returns the underlying provider model for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Complete sends one prompt and returns the completion with its stop signal.
func (c *GeminiClient) Complete(ctx context.Context, prompt string, tier ModelTier) (Completion, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return Completion{}, fmt.Errorf("no model configured for tier %s", tier)
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.2) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if isContextExceeded(err) {
			return Completion{Stop: StopContextExceeded}, nil
		}
		return Completion{}, fmt.Errorf("failed to generate content: %w", err)
	}

	return completionFromResponse(resp)
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// completionFromResponse maps the Gemini response to a Completion. A prompt
// blocked by safety filters or a candidate stopped for safety/recitation is
// reported as a refusal; a candidate stopped at the token limit is reported
// as truncated.
func completionFromResponse(resp *genai.GenerateContentResponse) (Completion, error) {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return Completion{Stop: StopRefusal}, nil
	}
	if len(resp.Candidates) == 0 {
		return Completion{Stop: StopRefusal}, nil
	}

	candidate := resp.Candidates[0]
	stop := StopNormal
	switch candidate.FinishReason {
	case genai.FinishReasonSafety, genai.FinishReasonRecitation, genai.FinishReasonOther:
		stop = StopRefusal
	case genai.FinishReasonMaxTokens:
		stop = StopMaxTokens
	}

	var parts []string
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				parts = append(parts, string(text))
			}
		}
	}
	if len(parts) == 0 && stop == StopNormal {
		return Completion{}, fmt.Errorf("no text parts in response")
	}

	return Completion{Text: strings.Join(parts, ""), Stop: stop}, nil
}

// isContextExceeded reports whether a provider error indicates the prompt
// exceeded the model's input window.
func isContextExceeded(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "token") &&
		(strings.Contains(msg, "exceed") || strings.Contains(msg, "too large") || strings.Contains(msg, "too long"))
}
