// Package compatibility scores a single candidate profile against an
// existing team roster.
package compatibility

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/team-generator/internal/interpret"
	"github.com/jonathan/team-generator/internal/llm"
	"github.com/jonathan/team-generator/internal/prompts"
	"github.com/jonathan/team-generator/internal/types"
)

const modelCallTimeout = 120 * time.Second

// Score asks the model for a compatibility score and the five-dimension
// narrative for one candidate against the supplied roster.
func Score(ctx context.Context, client llm.Client, req types.CompatibilityRequest) (*types.CompatibilityResult, error) {
	prompt := BuildPrompt(req)

	ctx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	completion, err := client.Complete(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("compatibility model call failed: %w", err)
	}

	var result types.CompatibilityResult
	if err := interpret.DecodeWithSchema(completion, compatibilitySchema, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// BuildPrompt renders the compatibility prompt; pure and deterministic.
func BuildPrompt(req types.CompatibilityRequest) string {
	data := map[string]string{
		"MembersJSON":   marshalJSON(req.Members),
		"NewMemberJSON": marshalJSON(req.NewMember),
	}
	template := prompts.MustGet("compatibility.json", "member-compatibility")
	return prompts.Format(template, data)
}

func marshalJSON(v any) string {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "null"
	}
	return string(encoded)
}

const compatibilitySchema = `{
  "type": "object",
  "required": ["compatibility_score", "justification", "dimensions"],
  "properties": {
    "compatibility_score": {"type": "integer", "minimum": 0, "maximum": 100},
    "justification": {"type": "string"},
    "dimensions": {"type": "object"},
    "potential_conflicts": {"type": "array"}
  }
}`
