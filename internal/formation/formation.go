// Package formation generates team proposals by assembling candidate data
// into a prompt, delegating selection to the model, and interpreting the
// answer.
package formation

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/team-generator/internal/interpret"
	"github.com/jonathan/team-generator/internal/llm"
	"github.com/jonathan/team-generator/internal/types"
)

// modelCallTimeout bounds the external model call, the dominant latency
// source of every request.
const modelCallTimeout = 120 * time.Second

// GenerateTeam asks the model to form a team from the supplied candidate
// pool. Selection, scoring and narrative are entirely the model's; this
// function only assembles the prompt and interprets the answer.
func GenerateTeam(ctx context.Context, client llm.Client, req types.GenerateTeamRequest, candidates []types.Candidate) (*types.TeamFormation, error) {
	prompt := BuildGenerationPrompt(req, candidates)

	ctx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	completion, err := client.Complete(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("team generation model call failed: %w", err)
	}

	var result types.TeamFormation
	if err := interpret.DecodeWithSchema(completion, formationSchema, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateBlendedTeam is GenerateTeam without per-slot requirements: the
// model infers the role and seniority mix and additionally reports a
// per-technology complexity analysis and a level distribution.
func GenerateBlendedTeam(ctx context.Context, client llm.Client, req types.BlendedTeamRequest, candidates []types.Candidate) (*types.BlendedFormation, error) {
	prompt := BuildBlendedPrompt(req, candidates)

	ctx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	completion, err := client.Complete(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("blended generation model call failed: %w", err)
	}

	var result types.BlendedFormation
	if err := interpret.DecodeWithSchema(completion, blendedSchema, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
