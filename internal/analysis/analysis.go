// Package analysis re-scores existing teams after manual edits and ranks
// candidates for open team slots.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/team-generator/internal/interpret"
	"github.com/jonathan/team-generator/internal/llm"
	"github.com/jonathan/team-generator/internal/prompts"
	"github.com/jonathan/team-generator/internal/types"
)

const modelCallTimeout = 120 * time.Second

// recommendationLimit caps the ranked candidates returned to the caller,
// whatever the model produced.
const recommendationLimit = 5

// Reanalyze re-scores a manually edited roster. When req.LeaderID is set,
// the manager-selected leader is preserved: the prompt pins it and the
// result echoes it back unconditionally, whatever the model answered.
func Reanalyze(ctx context.Context, client llm.Client, req types.ReanalyzeRequest) (*types.ReanalysisResult, error) {
	prompt := buildReanalyzePrompt(req)

	ctx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	completion, err := client.Complete(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("team re-analysis model call failed: %w", err)
	}

	var result types.ReanalysisResult
	if err := interpret.DecodeWithSchema(completion, reanalysisSchema, &result); err != nil {
		return nil, err
	}
	if req.LeaderID != "" {
		result.LeaderID = req.LeaderID
	}
	return &result, nil
}

// RankCandidates asks the model to score the repository's candidate list
// against an existing roster and returns at most 5 recommendations.
func RankCandidates(ctx context.Context, client llm.Client, team *types.TeamSnapshot, filter types.FindMembersRequest, candidates []types.Candidate) ([]types.MemberRecommendation, error) {
	prompt := buildFindMembersPrompt(team, filter, candidates)

	ctx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	completion, err := client.Complete(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("candidate ranking model call failed: %w", err)
	}

	var recommendations []types.MemberRecommendation
	if err := interpret.Decode(completion, &recommendations); err != nil {
		return nil, err
	}
	if len(recommendations) > recommendationLimit {
		recommendations = recommendations[:recommendationLimit]
	}
	return recommendations, nil
}

func buildReanalyzePrompt(req types.ReanalyzeRequest) string {
	data := weightValues(req.Weights)
	data["MembersJSON"] = marshalJSON(req.Members)
	data["Technologies"] = strings.Join(req.Technologies, ", ")

	leaderInstruction := ""
	if req.LeaderID != "" {
		leaderInstruction = "El líder del equipo ya fue elegido por el responsable y no debe cambiarse: " +
			"devuelve exactamente el id \"" + req.LeaderID + "\" en el campo leader_id."
	}
	data["LeaderInstruction"] = leaderInstruction

	template := prompts.MustGet("analysis.json", "reanalyze-team")
	return prompts.Format(template, data)
}

func buildFindMembersPrompt(team *types.TeamSnapshot, filter types.FindMembersRequest, candidates []types.Candidate) string {
	if candidates == nil {
		candidates = []types.Candidate{}
	}
	data := map[string]string{
		"TeamJSON":       marshalJSON(team),
		"CandidatesJSON": marshalJSON(candidates),
		"Role":           filter.Role,
		"Area":           filter.Area,
		"Level":          filter.Level.String(),
		"Technologies":   strings.Join(filter.Technologies, ", "),
	}

	template := prompts.MustGet("analysis.json", "find-members")
	return prompts.Format(template, data)
}

func marshalJSON(v any) string {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "null"
	}
	return string(encoded)
}

func weightValues(w types.Weights) map[string]string {
	return map[string]string{
		"SfiaWeight":          strconv.Itoa(w.Sfia),
		"TechnicalWeight":     strconv.Itoa(w.Technical),
		"PsychologicalWeight": strconv.Itoa(w.Psychological),
		"ExperienceWeight":    strconv.Itoa(w.Experience),
		"LanguageWeight":      strconv.Itoa(w.Language),
		"InterestsWeight":     strconv.Itoa(w.Interests),
		"TimezoneWeight":      strconv.Itoa(w.Timezone),
	}
}

const reanalysisSchema = `{
  "type": "object",
  "required": ["compatibility_score", "strengths", "weaknesses", "compatibility"],
  "properties": {
    "compatibility_score": {"type": "integer", "minimum": 0, "maximum": 100},
    "leader_id": {"type": "string"},
    "strengths": {"type": "array"},
    "weaknesses": {"type": "array"},
    "compatibility": {"type": "string"},
    "recommendations": {"type": "array"}
  }
}`
