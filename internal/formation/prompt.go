package formation

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/team-generator/internal/prompts"
	"github.com/jonathan/team-generator/internal/types"
)

// BuildGenerationPrompt renders the team-generation prompt. It is a pure
// string-building function: the same request and candidate pool always
// produce the same text. The candidate pool is embedded verbatim as JSON in
// the order the repository returned it.
func BuildGenerationPrompt(req types.GenerateTeamRequest, candidates []types.Candidate) string {
	roles := make([]string, 0, len(req.Requirements))
	areas := make([]string, 0, len(req.Requirements))
	levels := make([]string, 0, len(req.Requirements))
	for _, r := range req.Requirements {
		roles = append(roles, r.Role)
		areas = append(areas, r.Area)
		levels = append(levels, r.Level.String())
	}

	data := weightValues(req.Weights)
	data["CandidatesJSON"] = marshalPool(candidates)
	data["TeamSize"] = strconv.Itoa(req.TeamSize)
	data["Roles"] = strings.Join(roles, ", ")
	data["Areas"] = strings.Join(areas, ", ")
	data["Levels"] = strings.Join(levels, ", ")
	data["Technologies"] = strings.Join(req.Technologies, ", ")
	data["SfiaLevel"] = strconv.Itoa(req.SfiaLevel)

	template := prompts.MustGet("generation.json", "generate-team")
	return prompts.Format(template, data)
}

// BuildBlendedPrompt renders the blended-generation prompt, where the model
// infers the role and seniority mix from technologies and project
// complexity.
func BuildBlendedPrompt(req types.BlendedTeamRequest, candidates []types.Candidate) string {
	data := weightValues(req.Weights)
	data["CandidatesJSON"] = marshalPool(candidates)
	data["TeamSize"] = strconv.Itoa(req.TeamSize)
	data["Technologies"] = strings.Join(req.Technologies, ", ")
	data["Complexity"] = string(req.Complexity)
	data["SfiaLevel"] = strconv.Itoa(req.SfiaLevel)

	template := prompts.MustGet("generation.json", "generate-blended")
	return prompts.Format(template, data)
}

// marshalPool embeds the candidate pool as indented JSON. Marshal errors
// cannot occur for these types; an empty pool renders as an empty array.
func marshalPool(candidates []types.Candidate) string {
	if candidates == nil {
		candidates = []types.Candidate{}
	}
	encoded, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// weightValues expands the seven-dimension weighting vector into template
// placeholders. Vectors are passed through as supplied, whether or not they
// sum to 100.
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
