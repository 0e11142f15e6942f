// Package types provides type definitions for the request and response
// contracts used throughout the team-generator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TeamFormation is the full result of a team-generation request as produced
// by the model. Field names mirror the response schema stated in the prompt;
// the service does not re-verify membership invariants before returning it.
type TeamFormation struct {
	Teams              []GeneratedTeam     `json:"teams"`
	RecommendedLeader  RecommendedLeader   `json:"recommended_leader"`
	TeamAnalysis       TeamAnalysis        `json:"team_analysis"`
	CompatibilityScore int                 `json:"compatibility_score"`
	RecommendedMembers []RecommendedMember `json:"recommended_Members"`
}

// GeneratedTeam is one selected team with its reduced member list.
type GeneratedTeam struct {
	TeamID  string       `json:"team_id"`
	Members []TeamMember `json:"members"`
}

// RecommendedLeader names the member the model proposes as team leader.
// The prompt instructs the model to draw the leader from the selected
// members.
type RecommendedLeader struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Rationale string `json:"rationale"`
}

// TeamAnalysis is the free-text strengths/weaknesses/compatibility
// narrative.
type TeamAnalysis struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Compatibility string   `json:"compatibility"`
}

// RecommendedMember is one of the 3-5 alternates that were not selected for
// the main team.
type RecommendedMember struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	CompatibilityScore int      `json:"compatibility_score"`
	Analysis           string   `json:"analysis"`
	PotentialConflicts []string `json:"potential_conflicts"`
	TeamImpact         string   `json:"team_impact"`
}

// TechnologyComplexity is the per-technology breakdown returned by the
// blended generation variant.
type TechnologyComplexity struct {
	Technology string `json:"technology"`
	Complexity string `json:"complexity"`
	Rationale  string `json:"rationale"`
}

// BlendedFormation extends TeamFormation with the complexity analysis the
// blended variant asks the model to produce alongside the team.
type BlendedFormation struct {
	TeamFormation
	ComplexityAnalysis []TechnologyComplexity `json:"complexity_analysis"`
	LevelDistribution  map[string]int         `json:"level_distribution"`
}

// ReanalysisResult is the updated score and narrative for a manually edited
// team. LeaderID echoes the manager-selected leader when one was supplied.
type ReanalysisResult struct {
	CompatibilityScore int      `json:"compatibility_score"`
	LeaderID           string   `json:"leader_id,omitempty"`
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	Compatibility      string   `json:"compatibility"`
	Recommendations    []string `json:"recommendations"`
}

// MemberRecommendation is one ranked candidate from the find-additional-
// members flow.
type MemberRecommendation struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Role               string `json:"role"`
	SfiaLevel          int    `json:"sfia_level"`
	CompatibilityScore int    `json:"compatibility_score"`
	Analysis           string `json:"analysis"`
	HasRequiredTech    bool   `json:"has_required_tech"`
}
