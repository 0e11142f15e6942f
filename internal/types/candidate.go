// Package types provides type definitions for the request and response
// contracts used throughout the team-generator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// Candidate is a denormalized projection of an employee profile assembled
// fresh on every query from the normalized tables (profile, technologies,
// interests, specialized roles, languages). It is read-only: this service
// never mutates employee data.
type Candidate struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Role          string    `json:"role,omitempty"`
	TechnicalArea string    `json:"technical_area,omitempty"`
	SfiaLevel     int       `json:"sfia_level"`
	Mbti          string    `json:"mbti,omitempty"`
	Timezone      string    `json:"timezone,omitempty"`
	Country       string    `json:"country,omitempty"`
	Availability  bool      `json:"availability"`
	Technologies  []string  `json:"technologies"`
	Interests     []string  `json:"interests"`
	Languages     []string  `json:"languages,omitempty"`

	// HasRequiredTech is only populated by the team-candidate lookup, where
	// it is the primary sort key ahead of the SFIA score.
	HasRequiredTech bool `json:"has_required_tech,omitempty"`
}

// TeamMember is the reduced member shape embedded in generated teams.
type TeamMember struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	SfiaLevel int    `json:"sfia_level"`
}

// TeamSnapshot is a team's current roster plus the team-level metadata
// stored when the team was generated.
type TeamSnapshot struct {
	ID                 uuid.UUID      `json:"id"`
	Name               string         `json:"name"`
	CompatibilityScore *int           `json:"compatibility_score"`
	Analysis           string         `json:"ai_analysis,omitempty"`
	WeightCriteria     map[string]int `json:"weight_criteria,omitempty"`
	Members            []Candidate    `json:"members"`
}
