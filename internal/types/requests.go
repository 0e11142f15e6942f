// Package types provides type definitions for the request and response
// contracts used throughout the team-generator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// TechnicalRequirement is one desired headcount slot: a role name, a
// technical area (possibly a comma-joined list of alternatives) and a
// seniority tier.
type TechnicalRequirement struct {
	Role  string         `json:"role" validate:"required"`
	Area  string         `json:"area" validate:"required"`
	Level SeniorityLevel `json:"level" validate:"required"`
}

// Weights is the seven-dimension importance distribution passed through to
// the model. Values are nominally percentages summing to 100, but the
// service tolerates vectors that do not.
type Weights struct {
	Sfia          int `json:"sfia_weight" validate:"min=0"`
	Technical     int `json:"technical_weight" validate:"min=0"`
	Psychological int `json:"psychological_weight" validate:"min=0"`
	Experience    int `json:"experience_weight" validate:"min=0"`
	Language      int `json:"language_weight" validate:"min=0"`
	Interests     int `json:"interests_weight" validate:"min=0"`
	Timezone      int `json:"timezone_weight" validate:"min=0"`
}

// GenerateTeamRequest asks for a new team assembled from eligible employees,
// one requirement row per desired headcount slot.
type GenerateTeamRequest struct {
	CreatorID    string                 `json:"creator_id" validate:"required"`
	TeamSize     int                    `json:"team_size" validate:"required,min=1"`
	Requirements []TechnicalRequirement `json:"requirements" validate:"required,min=1,dive"`
	Technologies []string               `json:"technologies"`
	SfiaLevel    int                    `json:"sfia_level" validate:"min=0"`
	Weights      Weights                `json:"weights"`
	Availability bool                   `json:"availability"`
}

// ProjectComplexity is the qualitative tier the blended variant uses in
// place of per-slot requirements.
type ProjectComplexity string

// Complexity tiers.
const (
	ComplexityLow    ProjectComplexity = "Low"
	ComplexityMedium ProjectComplexity = "Medium"
	ComplexityHigh   ProjectComplexity = "High"
)

// BlendedTeamRequest asks for a team without explicit requirement rows;
// the model infers the role and seniority mix from the technologies and
// project complexity.
type BlendedTeamRequest struct {
	CreatorID    string            `json:"creator_id" validate:"required"`
	TeamSize     int               `json:"team_size" validate:"required,min=1"`
	Technologies []string          `json:"technologies" validate:"required,min=1"`
	Complexity   ProjectComplexity `json:"complexity" validate:"required,oneof=Low Medium High"`
	SfiaLevel    int               `json:"sfia_level" validate:"min=0"`
	Weights      Weights           `json:"weights"`
	Availability bool              `json:"availability"`
}

// FindMembersRequest asks for ranked candidates to add to an existing team,
// excluding its current members.
type FindMembersRequest struct {
	Role         string         `json:"role"`
	Area         string         `json:"area"`
	Level        SeniorityLevel `json:"level"`
	Technologies []string       `json:"technologies"`
}

// ReanalyzeRequest asks for a re-score of a team after manual edits.
// LeaderID, when set, names a manager-selected leader that must be echoed
// back unconditionally.
type ReanalyzeRequest struct {
	Members      []TeamMember `json:"members" validate:"required,min=1,dive"`
	Technologies []string     `json:"technologies"`
	Weights      Weights      `json:"weights"`
	LeaderID     string       `json:"leader_id,omitempty"`
}

// CompatibilityRequest asks for a compatibility score of one candidate
// profile against an existing roster.
type CompatibilityRequest struct {
	Members   []Candidate `json:"members" validate:"required,min=1"`
	NewMember Candidate   `json:"new_member" validate:"required"`
}

var validate = validator.New()

// Validate validates the GenerateTeamRequest using the validator.
func (r *GenerateTeamRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the BlendedTeamRequest using the validator.
func (r *BlendedTeamRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ReanalyzeRequest using the validator.
func (r *ReanalyzeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CompatibilityRequest using the validator.
func (r *CompatibilityRequest) Validate() error {
	return validate.Struct(r)
}
