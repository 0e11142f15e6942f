// Package types provides type definitions for the request and response
// contracts used throughout the team-generator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CompatibilityDimensions is the multi-dimensional narrative accompanying a
// single-member compatibility score.
type CompatibilityDimensions struct {
	Technical     string `json:"technical"`
	Psychological string `json:"psychological"`
	Interests     string `json:"interests"`
	Experience    string `json:"experience"`
	Communication string `json:"communication"`
}

// CompatibilityResult is the model's assessment of one candidate against an
// existing roster.
type CompatibilityResult struct {
	CompatibilityScore int                     `json:"compatibility_score"`
	Justification      string                  `json:"justification"`
	Dimensions         CompatibilityDimensions `json:"dimensions"`
	PotentialConflicts []string                `json:"potential_conflicts"`
}
