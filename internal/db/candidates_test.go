package db

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/team-generator/internal/types"
)

func TestSplitAreas(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Web Development", []string{"Web Development"}},
		{"Web Development, Data", []string{"Web Development", "Data"}},
		{" Cloud ,, Mobile ", []string{"Cloud", "Mobile"}},
		{"", nil},
		{" , ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := splitAreas(tt.input)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuildGenerationQuery(t *testing.T) {
	requirements := []types.TechnicalRequirement{
		{Role: "Backend Developer", Area: "Web Development, Cloud", Level: types.LevelSenior},
		{Role: "Data Engineer", Area: "Data", Level: types.LevelStaff},
	}
	query, args := buildGenerationQuery(requirements, []string{"Go", "PostgreSQL"}, 3, true)

	// availability, sfia, verification, then role/areas/level per
	// requirement, then the technology list
	require.Len(t, args, 10)
	assert.Equal(t, true, args[0])
	assert.Equal(t, 3, args[1])
	assert.Equal(t, verificationApproved, args[2])
	assert.Equal(t, "Backend Developer", args[3])
	assert.Equal(t, []string{"Web Development", "Cloud"}, args[4])
	assert.Equal(t, "Senior", args[5])
	assert.Equal(t, "Data Engineer", args[6])
	assert.Equal(t, []string{"Go", "PostgreSQL"}, args[9])

	assert.Contains(t, query, "ep.availability = $1")
	assert.Contains(t, query, "ep.sfia_level_general >= $2")
	assert.Contains(t, query, "ep.verification_status = $3")
	assert.Contains(t, query, "(sr.name = $4 AND ta.name = ANY($5) AND esr.level = $6)")
	assert.Contains(t, query, "(sr.name = $7 AND ta.name = ANY($8) AND esr.level = $9)")
	assert.Contains(t, query, " OR ")
	assert.Contains(t, query, "tech.name = ANY($10)")
	assert.Contains(t, query, "ORDER BY ep.sfia_level_general DESC")
	assert.Contains(t, query, "LIMIT 20")

	// Caller-supplied values never appear in the query text itself.
	assert.NotContains(t, query, "Backend Developer")
	assert.NotContains(t, query, "Web Development")
	assert.NotContains(t, query, "PostgreSQL")
}

func TestBuildGenerationQuery_ConsentAlwaysApplied(t *testing.T) {
	// The privacy filter is present no matter how empty the request is.
	query, _ := buildGenerationQuery(nil, nil, 0, false)
	assert.Contains(t, query, "upc.team_matching_analysis = true")
	assert.Contains(t, query, "u.id = ep.user_id")

	query, _ = buildGenerationQuery([]types.TechnicalRequirement{
		{Role: "Backend Developer", Area: "Web Development", Level: types.LevelJunior},
	}, []string{"Go"}, 5, true)
	assert.Contains(t, query, "upc.team_matching_analysis = true")
}

func TestBuildGenerationQuery_SkipsInvalidRequirements(t *testing.T) {
	requirements := []types.TechnicalRequirement{
		{Role: "", Area: "Web Development", Level: types.LevelSenior},
		{Role: "Backend Developer", Area: "", Level: types.LevelSenior},
		{Role: "Backend Developer", Area: "Web Development", Level: "Wizard"},
	}
	query, args := buildGenerationQuery(requirements, nil, 0, true)

	assert.Len(t, args, 3)
	assert.NotContains(t, query, "sr.name = $")
}

func TestBuildGenerationQuery_NoTechnologyClauseWhenEmpty(t *testing.T) {
	query, args := buildGenerationQuery(nil, nil, 2, true)
	assert.Len(t, args, 3)
	assert.NotContains(t, query, "tech.name = ANY")
}

func TestBuildTeamCandidatesQuery(t *testing.T) {
	exclude := []uuid.UUID{uuid.New(), uuid.New()}
	filter := types.FindMembersRequest{
		Role:         "Backend Developer",
		Area:         "Web Development, Cloud",
		Level:        types.LevelSenior,
		Technologies: []string{"Go"},
	}
	query, args := buildTeamCandidatesQuery(exclude, filter)

	// The technology list is bound once at $1 and reused by both the
	// has_required_tech projection and the overlap filter.
	require.Len(t, args, 5)
	assert.Equal(t, []string{"Go"}, args[0])
	assert.Equal(t, exclude, args[1])
	assert.Equal(t, "Backend Developer", args[2])
	assert.Equal(t, []string{"Web Development", "Cloud"}, args[3])
	assert.Equal(t, "Senior", args[4])

	assert.Contains(t, query, "AS has_required_tech")
	assert.Contains(t, query, "NOT (ep.id = ANY($2))")
	assert.Contains(t, query, "sr.name = $3")
	assert.Contains(t, query, "ta.name = ANY($4)")
	assert.Contains(t, query, "esr.level = $5")
	assert.Equal(t, 2, strings.Count(query, "tech.name = ANY($1)"))
	assert.Contains(t, query, "upc.team_matching_analysis = true")
	assert.Contains(t, query, "ORDER BY has_required_tech DESC, ep.sfia_level_general DESC")
	assert.Contains(t, query, "LIMIT 15")
	assert.NotContains(t, query, "Backend Developer")
}

func TestBuildTeamCandidatesQuery_EmptyFilter(t *testing.T) {
	query, args := buildTeamCandidatesQuery(nil, types.FindMembersRequest{})

	// Only the (empty) technology list for the has_required_tech flag.
	require.Len(t, args, 1)
	assert.Equal(t, []string{}, args[0])
	assert.NotContains(t, query, "NOT (ep.id = ANY")
	assert.NotContains(t, query, "sr.name = $")
	assert.NotContains(t, query, "esr.level = $")
	assert.Contains(t, query, "upc.team_matching_analysis = true")
	assert.Contains(t, query, "LIMIT 15")
	// The flag subquery stays even without a technology filter clause.
	assert.Equal(t, 1, strings.Count(query, "AS has_required_tech"))
}
