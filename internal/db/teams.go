package db

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/team-generator/internal/types"
)

// TeamSnapshot reconstructs a team's current roster and stored metadata.
// Returns nil when the team id does not exist; a team with no members is a
// normal outcome and yields an empty member list.
func (db *DB) TeamSnapshot(ctx context.Context, teamID uuid.UUID) (*types.TeamSnapshot, error) {
	var (
		snapshot    types.TeamSnapshot
		analysis    *string
		rawCriteria []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT t.id, t.name, t.compatibility_score, t.ai_analysis, t.weight_criteria
		 FROM public.teams t WHERE t.id = $1`,
		teamID,
	).Scan(&snapshot.ID, &snapshot.Name, &snapshot.CompatibilityScore, &analysis, &rawCriteria)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, &QueryError{Operation: "team snapshot", Cause: err}
	}

	if analysis != nil {
		snapshot.Analysis = *analysis
	}
	if len(rawCriteria) > 0 {
		// weight_criteria is stored as jsonb; a malformed blob is treated as
		// absent rather than failing the whole lookup.
		var criteria map[string]int
		if err := json.Unmarshal(rawCriteria, &criteria); err == nil {
			snapshot.WeightCriteria = criteria
		}
	}

	members, err := db.teamMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	snapshot.Members = members
	return &snapshot, nil
}

// teamMembers loads the roster with nested technology, interest and
// language lists.
func (db *DB) teamMembers(ctx context.Context, teamID uuid.UUID) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx, `
SELECT
    ep.id,
    ep.first_name || ' ' || ep.last_name AS name,
    COALESCE(sr.name, '') AS role,
    ep.sfia_level_general AS sfia_level,
    COALESCE(ep.mbti, '') AS mbti,
    COALESCE(ep.timezone, '') AS timezone,
    COALESCE(ep.country, '') AS country,
    ep.availability,
    COALESCE((
        SELECT array_agg(DISTINCT tech.name)
        FROM public.employee_technologies et
        JOIN public.technologies tech ON tech.id = et.technology_id
        WHERE et.employee_profile_id = ep.id
    ), '{}') AS technologies,
    COALESCE((
        SELECT array_agg(DISTINCT pi.name)
        FROM public.personal_interests pi
        WHERE pi.employee_profile_id = ep.id
    ), '{}') AS interests,
    COALESCE((
        SELECT array_agg(DISTINCT el.language)
        FROM public.employee_languages el
        WHERE el.employee_profile_id = ep.id
    ), '{}') AS languages
FROM public.team_members tm
JOIN public.employee_profiles ep ON ep.id = tm.employee_profile_id
LEFT JOIN public.employee_specialized_roles esr ON esr.employee_profile_id = ep.id
LEFT JOIN public.specialized_roles sr ON sr.id = esr.specialized_role_id
WHERE tm.team_id = $1`,
		teamID)
	if err != nil {
		return nil, &QueryError{Operation: "team member profiles", Cause: err}
	}
	defer rows.Close()

	members := []types.Candidate{}
	for rows.Next() {
		var m types.Candidate
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.SfiaLevel, &m.Mbti,
			&m.Timezone, &m.Country, &m.Availability, &m.Technologies, &m.Interests, &m.Languages); err != nil {
			return nil, &QueryError{Operation: "team member profiles", Cause: err}
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Operation: "team member profiles", Cause: err}
	}
	return members, nil
}
