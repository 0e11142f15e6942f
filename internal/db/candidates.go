package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/team-generator/internal/types"
)

const (
	// generationCandidateLimit bounds the candidate pool embedded in
	// generation prompts.
	generationCandidateLimit = 20
	// teamCandidateLimit bounds the narrower find-additional-member pool.
	teamCandidateLimit = 15

	// verificationApproved is the stored code for an approved profile in
	// employee_profiles.verification_status.
	verificationApproved = "2"
)

// consentFilter restricts every candidate query to employees who have
// explicitly consented to team_matching_analysis in their privacy settings.
// It is appended unconditionally; employees without consent never appear in
// any candidate set. It takes no bound parameters.
const consentFilter = `
  AND EXISTS (
    SELECT 1 FROM public.user_privacy_consents upc
    JOIN public.users u ON u.id = upc.user_id
    WHERE u.id = ep.user_id
      AND upc.team_matching_analysis = true
  )`

// candidateSelect is the denormalized projection shared by the candidate
// queries: profile columns plus aggregated technology and interest names.
const candidateSelect = `
SELECT
    ep.id AS employee_id,
    ep.first_name || ' ' || ep.last_name AS name,
    COALESCE(sr.name, '') AS role,
    COALESCE(ta.name, '') AS technical_area,
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
    ), '{}') AS interests`

const candidateFrom = `
FROM public.employee_profiles ep
LEFT JOIN public.employee_specialized_roles esr ON esr.employee_profile_id = ep.id
LEFT JOIN public.specialized_roles sr ON sr.id = esr.specialized_role_id
LEFT JOIN public.technical_areas ta ON ta.id = sr.technical_area_id
WHERE 1=1`

// splitAreas expands a comma-joined technical-area value into its
// alternatives, dropping empty entries.
func splitAreas(area string) []string {
	parts := strings.Split(area, ",")
	areas := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			areas = append(areas, trimmed)
		}
	}
	return areas
}

// buildGenerationQuery assembles the candidate query for team generation.
// All caller-influenced values are bound parameters; the query text itself
// is built only from fixed fragments.
func buildGenerationQuery(requirements []types.TechnicalRequirement, technologies []string, minSfiaLevel int, availability bool) (string, []any) {
	var sb strings.Builder
	args := []any{}

	sb.WriteString(candidateSelect)
	sb.WriteString(candidateFrom)

	args = append(args, availability)
	fmt.Fprintf(&sb, "\n  AND ep.availability = $%d", len(args))

	args = append(args, minSfiaLevel)
	fmt.Fprintf(&sb, "\n  AND ep.sfia_level_general >= $%d", len(args))

	args = append(args, verificationApproved)
	fmt.Fprintf(&sb, "\n  AND ep.verification_status = $%d", len(args))

	// One OR-joined clause per requirement row: exact role and tier, area
	// matching any of its comma-separated alternatives.
	var reqClauses []string
	for _, req := range requirements {
		areas := splitAreas(req.Area)
		if req.Role == "" || len(areas) == 0 || !req.Level.Valid() {
			continue
		}
		args = append(args, req.Role)
		roleArg := len(args)
		args = append(args, areas)
		areaArg := len(args)
		args = append(args, storedLevel(req.Level))
		levelArg := len(args)
		reqClauses = append(reqClauses, fmt.Sprintf(
			"(sr.name = $%d AND ta.name = ANY($%d) AND esr.level = $%d)",
			roleArg, areaArg, levelArg))
	}
	if len(reqClauses) > 0 {
		fmt.Fprintf(&sb, "\n  AND (%s)", strings.Join(reqClauses, " OR "))
	}

	if len(technologies) > 0 {
		args = append(args, technologies)
		fmt.Fprintf(&sb, `
  AND EXISTS (
    SELECT 1 FROM public.employee_technologies et
    JOIN public.technologies tech ON tech.id = et.technology_id
    WHERE et.employee_profile_id = ep.id AND tech.name = ANY($%d)
  )`, len(args))
	}

	sb.WriteString(consentFilter)
	fmt.Fprintf(&sb, "\nORDER BY ep.sfia_level_general DESC\nLIMIT %d", generationCandidateLimit)

	return sb.String(), args
}

// GenerationCandidates returns eligible employees for a new team, sorted by
// descending SFIA score and capped at 20 rows to bound prompt size.
func (db *DB) GenerationCandidates(ctx context.Context, requirements []types.TechnicalRequirement, technologies []string, minSfiaLevel int, availability bool) ([]types.Candidate, error) {
	query, args := buildGenerationQuery(requirements, technologies, minSfiaLevel, availability)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, &QueryError{Operation: "generation candidates", Cause: err}
	}
	defer rows.Close()

	var candidates []types.Candidate
	for rows.Next() {
		var c types.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Role, &c.TechnicalArea, &c.SfiaLevel,
			&c.Mbti, &c.Timezone, &c.Country, &c.Availability, &c.Technologies, &c.Interests); err != nil {
			return nil, &QueryError{Operation: "generation candidates", Cause: err}
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Operation: "generation candidates", Cause: err}
	}
	return candidates, nil
}

// buildTeamCandidatesQuery assembles the find-additional-member query. The
// has_required_tech flag is computed against the requested technology list
// and used as the primary sort key.
func buildTeamCandidatesQuery(excludeIDs []uuid.UUID, filter types.FindMembersRequest) (string, []any) {
	var sb strings.Builder
	args := []any{}

	techList := filter.Technologies
	if techList == nil {
		techList = []string{}
	}
	args = append(args, techList)
	techArg := len(args)

	sb.WriteString(candidateSelect)
	fmt.Fprintf(&sb, `,
    EXISTS (
        SELECT 1 FROM public.employee_technologies et
        JOIN public.technologies tech ON tech.id = et.technology_id
        WHERE et.employee_profile_id = ep.id
          AND tech.name = ANY($%d)
    ) AS has_required_tech`, techArg)
	sb.WriteString(candidateFrom)

	if len(excludeIDs) > 0 {
		args = append(args, excludeIDs)
		fmt.Fprintf(&sb, "\n  AND NOT (ep.id = ANY($%d))", len(args))
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		fmt.Fprintf(&sb, "\n  AND sr.name = $%d", len(args))
	}
	if areas := splitAreas(filter.Area); len(areas) > 0 {
		args = append(args, areas)
		fmt.Fprintf(&sb, "\n  AND ta.name = ANY($%d)", len(args))
	}
	if filter.Level.Valid() {
		args = append(args, storedLevel(filter.Level))
		fmt.Fprintf(&sb, "\n  AND esr.level = $%d", len(args))
	}
	if len(filter.Technologies) > 0 {
		fmt.Fprintf(&sb, `
  AND EXISTS (
    SELECT 1 FROM public.employee_technologies et
    JOIN public.technologies tech ON tech.id = et.technology_id
    WHERE et.employee_profile_id = ep.id AND tech.name = ANY($%d)
  )`, techArg)
	}

	sb.WriteString(consentFilter)
	fmt.Fprintf(&sb, "\nORDER BY has_required_tech DESC, ep.sfia_level_general DESC\nLIMIT %d", teamCandidateLimit)

	return sb.String(), args
}

// TeamCandidates returns candidates for adding a member to an existing
// team, excluding its current members, capped at 15 rows.
func (db *DB) TeamCandidates(ctx context.Context, teamID uuid.UUID, filter types.FindMembersRequest) ([]types.Candidate, error) {
	memberIDs, err := db.teamMemberIDs(ctx, teamID)
	if err != nil {
		return nil, err
	}

	query, args := buildTeamCandidatesQuery(memberIDs, filter)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, &QueryError{Operation: "team candidates", Cause: err}
	}
	defer rows.Close()

	var candidates []types.Candidate
	for rows.Next() {
		var c types.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Role, &c.TechnicalArea, &c.SfiaLevel,
			&c.Mbti, &c.Timezone, &c.Country, &c.Availability, &c.Technologies, &c.Interests,
			&c.HasRequiredTech); err != nil {
			return nil, &QueryError{Operation: "team candidates", Cause: err}
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Operation: "team candidates", Cause: err}
	}
	return candidates, nil
}

// teamMemberIDs returns the profile ids currently on a team.
func (db *DB) teamMemberIDs(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT employee_profile_id FROM public.team_members WHERE team_id = $1`, teamID)
	if err != nil {
		return nil, &QueryError{Operation: "team members", Cause: err}
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, &QueryError{Operation: "team members", Cause: err}
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Operation: "team members", Cause: err}
	}
	return ids, nil
}

// storedLevel translates the canonical seniority tier to the encoding used
// by employee_specialized_roles.level. The store keeps tier names, so this
// is the single point where a different persisted encoding would be
// applied.
func storedLevel(level types.SeniorityLevel) string {
	return string(level)
}
