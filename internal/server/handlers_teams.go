package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/team-generator/internal/analysis"
	"github.com/jonathan/team-generator/internal/types"
)

// handleGetTeam returns a team's current roster and stored metadata. A team
// with no members yields an empty member list, not a 404.
func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid team ID")
		return
	}

	snapshot, err := s.db.TeamSnapshot(r.Context(), teamID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if snapshot == nil {
		s.errorResponse(w, http.StatusNotFound, "Team not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, snapshot)
}

// handleFindMembers ranks candidates for an open slot on an existing team,
// excluding its current members.
func (s *Server) handleFindMembers(w http.ResponseWriter, r *http.Request) {
	teamID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid team ID")
		return
	}

	var req types.FindMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// The snapshot and the candidate pool are independent reads.
	var (
		snapshot   *types.TeamSnapshot
		candidates []types.Candidate
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		snapshot, err = s.db.TeamSnapshot(ctx, teamID)
		return err
	})
	g.Go(func() error {
		var err error
		candidates, err = s.db.TeamCandidates(ctx, teamID, req)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if snapshot == nil {
		s.errorResponse(w, http.StatusNotFound, "Team not found")
		return
	}
	if len(candidates) == 0 {
		s.errorResponse(w, http.StatusNotFound, "No candidates match the requested criteria")
		return
	}

	recommendations, err := analysis.RankCandidates(r.Context(), s.llmClient, snapshot, req, candidates)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"team_id":         teamID,
		"recommendations": recommendations,
	})
}

// handleReanalyze re-scores a team after manual edits. A leader_id in the
// request pins the manager-selected leader, which is echoed back
// unconditionally.
func (s *Server) handleReanalyze(w http.ResponseWriter, r *http.Request) {
	teamID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid team ID")
		return
	}

	var req types.ReanalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	// The team must exist even though the roster comes from the request;
	// re-analysis of a deleted team is a client error.
	snapshot, err := s.db.TeamSnapshot(r.Context(), teamID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if snapshot == nil {
		s.errorResponse(w, http.StatusNotFound, "Team not found")
		return
	}

	result, err := analysis.Reanalyze(r.Context(), s.llmClient, req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
