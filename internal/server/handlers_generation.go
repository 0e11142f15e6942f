package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/team-generator/internal/formation"
	"github.com/jonathan/team-generator/internal/types"
)

// handleGenerateTeam builds a candidate pool from the request's requirement
// rows and delegates selection to the model.
func (s *Server) handleGenerateTeam(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	candidates, err := s.db.GenerationCandidates(r.Context(), req.Requirements, req.Technologies, req.SfiaLevel, req.Availability)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if len(candidates) == 0 {
		s.errorResponse(w, http.StatusNotFound, "No candidates match the requested criteria")
		return
	}

	result, err := formation.GenerateTeam(r.Context(), s.llmClient, req, candidates)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGenerateBlendedTeam generates a team without per-slot requirements;
// the model infers the role and seniority mix from the technology list and
// the project complexity.
func (s *Server) handleGenerateBlendedTeam(w http.ResponseWriter, r *http.Request) {
	var req types.BlendedTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	candidates, err := s.db.GenerationCandidates(r.Context(), nil, req.Technologies, req.SfiaLevel, req.Availability)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if len(candidates) == 0 {
		s.errorResponse(w, http.StatusNotFound, "No candidates match the requested criteria")
		return
	}

	result, err := formation.GenerateBlendedTeam(r.Context(), s.llmClient, req, candidates)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
