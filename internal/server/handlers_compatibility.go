package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/team-generator/internal/compatibility"
	"github.com/jonathan/team-generator/internal/types"
)

// handleCompatibility scores one candidate profile against an existing
// roster supplied in the request.
func (s *Server) handleCompatibility(w http.ResponseWriter, r *http.Request) {
	var req types.CompatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result, err := compatibility.Score(r.Context(), s.llmClient, req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
