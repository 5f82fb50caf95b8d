package server

import (
	"encoding/json"
	"net/http"

	"github.com/biisimvar/profile-wizard/internal/types"
)

// handleWizardStep advances one step of the profile wizard conversation.
func (s *Server) handleWizardStep(w http.ResponseWriter, r *http.Request) {
	var req types.WizardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, err)
		return
	}

	resp, err := s.processor.ProcessStep(r.Context(), req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
