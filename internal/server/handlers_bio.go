package server

import (
	"encoding/json"
	"net/http"

	"github.com/biisimvar/profile-wizard/internal/types"
)

// handleBioElaborate rewrites a raw jobseeker bio into clean Turkish prose.
func (s *Server) handleBioElaborate(w http.ResponseWriter, r *http.Request) {
	var req types.BioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, err)
		return
	}

	improved, err := s.rewriter.Elaborate(r.Context(), req.RawBio)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.BioResponse{ImprovedBio: improved})
}
