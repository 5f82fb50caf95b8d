package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/biisimvar/profile-wizard/internal/bio"
	"github.com/biisimvar/profile-wizard/internal/llm"
	"github.com/biisimvar/profile-wizard/internal/wizard"
)

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, code, detail string) {
	s.jsonResponse(w, status, map[string]string{
		"error":  code,
		"detail": detail,
	})
}

// handleError maps a processing error onto an HTTP response. Caller mistakes
// get 400 with the underlying message; upstream and configuration failures
// get 500 without leaking provider internals.
func (s *Server) handleError(w http.ResponseWriter, err error) {
	var (
		emptyInput *bio.EmptyInputError
		profanity  *bio.ProfanityError
		inputErr   *wizard.InputError
		valErrs    validator.ValidationErrors
	)

	switch {
	case errors.As(err, &emptyInput),
		errors.As(err, &profanity),
		errors.As(err, &inputErr),
		errors.As(err, &valErrs):
		s.errorResponse(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	var (
		configErr   *llm.ConfigError
		upstreamErr *llm.UpstreamError
		emptyResp   *llm.EmptyResponseError
	)

	switch {
	case errors.As(err, &configErr):
		s.logger.Error("provider misconfigured", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "internal_error", "service is misconfigured")
	case errors.As(err, &upstreamErr):
		s.logger.Error("upstream request failed",
			zap.Int("upstream_status", upstreamErr.StatusCode),
			zap.Error(err),
		)
		s.errorResponse(w, http.StatusInternalServerError, "internal_error", "language model request failed")
	case errors.As(err, &emptyResp):
		s.logger.Error("upstream returned no content", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "internal_error", "language model returned no content")
	default:
		s.logger.Error("request failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "internal_error", "unexpected error")
	}
}
