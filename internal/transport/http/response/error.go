package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/admindash/auth-service/internal/domain"
	"github.com/admindash/auth-service/internal/logger"
)

// ErrorBody is the wire shape of every failure: a single human-readable
// string. Codes, metadata and causes stay server-side.
type ErrorBody struct {
	Error string `json:"error"`
}

// WriteError converts a domain error into a consistent JSON HTTP error
// response. Non-domain errors and 5xx kinds are reported as a generic
// internal failure; the cause is logged, never serialized.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var de *domain.Error
	if errors.As(err, &de) {
		status = statusFromKind(de.Kind)
		if status < http.StatusInternalServerError {
			message = de.Message
		}
	}

	if status >= http.StatusInternalServerError {
		logger.WithCtx(r.Context()).Error().Err(err).
			Str("path", r.URL.Path).
			Msg("request failed")
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorBody{Error: message})
}

// statusFromKind maps domain error kinds to HTTP status codes.
func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	case domain.KindInfrastructure, domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
