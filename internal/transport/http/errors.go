package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/harborline/tariff-service/internal/app/rating/domain"
)

// writeDomainError converts domain errors to HTTP status codes.
// Unknown errors are masked behind 500 so internal details never
// reach the wire.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyProvider):
		writeError(w, http.StatusBadRequest, "provider cannot be empty")
	case errors.Is(err, domain.ErrNegativeBasePrice):
		writeError(w, http.StatusBadRequest, "base price cannot be negative")
	case errors.Is(err, domain.ErrRuleNotFound):
		writeError(w, http.StatusNotFound, "rule not found")
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
