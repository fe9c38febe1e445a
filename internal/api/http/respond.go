package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"librental-backend/internal/domain"
	"librental-backend/internal/logger"
)

// ErrorResponse is the error body for every failed request. Reason is a
// stable machine-checkable code; Error is the human-readable message.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	reason := "internal_error"
	msg := "internal server error"

	switch {
	case errors.Is(err, domain.ErrBookUnavailable):
		status, reason, msg = http.StatusBadRequest, "book_unavailable", err.Error()
	case errors.Is(err, domain.ErrInvalidReturnDate):
		status, reason, msg = http.StatusBadRequest, "invalid_return_date", err.Error()
	case errors.Is(err, domain.ErrAlreadyReturned):
		status, reason, msg = http.StatusBadRequest, "already_returned", err.Error()
	case errors.Is(err, domain.ErrPaymentPending):
		status, reason, msg = http.StatusBadRequest, "payment_pending", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, reason, msg = http.StatusNotFound, "not_found", err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status, reason, msg = http.StatusForbidden, "forbidden", err.Error()
	case errors.Is(err, domain.ErrPaymentProvider):
		// Retryable; local state was rolled back before this surfaced.
		status, reason, msg = http.StatusBadGateway, "payment_provider_error", domain.ErrPaymentProvider.Error()
	default:
		logger.Error("Unhandled error in HTTP handler", "error", err)
	}

	writeJSON(w, status, ErrorResponse{Error: msg, Reason: reason})
}

func writeValidationError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, Reason: "validation_error"})
}
