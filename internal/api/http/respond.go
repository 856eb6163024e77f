package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"cafe-fausse/internal/domain"
	"cafe-fausse/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

// writeServiceError translates service and domain errors into HTTP
// responses. Validation messages pass through verbatim; infrastructure
// failures hide behind a generic message.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, domain.ErrNoTableAvailable):
		respondError(w, http.StatusConflict, "Sorry, we are fully booked for this time slot")
	case errors.Is(err, domain.ErrTableConflict):
		respondError(w, http.StatusConflict, "The requested table is no longer available for this time slot")
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		respondError(w, http.StatusConflict, "Reservation can no longer be changed")
	case errors.Is(err, domain.ErrAlreadySubscribed):
		respondError(w, http.StatusConflict, "This email is already subscribed")
	case errors.Is(err, domain.ErrNotSubscribed):
		respondError(w, http.StatusNotFound, "This email is not subscribed")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, domain.ErrUsernameTaken):
		respondError(w, http.StatusConflict, "Username is already taken")
	case errors.Is(err, domain.ErrStoreUnavailable):
		respondError(w, http.StatusServiceUnavailable, "Service temporarily unavailable, please try again")
	default:
		log.Error("unhandled service error", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
