package httpapi

import (
	"encoding/json"
	"net/http"
)

type newsletterPayload struct {
	Email string `json:"email"`
}

func (h *Handler) subscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var payload newsletterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	reactivated, err := h.Newsletter.Subscribe(r.Context(), payload.Email)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}

	message := "Thank you for subscribing to our newsletter"
	if reactivated {
		message = "Welcome back! Your subscription has been reactivated"
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": message,
	})
}

func (h *Handler) unsubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var payload newsletterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := h.Newsletter.Unsubscribe(r.Context(), payload.Email); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "You have been unsubscribed",
	})
}

func (h *Handler) listSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.Newsletter.Subscribers(r.Context())
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"subscribers": subscribers,
	})
}
