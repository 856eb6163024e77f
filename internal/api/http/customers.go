package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"cafe-fausse/internal/service"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Customers.List(r.Context())
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"customers": customers,
	})
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}

	customer, err := h.Customers.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"customer": customer,
	})
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}

	var payload struct {
		Name             *string `json:"name"`
		Email            *string `json:"email"`
		Phone            *string `json:"phone"`
		NewsletterSignup *bool   `json:"newsletter_signup"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	customer, err := h.Customers.Update(r.Context(), id, service.CustomerUpdate{
		Name:             payload.Name,
		Email:            payload.Email,
		Phone:            payload.Phone,
		NewsletterSignup: payload.NewsletterSignup,
	})
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"customer": customer,
	})
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}

	if err := h.Customers.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Customer deleted",
	})
}
