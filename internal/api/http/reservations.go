package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"cafe-fausse/internal/domain"
	"cafe-fausse/internal/service"
)

type checkAvailabilityPayload struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
}

func (h *Handler) checkAvailability(w http.ResponseWriter, r *http.Request) {
	var payload checkAvailabilityPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	availability, err := h.Reservations.CheckAvailability(r.Context(), payload.Date, payload.Time, payload.Guests)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}

	message := "Tables are available"
	if !availability.Available {
		message = "Sorry, we are fully booked for this time slot"
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"available":        availability.Available,
		"tables_remaining": availability.TablesRemaining,
		"message":          message,
	})
}

type createReservationPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
	Newsletter      bool   `json:"newsletter_signup"`
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var payload createReservationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	res, err := h.Reservations.Create(r.Context(), service.CreateReservationRequest{
		Name:            payload.Name,
		Email:           payload.Email,
		Phone:           payload.Phone,
		Date:            payload.Date,
		Time:            payload.Time,
		Guests:          payload.Guests,
		SpecialRequests: payload.SpecialRequests,
		NewsletterOptIn: payload.Newsletter,
	})
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"success":        true,
		"message":        "Reservation confirmed",
		"reservation_id": res.ID,
		"table_number":   res.TableNumber,
		"time_slot":      domain.Slot(res.Date, res.Time),
	})
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Reservations.List(r.Context())
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"reservations": reservations,
	})
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	res, err := h.Reservations.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"reservation": res,
	})
}

type updateReservationPayload struct {
	TableNumber     *int    `json:"table_number"`
	Date            *string `json:"date"`
	Time            *string `json:"time"`
	TimeSlot        *string `json:"time_slot"`
	Guests          *int    `json:"guests"`
	SpecialRequests *string `json:"special_requests"`
	Status          *string `json:"status"`
	CustomerName    *string `json:"customer_name"`
	CustomerEmail   *string `json:"customer_email"`
	CustomerPhone   *string `json:"customer_phone"`
}

func (h *Handler) updateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	var payload updateReservationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	// The admin UI sends a combined time_slot; split it unless date/time
	// were given explicitly.
	if payload.TimeSlot != nil && payload.Date == nil && payload.Time == nil {
		date, timeOfDay, ok := splitSlot(*payload.TimeSlot)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid time_slot format")
			return
		}
		payload.Date, payload.Time = &date, &timeOfDay
	}

	res, err := h.Reservations.Update(r.Context(), id, domain.ReservationUpdate{
		TableNumber:     payload.TableNumber,
		Date:            payload.Date,
		Time:            payload.Time,
		Guests:          payload.Guests,
		SpecialRequests: payload.SpecialRequests,
		Status:          payload.Status,
		CustomerName:    payload.CustomerName,
		CustomerEmail:   payload.CustomerEmail,
		CustomerPhone:   payload.CustomerPhone,
	})
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"reservation": res,
	})
}

// splitSlot breaks "2006-01-02T15:04:05" into its date and time parts.
func splitSlot(slot string) (date, timeOfDay string, ok bool) {
	if len(slot) < 16 || slot[10] != 'T' {
		return "", "", false
	}
	return slot[:10], slot[11:16], true
}

func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	if err := h.Reservations.Cancel(r.Context(), id); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Reservation canceled",
	})
}

func (h *Handler) deleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	if err := h.Reservations.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Reservation deleted",
	})
}
