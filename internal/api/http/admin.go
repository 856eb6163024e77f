package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"cafe-fausse/internal/service"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Admin.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":               true,
		"stats":                 stats,
		"upcoming_reservations": stats.UpcomingReservations,
	})
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Admin.Employees(r.Context())
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"employees": employees,
	})
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid employee id")
		return
	}

	employee, err := h.Admin.Employee(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"employee": employee,
	})
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	employee, err := h.Admin.CreateEmployee(r.Context(), payload.Username, payload.Password, payload.Role)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"employee": employee,
	})
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid employee id")
		return
	}

	var payload struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
		Role     *string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	employee, err := h.Admin.UpdateEmployee(r.Context(), id, service.EmployeeUpdate{
		Username: payload.Username,
		Password: payload.Password,
		Role:     payload.Role,
	})
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"employee": employee,
	})
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid employee id")
		return
	}

	if err := h.Admin.DeleteEmployee(r.Context(), id); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Employee deleted",
	})
}
