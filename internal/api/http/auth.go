package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"cafe-fausse/internal/service"
)

type contextKey string

const claimsKey contextKey = "claims"

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	token, err := h.Auth.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
	})
}

// requireAuth rejects requests without a valid bearer token and stashes the
// verified claims in the request context.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(w, http.StatusUnauthorized, "Missing bearer token")
			return
		}

		claims, err := h.Auth.VerifyToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

// requireAdmin additionally demands the admin role.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r.Context())
		if claims == nil || claims.Role != service.RoleAdmin {
			respondError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r)
	})
}

func claimsFrom(ctx context.Context) *service.Claims {
	claims, _ := ctx.Value(claimsKey).(*service.Claims)
	return claims
}
