package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"cafe-fausse/internal/domain"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menu.Categories(r.Context())
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": categories,
	})
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	category, items, err := h.Menu.CategoryWithItems(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"category": category,
		"items":    items,
	})
}

func (h *Handler) listCategoryItems(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	items, err := h.Menu.Items(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"items":   items,
	})
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	categoryID := 0
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid category id")
			return
		}
		categoryID = id
	}

	items, err := h.Menu.Items(r.Context(), categoryID)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"items":   items,
	})
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	item, err := h.Menu.Item(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"item":    item,
	})
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := h.Menu.CreateItem(r.Context(), &item); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"item":    item,
	})
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	item.ID = id

	if err := h.Menu.UpdateItem(r.Context(), &item); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"item":    item,
	})
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	if err := h.Menu.DeleteItem(r.Context(), id); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Menu item deleted",
	})
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := h.Menu.CreateCategory(r.Context(), &category); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"category": category,
	})
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	category.ID = id

	if err := h.Menu.UpdateCategory(r.Context(), &category); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"category": category,
	})
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := h.Menu.DeleteCategory(r.Context(), id); err != nil {
		writeServiceError(w, h.Log, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Category deleted",
	})
}

func (h *Handler) menuQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.QR.Generate()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
