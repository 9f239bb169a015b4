package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-website/internal/content"
	"portfolio-website/internal/models"
)

func (h *Handler) ListLeadership(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Leadership.List())
}

func (h *Handler) CreateLeadership(w http.ResponseWriter, r *http.Request) {
	var input models.LeadershipPosition
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Title == "" || input.Organization == "" {
		writeError(w, http.StatusBadRequest, "Title and Organization are required")
		return
	}

	position, err := h.Leadership.Create(input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create position")
		return
	}

	writeJSON(w, http.StatusCreated, position)
}

func (h *Handler) GetLeadership(w http.ResponseWriter, r *http.Request) {
	position, err := h.Leadership.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Position not found")
		return
	}

	writeJSON(w, http.StatusOK, position)
}

func (h *Handler) UpdateLeadership(w http.ResponseWriter, r *http.Request) {
	var patch content.LeadershipPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	position, err := h.Leadership.Update(chi.URLParam(r, "id"), patch)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Position not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update position")
		return
	}

	writeJSON(w, http.StatusOK, position)
}

func (h *Handler) DeleteLeadership(w http.ResponseWriter, r *http.Request) {
	found, err := h.Leadership.Delete(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete position")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Position not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
