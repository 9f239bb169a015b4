package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-website/internal/content"
	"portfolio-website/internal/models"
)

func (h *Handler) ListCaseStudies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	status := query.Get("status")
	if status == "" {
		status = models.StatusPublished
	}

	filter := content.CaseStudyFilter{Status: status}
	if query.Get("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}

	writeJSON(w, http.StatusOK, h.CaseStudies.List(filter))
}

func (h *Handler) CreateCaseStudy(w http.ResponseWriter, r *http.Request) {
	var input models.CaseStudy
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Title == "" || input.Client == "" || input.Challenge == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	caseStudy, err := h.CaseStudies.Create(input)
	if err != nil {
		if errors.Is(err, content.ErrSlugTaken) {
			writeError(w, http.StatusConflict, "A case study with this slug already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create case study")
		return
	}

	writeJSON(w, http.StatusCreated, caseStudy)
}

func (h *Handler) GetCaseStudy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	caseStudy, err := h.CaseStudies.GetByID(id)
	if errors.Is(err, content.ErrNotFound) {
		caseStudy, err = h.CaseStudies.GetBySlug(id)
	}
	if err != nil {
		writeError(w, http.StatusNotFound, "Case Study not found")
		return
	}

	writeJSON(w, http.StatusOK, caseStudy)
}

func (h *Handler) UpdateCaseStudy(w http.ResponseWriter, r *http.Request) {
	var patch content.CaseStudyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	caseStudy, err := h.CaseStudies.Update(chi.URLParam(r, "id"), patch)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Case Study not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update case study")
		return
	}

	writeJSON(w, http.StatusOK, caseStudy)
}

func (h *Handler) DeleteCaseStudy(w http.ResponseWriter, r *http.Request) {
	found, err := h.CaseStudies.Delete(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete case study")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Case Study not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
