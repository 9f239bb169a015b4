package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-website/internal/content"
	"portfolio-website/internal/models"
)

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	status := query.Get("status")
	if status == "" {
		// Public API defaults to published content.
		status = models.StatusPublished
	}

	filter := content.ProjectFilter{
		Category: query.Get("category"),
		Status:   status,
	}
	if query.Get("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}

	writeJSON(w, http.StatusOK, h.Projects.List(filter))
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var input models.Project
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Title == "" || input.Category == "" || input.Description == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	project, err := h.Projects.Create(input)
	if err != nil {
		if errors.Is(err, content.ErrSlugTaken) {
			writeError(w, http.StatusConflict, "A project with this slug already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

// GetProject looks up by id and falls back to slug, so the public site
// can fetch by slug through the same route the admin uses by id.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.Projects.GetByID(id)
	if errors.Is(err, content.ErrNotFound) {
		project, err = h.Projects.GetBySlug(id)
	}
	if err != nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var patch content.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.Projects.Update(chi.URLParam(r, "id"), patch)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update project")
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	found, err := h.Projects.Delete(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
