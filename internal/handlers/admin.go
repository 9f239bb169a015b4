package handlers

import (
	"net/http"

	"portfolio-website/internal/content"
	"portfolio-website/internal/middleware"
	"portfolio-website/internal/models"
)

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.Templates.ExecuteTemplate(w, "login.html", nil)
}

// Dashboard shows content counts. The middleware has already verified
// the session by the time this runs.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var name string
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		if claims, err := h.Gate.VerifyToken(cookie.Value); err == nil {
			name = claims.Name
		}
	}

	published := models.StatusPublished
	data := map[string]interface{}{
		"Name":        name,
		"Projects":    len(h.Projects.List(content.ProjectFilter{})),
		"Published":   len(h.Projects.List(content.ProjectFilter{Status: published})),
		"CaseStudies": len(h.CaseStudies.List(content.CaseStudyFilter{})),
		"Leadership":  len(h.Leadership.List()),
		"Contacts":    len(h.Contacts.List()),
	}

	h.Templates.ExecuteTemplate(w, "dashboard.html", data)
}
