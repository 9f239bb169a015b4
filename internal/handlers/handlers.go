package handlers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"portfolio-website/internal/auth"
	"portfolio-website/internal/content"
	"portfolio-website/internal/email"
	"portfolio-website/internal/middleware"
	"portfolio-website/internal/storage"
	"portfolio-website/internal/store"
)

const adminFile = "admin.json"

type Handler struct {
	Projects     *content.Projects
	CaseStudies  *content.CaseStudies
	Leadership   *content.Leadership
	Contacts     *content.Contacts
	Gate         *auth.Gate
	Store        *store.Store
	Mail         *email.Client
	Uploads      *storage.Uploader
	ContactEmail string
	Templates    *template.Template
}

func New(st *store.Store, gate *auth.Gate, mail *email.Client, uploads *storage.Uploader,
	contactEmail string, templates *template.Template) *Handler {

	return &Handler{
		Projects:     content.NewProjects(st),
		CaseStudies:  content.NewCaseStudies(st),
		Leadership:   content.NewLeadership(st),
		Contacts:     content.NewContacts(st),
		Gate:         gate,
		Store:        st,
		Mail:         mail,
		Uploads:      uploads,
		ContactEmail: contactEmail,
		Templates:    templates,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("handlers: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// hasSession re-checks the cookie inside a handler. The middleware only
// gates mutating API verbs, so read endpoints exposing admin-only data
// (the contact inbox) enforce the session themselves.
func (h *Handler) hasSession(r *http.Request) bool {
	cookie, err := r.Cookie(middleware.SessionCookie)
	if err != nil {
		return false
	}
	return h.Gate.TokenValid(cookie.Value)
}
