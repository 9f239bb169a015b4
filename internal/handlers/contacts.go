package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-website/internal/content"
	"portfolio-website/internal/email"
	"portfolio-website/internal/models"
)

// minMessageLength keeps drive-by submissions out of the inbox.
const minMessageLength = 50

// SubmitContact is the public contact form endpoint: it stores the
// submission, then emails the site owner. The store happens first so a
// mail-provider outage never loses the message itself.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var input models.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if len(input.Message) < minMessageLength {
		writeError(w, http.StatusBadRequest, "Message must be at least 50 characters")
		return
	}

	contact, err := h.Contacts.Create(input)
	if err != nil {
		log.Printf("handlers: storing contact submission: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit form. Please try again.")
		return
	}

	notification := email.ContactNotification(contact.Name, contact.Email, contact.Company,
		contact.Subject, contact.Message)
	if err := h.Mail.Send(h.ContactEmail, "New Contact: "+contact.Subject, notification); err != nil {
		log.Printf("handlers: sending contact notification: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit form. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Thank you! I'll respond within 24 hours.",
	})
}

// ListContacts serves the admin inbox. GET requests bypass the
// middleware, so the session check lives here.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	if !h.hasSession(r) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, h.Contacts.List())
}

func (h *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := h.Contacts.UpdateStatus(chi.URLParam(r, "id"), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrNotFound):
			writeError(w, http.StatusNotFound, "Submission not found")
		case errors.Is(err, content.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "Invalid status")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to update submission")
		}
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	found, err := h.Contacts.Delete(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete submission")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Submission not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
