package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"portfolio-website/internal/auth"
	"portfolio-website/internal/middleware"
	"portfolio-website/internal/models"
	"portfolio-website/internal/store"
)

// Login checks the submitted credentials against the singleton admin
// record and, on success, sets the session cookie. Every failure mode
// (no admin file, wrong email, wrong password) looks the same to the
// caller.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := store.ReadSingleton[models.AdminUser](h.Store, adminFile)
	if err != nil {
		log.Printf("handlers: reading admin record: %v", err)
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if input.Email != admin.Email || auth.CheckPassword(input.Password, admin.PasswordHash) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.Gate.IssueToken(admin.Email, admin.Name)
	if err != nil {
		log.Printf("handlers: issuing session token: %v", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    map[string]string{"email": admin.Email, "name": admin.Name},
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
