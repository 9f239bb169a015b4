package middleware

import (
	"net/http"
	"strings"

	"portfolio-website/internal/auth"
)

// SessionCookie is the name of the HTTP-only cookie carrying the
// session token.
const SessionCookie = "auth-token"

// RequireAuth gates admin pages and mutating API calls. Admin pages
// other than the login page redirect to it when the session is missing
// or invalid; mutating API calls get a 401 JSON body instead, since
// API consumers are not browsers. The login and public contact
// endpoints are the only mutating calls allowed through without a
// session. Everything else passes untouched.
func RequireAuth(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			if strings.HasPrefix(path, "/admin") && path != "/admin/login" {
				if !hasValidSession(gate, r) {
					http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
					return
				}
			}

			if strings.HasPrefix(path, "/api/") && isMutating(r.Method) {
				if path != "/api/auth/login" && path != "/api/contact" {
					if !hasValidSession(gate, r) {
						w.Header().Set("Content-Type", "application/json")
						w.WriteHeader(http.StatusUnauthorized)
						w.Write([]byte(`{"error":"Unauthorized"}`))
						return
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}

func hasValidSession(gate *auth.Gate, r *http.Request) bool {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return false
	}
	return gate.TokenValid(cookie.Value)
}
