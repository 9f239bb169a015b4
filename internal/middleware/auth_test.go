package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-website/internal/auth"
	"portfolio-website/internal/middleware"
)

func newGate(t *testing.T) *auth.Gate {
	t.Helper()
	gate, err := auth.New("test-secret")
	require.NoError(t, err)
	return gate
}

func guarded(t *testing.T, gate *auth.Gate) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})
	return middleware.RequireAuth(gate)(next)
}

func sessionCookie(t *testing.T, gate *auth.Gate) *http.Cookie {
	t.Helper()
	token, err := gate.IssueToken("admin@example.com", "Admin")
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func TestMutatingAPIWithoutSessionIs401(t *testing.T) {
	gate := newGate(t)
	handler := guarded(t, gate)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		req := httptest.NewRequest(method, "/api/projects/some-id", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, method)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String(), method)
	}
}

func TestMutatingAPIWithSessionPasses(t *testing.T) {
	gate := newGate(t)
	handler := guarded(t, gate)

	req := httptest.NewRequest(http.MethodPut, "/api/projects/some-id", nil)
	req.AddCookie(sessionCookie(t, gate))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInvalidTokenIsRejected(t *testing.T) {
	gate := newGate(t)
	handler := guarded(t, gate)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "garbage"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWhitelistedPublicEndpointsPass(t *testing.T) {
	gate := newGate(t)
	handler := guarded(t, gate)

	for _, path := range []string{"/api/contact", "/api/auth/login"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAPIReadsPassWithoutSession(t *testing.T) {
	gate := newGate(t)
	handler := guarded(t, gate)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminPagesRedirectWithoutSession(t *testing.T) {
	gate := newGate(t)
	handler := guarded(t, gate)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestAdminLoginPageIsPublic(t *testing.T) {
	gate := newGate(t)
	handler := guarded(t, gate)

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminPagesPassWithSession(t *testing.T) {
	gate := newGate(t)
	handler := guarded(t, gate)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(sessionCookie(t, gate))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnrelatedPathsPassThrough(t *testing.T) {
	gate := newGate(t)
	handler := guarded(t, gate)

	req := httptest.NewRequest(http.MethodGet, "/uploads/photo.png", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
