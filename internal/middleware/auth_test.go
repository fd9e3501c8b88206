package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teammate-feedback/internal/auth"
	"teammate-feedback/internal/config"
	"teammate-feedback/internal/models"
)

func newTestAuthMiddleware() (*AuthMiddleware, *auth.Service) {
	svc := auth.NewService(&config.JWTConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
	})
	return NewAuthMiddleware(svc), svc
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return resp
}

func TestAuthenticateMissingHeader(t *testing.T) {
	mw, _ := newTestAuthMiddleware()

	called := false
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/teammates", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
	if called {
		t.Error("Handler should not run without a token")
	}

	resp := decodeError(t, rec)
	if resp.Error.Code != "UNAUTHORIZED" {
		t.Errorf("Expected UNAUTHORIZED, got %s", resp.Error.Code)
	}
	if resp.Error.Details.Message != "No authorization token provided" {
		t.Errorf("Unexpected message: %s", resp.Error.Details.Message)
	}
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	mw, _ := newTestAuthMiddleware()

	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/teammates", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error.Code != "UNAUTHORIZED" {
		t.Errorf("Expected UNAUTHORIZED, got %s", resp.Error.Code)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	mw, _ := newTestAuthMiddleware()

	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/teammates", nil)
	req.Header.Set("Authorization", "Bearer not-a-valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error.Code != "INVALID_TOKEN" {
		t.Errorf("Expected INVALID_TOKEN, got %s", resp.Error.Code)
	}
}

func TestAuthenticateValidToken(t *testing.T) {
	mw, svc := newTestAuthMiddleware()

	token, err := svc.GenerateToken("user-1", "user@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	var gotID, gotEmail string
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetUserID(r)
		gotEmail, _ = GetUserEmail(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/teammates", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if gotID != "user-1" {
		t.Errorf("Expected user-1 in context, got %q", gotID)
	}
	if gotEmail != "user@example.com" {
		t.Errorf("Expected email in context, got %q", gotEmail)
	}
}
