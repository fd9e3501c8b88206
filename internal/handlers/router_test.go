package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teammate-feedback/internal/auth"
	"teammate-feedback/internal/config"
	"teammate-feedback/internal/handlers"
	"teammate-feedback/internal/middleware"
	"teammate-feedback/internal/repository"
	"teammate-feedback/internal/service"
	"teammate-feedback/internal/testutil"
)

// newTestRouter wires the API routes the same way the server does, minus the
// global logging / CORS / rate limit layers
func newTestRouter(db *sql.DB) http.Handler {
	teammateRepo := repository.NewTeammateRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	authService := auth.NewService(&config.JWTConfig{
		Secret:     "test-secret-key-for-testing-only",
		Expiration: time.Hour,
	})
	teammateService := service.NewTeammateService(teammateRepo)
	feedbackService := service.NewFeedbackService(db, teammateRepo, catalogRepo, reviewRepo)

	authMw := middleware.NewAuthMiddleware(authService)
	teammateHandler := handlers.NewTeammateHandler(teammateService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	protected := func(h http.HandlerFunc) http.Handler {
		return authMw.Authenticate(middleware.SanitizeBody(h))
	}

	mux := http.NewServeMux()
	mux.Handle("POST /api/teammates", protected(teammateHandler.Create))
	mux.Handle("GET /api/teammates", protected(teammateHandler.List))
	mux.Handle("GET /api/feedback/{teammateId}", protected(feedbackHandler.Get))
	mux.Handle("POST /api/feedback/{teammateId}", protected(feedbackHandler.Submit))
	mux.Handle("PUT /api/feedback/{teammateId}/{reviewId}", protected(feedbackHandler.Update))
	mux.Handle("DELETE /api/feedback/{teammateId}/{reviewId}", protected(feedbackHandler.Delete))

	return mux
}

// doJSON sends an authenticated JSON request and returns the recorded response
func doJSON(t *testing.T, router http.Handler, method, url, userID string, body interface{}) *testutil.TestResponse {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		testutil.NewAuthHelper().AddAuthHeader(t, req, userID, userID+"@test.com")
	}

	rec := testutil.NewTestResponse()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the response body into a generic map
func decodeBody(t *testing.T, rec *testutil.TestResponse) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", rec.Body.String(), err)
	}
	return body
}

// errorCode extracts error.code from an error envelope
func errorCode(t *testing.T, rec *testutil.TestResponse) string {
	t.Helper()

	body := decodeBody(t, rec)
	errBody, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected error envelope, got %q", rec.Body.String())
	}
	code, _ := errBody["code"].(string)
	return code
}

// dataField extracts a field from the data envelope
func dataField(t *testing.T, rec *testutil.TestResponse, field string) interface{} {
	t.Helper()

	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected data envelope, got %q", rec.Body.String())
	}
	return data[field]
}
