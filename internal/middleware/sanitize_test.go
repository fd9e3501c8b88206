package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSanitizeBodyEscapesStrings(t *testing.T) {
	var seen map[string]interface{}
	handler := SanitizeBody(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &seen); err != nil {
			t.Fatalf("Handler received invalid JSON: %v", err)
		}
	}))

	payload := `{"teammate":{"name":"  <script>alert(1)</script>  "}}`
	req := httptest.NewRequest(http.MethodPost, "/api/teammates", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	teammate := seen["teammate"].(map[string]interface{})
	if teammate["name"] != "&lt;script&gt;alert(1)&lt;/script&gt;" {
		t.Errorf("Expected escaped and trimmed name, got %q", teammate["name"])
	}
}

func TestSanitizeBodyLeavesNonStringsAlone(t *testing.T) {
	var seen map[string]interface{}
	handler := SanitizeBody(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &seen)
	}))

	payload := `{"value":-1,"flag":true,"nothing":null}`
	req := httptest.NewRequest(http.MethodPost, "/api/feedback/1", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen["value"] != float64(-1) {
		t.Errorf("Number was altered: %v", seen["value"])
	}
	if seen["flag"] != true {
		t.Errorf("Boolean was altered: %v", seen["flag"])
	}
	if v, ok := seen["nothing"]; !ok || v != nil {
		t.Errorf("Null was altered: %v", v)
	}
}

func TestSanitizeBodyIgnoresContentType(t *testing.T) {
	var seen map[string]interface{}
	handler := SanitizeBody(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &seen); err != nil {
			t.Fatalf("Handler received invalid JSON: %v", err)
		}
	}))

	// A JSON body must be escaped even when the client lies about its type
	payload := `{"teammate":{"name":"<script>alert(1)</script>"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/teammates", strings.NewReader(payload))
	req.Header.Set("Content-Type", "text/plain")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	teammate := seen["teammate"].(map[string]interface{})
	if teammate["name"] != "&lt;script&gt;alert(1)&lt;/script&gt;" {
		t.Errorf("Expected escaped name regardless of Content-Type, got %q", teammate["name"])
	}
}

func TestSanitizeBodySkipsGetRequests(t *testing.T) {
	called := false
	handler := SanitizeBody(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/teammates", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("GET request should pass through")
	}
}

func TestSanitizeBodyPassesMalformedJSONThrough(t *testing.T) {
	var received string
	handler := SanitizeBody(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/teammates", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if received != "{not json" {
		t.Errorf("Malformed body should reach the handler unchanged, got %q", received)
	}
}
