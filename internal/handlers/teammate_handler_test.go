package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"teammate-feedback/internal/testutil"
)

func TestCreateTeammate(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	router := newTestRouter(containers.DB)

	rec := doJSON(t, router, http.MethodPost, "/api/teammates", "user-1", map[string]interface{}{
		"teammate": map[string]interface{}{"name": "Bob Builder"},
	})
	rec.AssertStatusCreated(t)

	teammate, ok := dataField(t, rec, "teammate").(map[string]interface{})
	if !ok {
		t.Fatalf("Expected teammate object in response, got %q", rec.Body.String())
	}
	if teammate["name"] != "Bob Builder" {
		t.Errorf("Expected name %q, got %v", "Bob Builder", teammate["name"])
	}
	if id, ok := teammate["id"].(float64); !ok || id <= 0 {
		t.Errorf("Expected positive teammate id, got %v", teammate["id"])
	}
}

func TestCreateTeammateValidation(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	router := newTestRouter(containers.DB)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing teammate", map[string]interface{}{}},
		{"null name", map[string]interface{}{"teammate": map[string]interface{}{"name": nil}}},
		{"empty name", map[string]interface{}{"teammate": map[string]interface{}{"name": ""}}},
		{"boolean name", map[string]interface{}{"teammate": map[string]interface{}{"name": true}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/teammates", "user-1", tc.body)
			rec.AssertStatusBadRequest(t)
			if code := errorCode(t, rec); code != "VALIDATION_ERROR" {
				t.Errorf("Expected VALIDATION_ERROR, got %q", code)
			}
		})
	}
}

func TestCreateTeammateSanitizesName(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	router := newTestRouter(containers.DB)

	rec := doJSON(t, router, http.MethodPost, "/api/teammates", "user-1", map[string]interface{}{
		"teammate": map[string]interface{}{"name": "  <script>alert(1)</script>  "},
	})
	rec.AssertStatusCreated(t)

	teammate, ok := dataField(t, rec, "teammate").(map[string]interface{})
	if !ok {
		t.Fatalf("Expected teammate object in response, got %q", rec.Body.String())
	}

	want := "&lt;script&gt;alert(1)&lt;/script&gt;"
	if teammate["name"] != want {
		t.Errorf("Expected escaped name %q, got %v", want, teammate["name"])
	}

	// The stored value must already be the escaped form
	var stored string
	err := containers.DB.QueryRow("SELECT name FROM teammates WHERE id = $1", int(teammate["id"].(float64))).Scan(&stored)
	if err != nil {
		t.Fatalf("Failed to read stored teammate: %v", err)
	}
	if stored != want {
		t.Errorf("Expected stored name %q, got %q", want, stored)
	}
}

func TestCreateTeammateSanitizesRegardlessOfContentType(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	router := newTestRouter(containers.DB)

	// Declaring a non-JSON Content-Type must not skip the escaping
	req := httptest.NewRequest(http.MethodPost, "/api/teammates",
		strings.NewReader(`{"teammate":{"name":"<script>alert(1)</script>"}}`))
	req.Header.Set("Content-Type", "text/plain")
	testutil.NewAuthHelper().AddAuthHeader(t, req, "user-1", "user-1@test.com")

	rec := testutil.NewTestResponse()
	router.ServeHTTP(rec, req)
	rec.AssertStatusCreated(t)

	teammate, ok := dataField(t, rec, "teammate").(map[string]interface{})
	if !ok {
		t.Fatalf("Expected teammate object in response, got %q", rec.Body.String())
	}

	want := "&lt;script&gt;alert(1)&lt;/script&gt;"
	var stored string
	err := containers.DB.QueryRow("SELECT name FROM teammates WHERE id = $1", int(teammate["id"].(float64))).Scan(&stored)
	if err != nil {
		t.Fatalf("Failed to read stored teammate: %v", err)
	}
	if stored != want {
		t.Errorf("Expected stored name %q, got %q", want, stored)
	}
}

func TestListTeammates(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	fixtures.CreateTeammate(t, "Zed Last")

	router := newTestRouter(containers.DB)

	rec := doJSON(t, router, http.MethodGet, "/api/teammates", "user-1", nil)
	rec.AssertStatusOK(t)

	teammates, ok := dataField(t, rec, "teammates").([]interface{})
	if !ok {
		t.Fatalf("Expected teammates array, got %q", rec.Body.String())
	}
	if len(teammates) != 2 {
		t.Fatalf("Expected 2 teammates, got %d", len(teammates))
	}

	// Sorted by name ascending
	first := teammates[0].(map[string]interface{})
	if first["name"] != "Alice Example" {
		t.Errorf("Expected first teammate %q, got %v", "Alice Example", first["name"])
	}
}

func TestTeammatesRequireAuth(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	router := newTestRouter(containers.DB)

	rec := doJSON(t, router, http.MethodGet, "/api/teammates", "", nil)
	rec.AssertStatusUnauthorized(t)
	if code := errorCode(t, rec); code != "UNAUTHORIZED" {
		t.Errorf("Expected UNAUTHORIZED, got %q", code)
	}
}
