package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	s := NewServer()
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", body["status"])
	}
}

func TestScrambleEndpoint(t *testing.T) {
	s := NewServer()
	req := httptest.NewRequest("GET", "/scramble", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /scramble = %d, want 200", rec.Code)
	}
	var body ScrambleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Facelets) != 54 {
		t.Errorf("facelets length = %d, want 54", len(body.Facelets))
	}
	if len(strings.Fields(body.Scramble)) == 0 {
		t.Error("scramble must contain moves")
	}
}

func TestSolveEndpointRejectsInvalidFacelets(t *testing.T) {
	s := NewServer()
	req := httptest.NewRequest("GET", "/solve/notacube", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("GET /solve/notacube = %d, want 400", rec.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Kind != "InvalidFaceletString" {
		t.Errorf("kind = %q, want InvalidFaceletString", body.Kind)
	}
}

func TestIndexServesPage(t *testing.T) {
	s := NewServer()
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Cube Solver") {
		t.Error("index page missing title")
	}
}
