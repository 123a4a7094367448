package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestError(t *testing.T) {
	rr := httptest.NewRecorder()
	Error(rr, http.StatusNotFound, "Patient not found")

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got '%s'", ct)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body) != 1 || body["error"] != "Patient not found" {
		t.Errorf("Expected only an error field, got %v", body)
	}
}

func TestDecode(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("Valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann"}`))
		var p payload
		if err := Decode(req, &p); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if p.Name != "Ann" {
			t.Errorf("Expected name 'Ann', got '%s'", p.Name)
		}
	})

	t.Run("Empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(""))
		var p payload
		if err := Decode(req, &p); err != nil {
			t.Errorf("Expected no error for empty body, got: %v", err)
		}
	})

	t.Run("Malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		var p payload
		if err := Decode(req, &p); err == nil {
			t.Error("Expected error for malformed body")
		}
	})
}
