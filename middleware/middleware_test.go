// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/ranked-pick/models"
)

func TestWithLogging_PassesThrough(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"tally", http.StatusOK, `{"winner":"A"}`},
		{"bad ballots", http.StatusBadRequest, `{"error":"Bad Request"}`},
		{"no database", http.StatusServiceUnavailable, "unavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest("POST", "/tallies", nil))

			if !called {
				t.Fatal("Expected handler to be called")
			}
			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestWithLogging_RecordsStatus(t *testing.T) {
	var recorded int
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		recorded = w.(*statusRecorder).status
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/", nil))

	if recorded != http.StatusTeapot {
		t.Errorf("Expected recorded status 418, got %d", recorded)
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status 418, got %d", w.Code)
	}
}

func TestWithLogging_DefaultStatus(t *testing.T) {
	var recorded int
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
		recorded = w.(*statusRecorder).status
	})

	handler(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	if recorded != http.StatusOK {
		t.Errorf("Expected implicit status 200, got %d", recorded)
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusOK, models.MethodsResponse{
		Methods: []models.MethodInfo{{Method: "irv", Selector: 1}},
	})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got '%s'", ct)
	}

	var resp models.MethodsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Methods) != 1 || resp.Methods[0].Method != "irv" || resp.Methods[0].Selector != 1 {
		t.Errorf("Unexpected body: %+v", resp)
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		statusCode int
		message    string
		errorText  string
	}{
		{http.StatusBadRequest, "at least one ballot is required", "Bad Request"},
		{http.StatusNotFound, "Election not found", "Not Found"},
		{http.StatusServiceUnavailable, "No ballot database configured", "Service Unavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.errorText, func(t *testing.T) {
			w := httptest.NewRecorder()
			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Error != tc.errorText {
				t.Errorf("Expected error '%s', got '%s'", tc.errorText, resp.Error)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("tally request", func(t *testing.T) {
		body := `{"method":"borda","ballots":["3 A,B","B>A"]}`
		req := httptest.NewRequest("POST", "/tallies", strings.NewReader(body))

		var parsed models.TallyRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if parsed.Method != "borda" || len(parsed.Ballots) != 2 || parsed.Ballots[1] != "B>A" {
			t.Errorf("Unexpected request: %+v", parsed)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/tallies", strings.NewReader("{ballots:"))

		var parsed models.TallyRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/tallies", strings.NewReader(""))

		var parsed models.TallyRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for empty body")
		}
	})

	t.Run("oversized body", func(t *testing.T) {
		body := `{"ballots":["` + strings.Repeat("A", MaxBodyBytes) + `"]}`
		req := httptest.NewRequest("POST", "/tallies", strings.NewReader(body))

		var parsed models.TallyRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for body over the limit")
		}
	})
}

func TestCORS(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("echoes origin", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/tallies", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
			t.Errorf("Expected origin to be echoed, got '%s'", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
			t.Errorf("Unexpected allowed methods '%s'", got)
		}
	})

	t.Run("wildcard without origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/methods", nil))

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Expected '*', got '%s'", got)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		called = false
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/tallies", nil))

		if called {
			t.Error("Preflight should not reach the handler")
		}
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
			t.Errorf("Expected Content-Type header allowed, got '%s'", got)
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.2:5000", "203.0.113.7"},
		{"forwarded single", map[string]string{"X-Forwarded-For": "203.0.113.7"}, "10.0.0.2:5000", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "10.0.0.2:5000", "198.51.100.4"},
		{"forwarded wins", map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.4"}, "10.0.0.2:5000", "203.0.113.7"},
		{"remote addr", nil, "192.0.2.1:1234", "192.0.2.1"},
		{"ipv6 remote addr", nil, "[::1]:1234", "[::1]"},
		{"remote addr without port", nil, "192.0.2.1", "192.0.2.1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expected {
				t.Errorf("Expected '%s', got '%s'", tc.expected, got)
			}
		})
	}
}
