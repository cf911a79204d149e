package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agoravote/agora/models"
)

func TestWithLogging(t *testing.T) {
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("brewed"))
	}

	wrapped := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()
	wrapped(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status 418, got %d", w.Code)
	}
	if w.Body.String() != "brewed" {
		t.Errorf("Expected body 'brewed', got '%s'", w.Body.String())
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusConflict, "already voted")

	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if resp.Error != http.StatusText(http.StatusConflict) {
		t.Errorf("Expected error %q, got %q", http.StatusText(http.StatusConflict), resp.Error)
	}
	if resp.Message != "already voted" {
		t.Errorf("Expected message 'already voted', got %q", resp.Message)
	}
}

func TestParseJSONBody(t *testing.T) {
	payload := models.CastVoteRequest{Vote: "YES"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/topics/1/vote", bytes.NewReader(body))

	var parsed models.CastVoteRequest
	if err := ParseJSONBody(req, &parsed); err != nil {
		t.Fatalf("ParseJSONBody() error = %v", err)
	}
	if parsed.Vote != "YES" {
		t.Errorf("Expected vote YES, got %q", parsed.Vote)
	}

	badReq := httptest.NewRequest("POST", "/topics/1/vote", strings.NewReader("{not json"))
	if err := ParseJSONBody(badReq, &parsed); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestCORSPreflights(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the inner handler")
	})

	req := httptest.NewRequest(http.MethodOptions, "/topics", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	CORS(inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected origin echo, got %q", got)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "X-Identity-Token") {
		t.Error("Expected X-Identity-Token in allowed headers")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(r *http.Request)
		want    string
	}{
		{
			"x-forwarded-for single",
			func(r *http.Request) { r.Header.Set("X-Forwarded-For", "203.0.113.5") },
			"203.0.113.5",
		},
		{
			"x-forwarded-for chain",
			func(r *http.Request) { r.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1") },
			"203.0.113.5",
		},
		{
			"x-real-ip",
			func(r *http.Request) { r.Header.Set("X-Real-IP", "198.51.100.7") },
			"198.51.100.7",
		},
		{
			"remote addr fallback",
			func(r *http.Request) { r.RemoteAddr = "192.0.2.9:54321" },
			"192.0.2.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			tt.setup(req)
			if got := GetClientIP(req); got != tt.want {
				t.Errorf("GetClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
