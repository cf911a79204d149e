package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/agoravote/agora/cliparse"
	"github.com/agoravote/agora/db"
	"github.com/agoravote/agora/models"
)

// SetupTestDB opens a fresh in-memory database with the full schema.
// The single-connection limit keeps the one in-memory database shared
// between every statement and serializes conflicting writes the way a
// server-side database would.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4280,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		IPHashSalt:   "test-ip-salt",
	}
}

// CreateTestTopic inserts a topic directly and returns its ID.
// status should be WAITING, OPEN, or CLOSED; timestamps are filled in to
// match the requested status.
func CreateTestTopic(t *testing.T, conn *sql.DB, status string) string {
	t.Helper()

	id := uuid.NewString()
	now := time.Now()

	var opensAt, closesAt *time.Time
	if status == models.StatusOpen || status == models.StatusClosed {
		opensAt = &now
	}
	if status == models.StatusClosed {
		closesAt = &now
	}

	_, err := conn.Exec(`
		INSERT INTO topic (id, title, description, created_by, status, opens_at, closes_at, created_at)
		VALUES ($1, 'Test Topic', 'A test topic', 'creator-token-1', $2, $3, $4, $5)
	`, id, status, opensAt, closesAt, now)
	if err != nil {
		t.Fatalf("Failed to create test topic: %v", err)
	}

	return id
}

// CastTestVote inserts a vote row directly and returns its ID.
func CastTestVote(t *testing.T, conn *sql.DB, topicID, voterID, choice string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO vote (id, topic_id, voter_id, choice, cast_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, topicID, voterID, choice, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return id
}

// SetTopicDeadline rewrites a topic's close deadline, for expiry tests.
func SetTopicDeadline(t *testing.T, conn *sql.DB, topicID string, closesAt time.Time) {
	t.Helper()

	_, err := conn.Exec(`UPDATE topic SET closes_at = $1 WHERE id = $2`, closesAt, topicID)
	if err != nil {
		t.Fatalf("Failed to set topic deadline: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
