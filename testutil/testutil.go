// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/feedbackboard/server/db"
	"github.com/feedbackboard/server/store"
)

// SetupTestDB creates a fresh SQLite database in a per-test temp dir
// with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "feedback.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewTestStore creates a store over a fresh test database
func NewTestStore(t *testing.T) (*store.FeedbackStore, *sql.DB) {
	t.Helper()

	conn := SetupTestDB(t)
	return store.New(conn), conn
}

// SeedFeedback inserts an item directly, bypassing store validation,
// and returns its ID
func SeedFeedback(t *testing.T, conn *sql.DB, title, category string, upvotes int, createdAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO feedback (id, title, description, category, upvotes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, title, "Seeded: "+title, category, upvotes, createdAt.UTC().Format(store.CreatedAtLayout))
	if err != nil {
		t.Fatalf("Failed to seed feedback: %v", err)
	}

	return id
}

// CountFeedback returns the number of persisted items
func CountFeedback(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM feedback").Scan(&count); err != nil {
		t.Fatalf("Failed to count feedback: %v", err)
	}
	return count
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
