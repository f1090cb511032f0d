// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

package client_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/feedbackboard/server/client"
	"github.com/feedbackboard/server/models"
	"github.com/feedbackboard/server/router"
	"github.com/feedbackboard/server/store"
	"github.com/feedbackboard/server/testutil"
)

// newTestServer runs the real router over a fresh database and returns
// a client pointed at it.
func newTestServer(t *testing.T) (*client.Client, *sql.DB, *httptest.Server) {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	srv := httptest.NewServer(router.NewRouter(store.New(conn)))
	t.Cleanup(srv.Close)

	return client.New(srv.URL), conn, srv
}

func TestClientSubmitAndGet(t *testing.T) {
	api, _, _ := newTestServer(t)
	ctx := context.Background()

	created, err := api.Submit(ctx, models.SubmitFeedbackRequest{
		Title:       "Keyboard shortcuts",
		Description: "Navigating with the mouse is slow",
		Category:    models.CategoryImprovement,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Expected a server-assigned id")
	}
	if created.Upvotes != 0 {
		t.Errorf("Expected 0 upvotes on a new item, got %d", created.Upvotes)
	}

	fetched, err := api.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if fetched != created {
		t.Errorf("Get returned a different item.\ncreated: %+v\nfetched: %+v", created, fetched)
	}
}

func TestClientSubmit_ValidationError(t *testing.T) {
	api, conn, _ := newTestServer(t)

	_, err := api.Submit(context.Background(), models.SubmitFeedbackRequest{
		Title: "No description or category",
	})
	if err == nil {
		t.Fatal("Expected an error for an incomplete submission")
	}

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected an *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", apiErr.Status)
	}
	if apiErr.Message != "Please provide title, description, and category" {
		t.Errorf("Unexpected message %q", apiErr.Message)
	}
	if testutil.CountFeedback(t, conn) != 0 {
		t.Error("Expected no persisted item after a rejected submission")
	}
}

func TestClientGet_Errors(t *testing.T) {
	api, _, _ := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		id          string
		wantStatus  int
		wantMessage string
	}{
		{"unknown id", uuid.NewString(), http.StatusNotFound, "Feedback item not found"},
		{"malformed id", "not-a-uuid", http.StatusBadRequest, "Invalid feedback ID format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := api.Get(ctx, tc.id)

			var apiErr *client.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Expected an *APIError, got %T: %v", err, err)
			}
			if apiErr.Status != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, apiErr.Status)
			}
			if apiErr.Message != tc.wantMessage {
				t.Errorf("Expected message %q, got %q", tc.wantMessage, apiErr.Message)
			}
		})
	}
}

func TestClientList_FilterAndSort(t *testing.T) {
	api, conn, _ := newTestServer(t)

	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	testutil.SeedFeedback(t, conn, "low", "bug", 1, base)
	testutil.SeedFeedback(t, conn, "high", "bug", 7, base.Add(time.Minute))
	testutil.SeedFeedback(t, conn, "unrelated", "feature", 50, base)

	items, err := api.List(context.Background(), models.CategoryBug, models.SortMostUpvoted)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 bug items, got %d", len(items))
	}
	if items[0].Title != "high" || items[1].Title != "low" {
		t.Errorf("Expected order [high low], got [%s %s]", items[0].Title, items[1].Title)
	}
}

func TestClientUpvote(t *testing.T) {
	api, conn, _ := newTestServer(t)

	id := testutil.SeedFeedback(t, conn, "voted on", "feature", 4, time.Now())

	item, err := api.Upvote(context.Background(), id)
	if err != nil {
		t.Fatalf("Upvote failed: %v", err)
	}
	if item.Upvotes != 5 {
		t.Errorf("Expected post-increment count 5, got %d", item.Upvotes)
	}
}

func TestClientTransportFailure(t *testing.T) {
	api, _, srv := newTestServer(t)
	srv.Close()

	_, err := api.List(context.Background(), "", "")
	if err == nil {
		t.Fatal("Expected an error after the server shut down")
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		t.Errorf("Transport failures must not look like API errors: %v", err)
	}
	if !strings.Contains(err.Error(), "request failed") {
		t.Errorf("Expected a wrapped transport error, got %q", err.Error())
	}
}
