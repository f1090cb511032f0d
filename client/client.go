// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/feedbackboard/server/models"
)

// APIError is a response the server answered with success=false.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

// Client is a typed HTTP client for the feedback API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit sends a new feedback item and returns the created item.
func (c *Client) Submit(ctx context.Context, req models.SubmitFeedbackRequest) (models.FeedbackItem, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.FeedbackItem{}, err
	}

	var resp models.ItemResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/feedback", body, &resp); err != nil {
		return models.FeedbackItem{}, err
	}
	return resp.Data, nil
}

// List fetches items, optionally filtered by category and ordered by
// sortBy. Empty strings omit the corresponding query parameter.
func (c *Client) List(ctx context.Context, category, sortBy string) ([]models.FeedbackItem, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if sortBy != "" {
		q.Set("sortBy", sortBy)
	}
	path := "/api/v1/feedback"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp models.ListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Get fetches a single item by id.
func (c *Client) Get(ctx context.Context, id string) (models.FeedbackItem, error) {
	var resp models.ItemResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/feedback/"+url.PathEscape(id), nil, &resp); err != nil {
		return models.FeedbackItem{}, err
	}
	return resp.Data, nil
}

// Upvote increments the item's counter and returns the post-increment
// item. The server does not deduplicate; callers go through Controller
// for the one-vote-per-profile behavior.
func (c *Client) Upvote(ctx context.Context, id string) (models.FeedbackItem, error) {
	var resp models.ItemResponse
	if err := c.do(ctx, http.MethodPut, "/api/v1/feedback/"+url.PathEscape(id)+"/upvote", nil, &resp); err != nil {
		return models.FeedbackItem{}, err
	}
	return resp.Data, nil
}

// do issues the request and decodes the envelope. Error statuses become
// an *APIError; transport failures are wrapped.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return &APIError{Status: resp.StatusCode}
		}
		return &APIError{Status: resp.StatusCode, Message: errResp.Message}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
