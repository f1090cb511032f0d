// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

package client

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/feedbackboard/server/models"
)

// Controller mirrors the browser-side state machine: the last-fetched
// list, the active filter/sort selection, and the persisted voted set.
// The marker is injected so tests can fake it.
type Controller struct {
	api    *Client
	marker VoteMarker

	mu       sync.Mutex
	items    []models.FeedbackItem
	category string
	sortBy   string
	fetchSeq uint64
}

func NewController(api *Client, marker VoteMarker) *Controller {
	return &Controller{
		api:    api,
		marker: marker,
		sortBy: models.SortRecent,
	}
}

// Items returns a copy of the last successfully fetched list.
func (c *Controller) Items() []models.FeedbackItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Selection returns the active category filter and sort order.
func (c *Controller) Selection() (category, sortBy string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.category, c.sortBy
}

// SelectCategory changes the filter (empty string selects all
// categories) and refetches.
func (c *Controller) SelectCategory(ctx context.Context, category string) error {
	c.mu.Lock()
	c.category = category
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SelectSort changes the sort order and refetches.
func (c *Controller) SelectSort(ctx context.Context, sortBy string) error {
	c.mu.Lock()
	c.sortBy = sortBy
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Select changes both filter and sort in one step with a single refetch.
func (c *Controller) Select(ctx context.Context, category, sortBy string) error {
	c.mu.Lock()
	c.category = category
	c.sortBy = sortBy
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Refresh refetches the list for the current selection and replaces the
// items wholesale. If the selection changed while the request was in
// flight the stale response is discarded: the latest selection wins.
// On failure the previously loaded items stay intact.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.fetchSeq++
	seq := c.fetchSeq
	category, sortBy := c.category, c.sortBy
	c.mu.Unlock()

	items, err := c.api.List(ctx, category, sortBy)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.fetchSeq {
		// A newer fetch superseded this one
		return nil
	}
	c.items = items
	return nil
}

// Submit sends the feedback and refetches the list. Re-deriving the new
// item's position locally is not worth replicating the server's
// ordering rules.
func (c *Controller) Submit(ctx context.Context, req models.SubmitFeedbackRequest) (models.FeedbackItem, error) {
	item, err := c.api.Submit(ctx, req)
	if err != nil {
		return models.FeedbackItem{}, err
	}
	if err := c.Refresh(ctx); err != nil {
		return item, err
	}
	return item, nil
}

// Upvote casts a vote unless the marker already holds the id, in which
// case nothing is sent and voted is false. On success the affected
// item's count is patched in place; a full refetch happens only when
// the active sort is mostUpvoted, since a local patch cannot re-derive
// the item's new rank.
func (c *Controller) Upvote(ctx context.Context, id string) (voted bool, err error) {
	if c.marker.Has(id) {
		return false, nil
	}

	item, err := c.api.Upvote(ctx, id)
	if err != nil {
		return false, err
	}

	if err := c.marker.Add(id); err != nil {
		// The vote already counted server-side; a marker write failure
		// only risks this profile voting again later.
		slog.Warn("failed to persist vote marker", "error", err, "feedback_id", id)
	}

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Upvotes = item.Upvotes
			break
		}
	}
	refetch := c.sortBy == models.SortMostUpvoted
	c.mu.Unlock()

	if refetch {
		return true, c.Refresh(ctx)
	}
	return true, nil
}

// HasVoted reports whether this profile already upvoted the item.
func (c *Controller) HasVoted(id string) bool {
	return c.marker.Has(id)
}
