// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

package models

import "time"

// Feedback category constants
const (
	CategoryFeature     = "feature"
	CategoryBug         = "bug"
	CategoryImprovement = "improvement"
	CategoryOther       = "other"
)

// Sort order constants for the list endpoint
const (
	SortRecent      = "recent"
	SortMostUpvoted = "mostUpvoted"
)

// Categories lists every valid category in display order.
var Categories = []string{CategoryFeature, CategoryBug, CategoryImprovement, CategoryOther}

// Request types

type SubmitFeedbackRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	Category    string `json:"category" validate:"required,oneof=feature bug improvement other"`
}

// Domain types

type FeedbackItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Upvotes     int       `json:"upvotes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Response types
//
// Every endpoint answers with the same envelope shape: success, then
// data/count/message as applicable.

type ItemResponse struct {
	Success bool         `json:"success"`
	Data    FeedbackItem `json:"data"`
	Message string       `json:"message,omitempty"`
}

type ListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Data    []FeedbackItem `json:"data"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
