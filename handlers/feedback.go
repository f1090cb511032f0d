// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/feedbackboard/server/middleware"
	"github.com/feedbackboard/server/models"
	"github.com/feedbackboard/server/store"
)

type FeedbackHandler struct {
	store *store.FeedbackStore
}

func NewFeedbackHandler(st *store.FeedbackStore) *FeedbackHandler {
	return &FeedbackHandler{store: st}
}

// Submit handles POST /api/v1/feedback
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitFeedbackRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// All three fields must be present before the store sees the request.
	if strings.TrimSpace(req.Title) == "" || req.Description == "" || req.Category == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please provide title, description, and category")
		return
	}

	item, err := h.store.Create(r.Context(), req)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
			return
		}
		slog.Error("failed to insert feedback", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error while submitting feedback")
		return
	}

	slog.Info("feedback submitted", "feedback_id", item.ID, "category", item.Category)

	middleware.JSONResponse(w, http.StatusCreated, models.ItemResponse{
		Success: true,
		Data:    item,
		Message: "Feedback submitted successfully",
	})
}

// List handles GET /api/v1/feedback
// Always answers success=true with a count, even for an empty board.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	sortBy := r.URL.Query().Get("sortBy")

	items, err := h.store.List(r.Context(), category, sortBy)
	if err != nil {
		slog.Error("failed to query feedback", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error while fetching feedbacks")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListResponse{
		Success: true,
		Count:   len(items),
		Data:    items,
	})
}

// GetByID handles GET /api/v1/feedback/{id}
func (h *FeedbackHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	item, err := h.store.GetByID(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid feedback ID format")
		return
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Feedback item not found")
		return
	case err != nil:
		slog.Error("failed to query feedback", "error", err, "feedback_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error while fetching feedback item")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ItemResponse{
		Success: true,
		Data:    item,
	})
}

// Upvote handles PUT /api/v1/feedback/{id}/upvote
// No request body and no idempotency key: calling it twice increments
// twice. Duplicate prevention is the client's responsibility.
func (h *FeedbackHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	item, err := h.store.Upvote(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid feedback ID format")
		return
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Feedback item not found")
		return
	case err != nil:
		slog.Error("failed to upvote feedback", "error", err, "feedback_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error while upvoting feedback")
		return
	}

	slog.Info("feedback upvoted", "feedback_id", item.ID, "upvotes", item.Upvotes)

	middleware.JSONResponse(w, http.StatusOK, models.ItemResponse{
		Success: true,
		Data:    item,
		Message: "Feedback upvoted successfully",
	})
}
