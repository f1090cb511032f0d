// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

package router

import (
	"net/http"

	"github.com/feedbackboard/server/handlers"
	"github.com/feedbackboard/server/middleware"
	"github.com/feedbackboard/server/store"
)

func NewRouter(st *store.FeedbackStore) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	feedbackHandler := handlers.NewFeedbackHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Feedback lifecycle (public)
	mux.HandleFunc("POST /api/v1/feedback", middleware.WithLogging(feedbackHandler.Submit))
	mux.HandleFunc("GET /api/v1/feedback", middleware.WithLogging(feedbackHandler.List))
	mux.HandleFunc("GET /api/v1/feedback/{id}", middleware.WithLogging(feedbackHandler.GetByID))
	mux.HandleFunc("PUT /api/v1/feedback/{id}/upvote", middleware.WithLogging(feedbackHandler.Upvote))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Feedback Board API is running..."))
	})

	return mux
}
