// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package handlers contains HTTP request handlers for the feedback API.

# Handler Types

FeedbackHandler holds the store dependency and is created via a
constructor:

	feedbackHandler := handlers.NewFeedbackHandler(st)

# Endpoints

	POST /api/v1/feedback             → Submit
	GET  /api/v1/feedback             → List (category?, sortBy? query params)
	GET  /api/v1/feedback/{id}        → GetByID
	PUT  /api/v1/feedback/{id}/upvote → Upvote

# Error Mapping

Every store error becomes the uniform JSON envelope; raw internal errors
never reach the client:

	store.ErrInvalidID      → 400 "Invalid feedback ID format"
	store.ErrNotFound       → 404 "Feedback item not found"
	*store.ValidationError  → 400, field messages joined by ", "
	anything else           → 500 generic message (details logged)

Submit additionally rejects a body missing any of the three fields with
"Please provide title, description, and category" before the store is
called, so the storage-layer category default never applies.
*/
package handlers
