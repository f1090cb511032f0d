// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package router defines HTTP routes for the feedback API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st)

# Endpoints

Health:

	GET /health

Feedback (public, base path /api/v1/feedback):

	POST /api/v1/feedback             - Submit feedback
	GET  /api/v1/feedback             - List (category?, sortBy? query params)
	GET  /api/v1/feedback/{id}        - Get one item
	PUT  /api/v1/feedback/{id}/upvote - Increment the upvote counter

All feedback routes are wrapped with request logging. CORS is applied
around the whole mux in main, so preflight requests are handled before
routing.
*/
package router
