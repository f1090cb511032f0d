// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package main provides the entry point for the Feedback Board API server.

Feedback Board is a public suggestion box: anyone can submit a short
feedback item under a category, browse items filtered by category and
sorted by recency or popularity, and upvote an item once per client
profile.

# Starting the Server

With no configuration at all the server listens on port 5001 and keeps
its data in a local SQLite file:

	go run .

Against PostgreSQL:

	go run . -t postgres -d "postgres://..."

A .env file in the working directory is loaded before flags are parsed.

# Configuration

Optional settings (flag / env):

  - PORT (-p): Server port (default: 5001)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (default: file:feedback.db;
    required for postgres)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: persistence and query layer (create, list, get, upvote)
  - handlers: HTTP request handlers mapping store calls to the envelope
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response/domain types
  - db: driver selection and schema creation
  - cliparse: configuration parsing
  - client: API client, vote marker, and list-state controller used by
    the feedbackctl terminal frontend

See package documentation for each component.
*/
package main
