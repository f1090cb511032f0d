// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package db handles database connection and schema creation.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types:

  - sqlite: modernc.org/sqlite, no CGO, the default. The URL is a file
    path or file: URI, e.g. "file:feedback.db".
  - postgres: lib/pq, URL is a standard postgres:// connection string.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for tables and indexes.

# Tables

A single table, feedback, holds every item:

  - id: UUID primary key
  - title, description: bounded text
  - category: CHECK-constrained to the four valid categories
  - upvotes: non-negative counter
  - created_at: fixed-width UTC text, lexically ordered by time

# Indexes

	feedback.category
	feedback.created_at
	feedback.upvotes

The two sort columns are indexed because every listing orders by one of
them; category backs the equality filter.
*/
package db
