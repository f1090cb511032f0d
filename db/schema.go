// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. Supported types are
// "sqlite" (modernc.org/sqlite, CGO-free) and "postgres" (lib/pq).
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	switch databaseType {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	conn, err := sql.Open(databaseType, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if databaseType == "sqlite" {
		// SQLite allows a single writer; funneling every statement through
		// one connection avoids SQLITE_BUSY under concurrent upvotes.
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// created_at is fixed-width UTC text so lexical order matches
// chronological order under both drivers.
//
// The category column keeps its 'other' default for hand-inserted rows;
// the API rejects submissions without a category before they reach here.
const schema = `
-- Feedback items
CREATE TABLE IF NOT EXISTS feedback (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT 'other' CHECK (category IN ('feature', 'bug', 'improvement', 'other')),
    upvotes INTEGER NOT NULL DEFAULT 0 CHECK (upvotes >= 0),
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_feedback_category ON feedback(category);
CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback(created_at);
CREATE INDEX IF NOT EXISTS idx_feedback_upvotes ON feedback(upvotes);
`
