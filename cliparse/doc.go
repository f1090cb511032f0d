// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5001)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DatabaseURL: connection string; defaults to "file:feedback.db" for
    sqlite, required for postgres

# CLI Flags

	-p  Server port
	-d  Database URL
	-t  Database type

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - PORT is set but not a number
  - the database type is neither sqlite nor postgres
  - the type is postgres and no URL was provided
*/
package cliparse
