// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening

Open dispatches on the configured database type:

  - sqlite (default): modernc.org/sqlite against a local file, with WAL,
    foreign keys and a busy timeout applied, pool capped at one connection
  - postgres: lib/pq against DATABASE_URL

Queries elsewhere in the codebase use $1-style placeholders, which both
engines accept, so handlers are backend-agnostic.

# Schema

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - exams: one row per configured exam with its (min, max, step) scale,
    unique by name, ordered for display by position
  - grades: append-only grade records referencing exams

Timestamps are stored as unix milliseconds (BIGINT) assigned in Go, keeping
the DDL identical across both engines.
*/
package db
