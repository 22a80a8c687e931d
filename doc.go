// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Notenspiegel server.

Notenspiegel is a small grade-entry and reporting portal: behind a shared
password, users pick an exam, submit a grade within the exam's configured
scale, and read aggregate statistics (count, mean, median) plus a dense
histogram over every valid scale value.

# Starting the Server

The server reads configuration from the environment (a local .env file is
honored) or CLI flags:

	SESSION_SECRET=... ADMIN_PASSWORD_HASH='$2a$...' go run .

Or with flags for local development:

	go run . -p 8080 -d grades.db -exams scales.yaml

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): HMAC secret for session tokens
  - ADMIN_PASSWORD_HASH: bcrypt hash of the shared portal password
    (or ADMIN_PASSWORD for dev, hashed at boot with a warning)

Optional settings:

  - PORT (-p): server port (default 3941)
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)
  - DATABASE_URL (-d): connection string / sqlite path
  - EXAMS_FILE (-exams): exam scale config file (default exams.yaml)
  - SESSION_TTL_MINUTES: session lifetime (default 720)

# Boot Sequence

On every start the server creates the schema if needed and synchronizes the
exam scales from the config file into the database - the file is the source
of truth for scales, existing grades are never touched. A missing config
file is replaced by a default one with a warning; a broken one stops the
server before it serves anything.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (session, exams, grades, stats)
  - router: route definitions using Go 1.22+ routing
  - middleware: session gate, CORS, logging, JSON helpers
  - models: request/response types
  - auth: password hashing and session tokens
  - db: connection setup and schema creation
  - examsync: exam scale config loading and sync
  - stats: pure aggregation (count/mean/median/histogram)
  - metrics: Prometheus counters
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
