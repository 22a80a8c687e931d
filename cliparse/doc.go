// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing.

Configuration comes from environment variables (parsed via caarlos0/env
struct tags, with a .env file loaded by main beforehand), which CLI flags may
override for local development:

	go run . -p 8080 -d grades.db -exams scales.yaml

Required settings:

  - SESSION_SECRET (-session-secret): HMAC secret for session tokens
  - ADMIN_PASSWORD_HASH: bcrypt hash of the shared portal password
    (ADMIN_PASSWORD may be used instead for dev; main hashes it at boot)

Optional settings:

  - PORT (-p): server port (default 3941)
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)
  - DATABASE_URL (-d): connection string; defaults to school_grades.db
    for sqlite
  - EXAMS_FILE (-exams): exam scale config file (default exams.yaml)
  - SESSION_TTL_MINUTES: session lifetime (default 720)
*/
package cliparse
