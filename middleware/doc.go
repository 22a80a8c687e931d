// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware contains HTTP helpers shared by all handlers.

  - WithLogging: structured request/completion logging via slog
  - RequireSession: the password gate; rejects requests without a valid
    session token (cookie or Authorization: Bearer)
  - CORS: permissive cross-origin handling for the frontend dev server
  - JSONResponse / ErrorResponse / ParseJSONBody: JSON plumbing

Errors are surfaced to the client synchronously as JSON bodies; nothing is
logged-and-suppressed and nothing is retried.
*/
package middleware
