// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response and domain types shared by the
Notenspiegel handlers.

# Domain Types

  - Exam: a named assessment with its (min, max, step) grading scale
  - GradeRecord: one immutable submitted grade with a server-assigned timestamp

# Request/Response Types

JSON types exchanged with the frontend. StatsResponse uses pointer fields for
mean and median so they can be omitted entirely when an exam has no grades
yet, which the frontend renders as a "no data" state rather than zeros.
*/
package models
