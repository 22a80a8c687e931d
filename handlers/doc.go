// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Notenspiegel portal.

# Handler Types

Each handler is a struct with database and config dependencies:

  - SessionHandler: login/logout against the shared portal password
  - ExamHandler: exam selection (list in config order, scale lookup)
  - GradeHandler: grade submission with server-side scale validation
  - StatsHandler: aggregate statistics and histogram per exam

Handlers are created via constructor functions that accept *sql.DB and Config:

	examHandler := handlers.NewExamHandler(db, cfg)

# Portal Flow

	POST /session              → Login (returns session token + cookie)
	GET  /exams                → ListExams (selector options)
	POST /exams/{name}/grades  → SubmitGrade (appends one record)
	GET  /exams/{name}/stats   → GetStats (count/mean/median/histogram)
	DELETE /session            → Logout

Everything except login and health is behind middleware.RequireSession.

# Aggregation

The statistics themselves are computed by the stats package; the handler
only loads the grade log and maps the summary to the response type. An exam
with no grades yields a count-0 response with a message instead of zeros.
*/
package handlers
