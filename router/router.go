// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/mweissbach/notenspiegel/cliparse"
	"github.com/mweissbach/notenspiegel/handlers"
	"github.com/mweissbach/notenspiegel/metrics"
	"github.com/mweissbach/notenspiegel/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(cfg)
	examHandler := handlers.NewExamHandler(db, cfg)
	gradeHandler := handlers.NewGradeHandler(db, cfg)
	statsHandler := handlers.NewStatsHandler(db, cfg)

	gate := middleware.RequireSession(cfg)
	serve := func(route string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(metrics.WithCount(route, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus exposition
	mux.Handle("GET /metrics", metrics.Handler())

	// Password gate (public login, gated logout)
	mux.HandleFunc("POST /session", serve("POST /session", sessionHandler.Login))
	mux.HandleFunc("DELETE /session", serve("DELETE /session", gate(sessionHandler.Logout)))

	// Portal operations (all behind the session gate)
	mux.HandleFunc("GET /exams", serve("GET /exams", gate(examHandler.ListExams)))
	mux.HandleFunc("GET /exams/{name}", serve("GET /exams/{name}", gate(examHandler.GetExam)))
	mux.HandleFunc("POST /exams/{name}/grades", serve("POST /exams/{name}/grades", gate(gradeHandler.SubmitGrade)))
	mux.HandleFunc("GET /exams/{name}/stats", serve("GET /exams/{name}/stats", gate(statsHandler.GetStats)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("notenspiegel API v1"))
	})

	return mux
}
