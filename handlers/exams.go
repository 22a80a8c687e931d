// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/mweissbach/notenspiegel/cliparse"
	"github.com/mweissbach/notenspiegel/middleware"
	"github.com/mweissbach/notenspiegel/models"
)

type ExamHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewExamHandler(db *sql.DB, cfg cliparse.Config) *ExamHandler {
	return &ExamHandler{db: db, cfg: cfg}
}

// ListExams handles GET /exams
// Returns all exams with their scales, in config declaration order, for the
// selection UI.
func (h *ExamHandler) ListExams(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, min_value, max_value, step, position
		FROM exams
		ORDER BY position, name
	`)
	if err != nil {
		slog.Error("failed to query exams", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	exams := []models.Exam{}
	for rows.Next() {
		var exam models.Exam
		if err := rows.Scan(&exam.ID, &exam.Name, &exam.Min, &exam.Max, &exam.Step, &exam.Position); err != nil {
			slog.Error("failed to scan exam", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		exams = append(exams, exam)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate exams", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ExamListResponse{Exams: exams})
}

// GetExam handles GET /exams/{name}
func (h *ExamHandler) GetExam(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "exam name is required")
		return
	}

	exam, err := getExamByName(h.db, name)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Exam not found")
		return
	}
	if err != nil {
		slog.Error("failed to query exam", "error", err, "exam", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, exam)
}

// getExamByName resolves an exam selection to its scale record. Returns
// sql.ErrNoRows when the name has no matching exam.
func getExamByName(db *sql.DB, name string) (models.Exam, error) {
	var exam models.Exam
	err := db.QueryRow(`
		SELECT id, name, min_value, max_value, step, position
		FROM exams
		WHERE name = $1
	`, name).Scan(&exam.ID, &exam.Name, &exam.Min, &exam.Max, &exam.Step, &exam.Position)
	return exam, err
}
