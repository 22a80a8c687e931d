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
	"github.com/mweissbach/notenspiegel/stats"
)

type StatsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewStatsHandler(db *sql.DB, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{db: db, cfg: cfg}
}

// GetStats handles GET /exams/{name}/stats
// Returns count, mean, median and the dense histogram for one exam. With no
// grades recorded the statistics are omitted and a message explains the
// empty state - that is the expected first-visit answer, not an error.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
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

	values, err := gradeValues(h.db, exam.ID)
	if err != nil {
		slog.Error("failed to query grades", "error", err, "exam", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	scale := stats.Scale{Min: exam.Min, Max: exam.Max, Step: exam.Step}
	summary := stats.Aggregate(scale, values)

	if summary.Count == 0 {
		middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
			Exam:    exam.Name,
			Count:   0,
			Message: "no grades recorded yet",
		})
		return
	}

	histogram := make([]models.HistogramBin, len(summary.Histogram))
	for i, bin := range summary.Histogram {
		histogram[i] = models.HistogramBin{Grade: bin.Value, Count: bin.Count}
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		Exam:      exam.Name,
		Count:     summary.Count,
		Mean:      &summary.Mean,
		Median:    &summary.Median,
		Histogram: histogram,
	})
}

func gradeValues(db *sql.DB, examID string) ([]float64, error) {
	rows, err := db.Query(`
		SELECT value FROM grades WHERE exam_id = $1
	`, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
