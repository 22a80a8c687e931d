// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mweissbach/notenspiegel/cliparse"
	"github.com/mweissbach/notenspiegel/metrics"
	"github.com/mweissbach/notenspiegel/middleware"
	"github.com/mweissbach/notenspiegel/models"
	"github.com/mweissbach/notenspiegel/stats"
)

type GradeHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewGradeHandler(db *sql.DB, cfg cliparse.Config) *GradeHandler {
	return &GradeHandler{db: db, cfg: cfg}
}

// SubmitGrade handles POST /exams/{name}/grades
// Validates the value against the exam's scale (range and step alignment),
// then appends one immutable grade record with a server-assigned timestamp.
// The legacy portal trusted the frontend's input constraints; validating
// again at this boundary closes that gap.
func (h *GradeHandler) SubmitGrade(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "exam name is required")
		return
	}

	var req models.SubmitGradeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Value == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "value is required")
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

	value, err := validateGrade(exam, *req.Value)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	gradeID := uuid.NewString()
	_, err = h.db.Exec(`
		INSERT INTO grades (id, exam_id, value, created_at_unix)
		VALUES ($1, $2, $3, $4)
	`, gradeID, exam.ID, value, time.Now().UTC().UnixMilli())
	if err != nil {
		slog.Error("failed to insert grade", "error", err, "exam", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save grade")
		return
	}

	metrics.GradesSubmitted.WithLabelValues(exam.Name).Inc()
	slog.Info("grade recorded", "exam", name, "value", value)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitGradeResponse{
		GradeID: gradeID,
		Message: "grade recorded",
	})
}

// validateGrade normalizes the submitted value to the exam's canonical
// rounding and checks it lies on the scale: within [min, max] and aligned to
// the step. The normalized value is what gets stored.
func validateGrade(exam models.Exam, raw float64) (float64, error) {
	value := stats.Normalize(exam.Step, raw)

	if value < exam.Min || value > exam.Max {
		return 0, fmt.Errorf("grade %v is outside the scale [%v, %v]", value, exam.Min, exam.Max)
	}

	steps := (value - exam.Min) / exam.Step
	if math.Abs(steps-math.Round(steps)) > 1e-6 {
		return 0, fmt.Errorf("grade %v is not aligned to the scale step %v", value, exam.Step)
	}

	return value, nil
}
