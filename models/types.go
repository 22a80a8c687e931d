// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Database type constants
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

// Value is a pointer so a missing field can be told apart from 0.0.
type SubmitGradeRequest struct {
	Value *float64 `json:"value"`
}

// Response types

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ExamListResponse struct {
	Exams []Exam `json:"exams"`
}

type SubmitGradeResponse struct {
	GradeID string `json:"grade_id"`
	Message string `json:"message"`
}

type HistogramBin struct {
	Grade float64 `json:"grade"`
	Count int     `json:"count"`
}

// StatsResponse carries aggregate statistics for one exam. Mean, median and
// histogram are omitted when no grades have been recorded yet; Message then
// explains the empty state.
type StatsResponse struct {
	Exam      string         `json:"exam"`
	Count     int            `json:"count"`
	Mean      *float64       `json:"mean,omitempty"`
	Median    *float64       `json:"median,omitempty"`
	Histogram []HistogramBin `json:"histogram,omitempty"`
	Message   string         `json:"message,omitempty"`
}

// Domain types

// Exam is a named assessment with its grading scale. Min, Max and Step define
// the valid grade values: Min, Min+Step, ... up to and including Max.
type Exam struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Step     float64 `json:"step"`
	Position int     `json:"position"`
}

// GradeRecord is one submitted grade. Records are append-only: no update or
// delete path exists anywhere in the application.
type GradeRecord struct {
	ID        string    `json:"id"`
	ExamID    string    `json:"exam_id"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
