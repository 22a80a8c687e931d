// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The DDL is deliberately dialect-neutral: TEXT/REAL/BIGINT columns and
// timestamps stored as unix milliseconds assigned in Go, so the same
// statements run on both sqlite and postgres.
func CreateSchema(sqlDB *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := sqlDB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

var schemaStatements = []string{
	// Exam scales, upserted from the exam config file on every boot.
	// position preserves config declaration order for the selector.
	`CREATE TABLE IF NOT EXISTS exams (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		min_value REAL NOT NULL,
		max_value REAL NOT NULL,
		step REAL NOT NULL,
		position BIGINT NOT NULL,
		updated_at_unix BIGINT NOT NULL
	)`,

	// Grades are an append-only log; rows are never updated or deleted.
	`CREATE TABLE IF NOT EXISTS grades (
		id TEXT PRIMARY KEY,
		exam_id TEXT NOT NULL REFERENCES exams(id),
		value REAL NOT NULL,
		created_at_unix BIGINT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_exams_position ON exams(position)`,
	`CREATE INDEX IF NOT EXISTS idx_grades_exam_id ON grades(exam_id)`,
}
