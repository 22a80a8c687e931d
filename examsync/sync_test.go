// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package examsync

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/mweissbach/notenspiegel/testutil"
)

type examRow struct {
	id        string
	min       float64
	max       float64
	step      float64
	position  int
	updatedAt int64
}

func readExam(t *testing.T, sqlDB *sql.DB, name string) examRow {
	t.Helper()

	var row examRow
	err := sqlDB.QueryRow(`
		SELECT id, min_value, max_value, step, position, updated_at_unix
		FROM exams WHERE name = $1
	`, name).Scan(&row.id, &row.min, &row.max, &row.step, &row.position, &row.updatedAt)
	if err != nil {
		t.Fatalf("Failed to read exam %q: %v", name, err)
	}
	return row
}

func countExams(t *testing.T, sqlDB *sql.DB) int {
	t.Helper()

	var n int
	if err := sqlDB.QueryRow(`SELECT COUNT(*) FROM exams`).Scan(&n); err != nil {
		t.Fatalf("Failed to count exams: %v", err)
	}
	return n
}

func TestSyncCreatesDefaultConfig(t *testing.T) {
	sqlDB := testutil.SetupTestDB(t)
	path := filepath.Join(t.TempDir(), "exams.yaml")

	names, created, err := Sync(sqlDB, path)
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if !created {
		t.Error("expected created=true for missing config")
	}
	if len(names) != 2 || names[0] != "Mathematik I" {
		t.Errorf("unexpected names: %v", names)
	}
	if got := countExams(t, sqlDB); got != 2 {
		t.Errorf("expected 2 exam rows, got %d", got)
	}
}

func TestSyncIdempotent(t *testing.T) {
	sqlDB := testutil.SetupTestDB(t)
	path := filepath.Join(t.TempDir(), "exams.yaml")

	if _, _, err := Sync(sqlDB, path); err != nil {
		t.Fatalf("first Sync failed: %v", err)
	}
	before := readExam(t, sqlDB, "Mathematik I")

	names, created, err := Sync(sqlDB, path)
	if err != nil {
		t.Fatalf("second Sync failed: %v", err)
	}
	if created {
		t.Error("expected created=false on second run")
	}
	if len(names) != 2 {
		t.Errorf("expected 2 names, got %v", names)
	}
	if got := countExams(t, sqlDB); got != 2 {
		t.Errorf("expected no duplicate rows, got %d", got)
	}

	after := readExam(t, sqlDB, "Mathematik I")
	if after != before {
		t.Errorf("unchanged config must not write: %+v vs %+v", after, before)
	}
}

func TestSyncOverwritesChangedScale(t *testing.T) {
	sqlDB := testutil.SetupTestDB(t)
	path := filepath.Join(t.TempDir(), "exams.yaml")

	if err := os.WriteFile(path, []byte("- name: Mathematik I\n  min: 1.0\n  max: 5.0\n  step: 0.1\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, _, err := Sync(sqlDB, path); err != nil {
		t.Fatalf("first Sync failed: %v", err)
	}
	before := readExam(t, sqlDB, "Mathematik I")

	// Record a grade, then change the scale in the config
	gradeID := testutil.InsertTestGrade(t, sqlDB, before.id, 1.7)

	if err := os.WriteFile(path, []byte("- name: Mathematik I\n  min: 1.0\n  max: 6.0\n  step: 0.5\n"), 0o644); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}
	if _, _, err := Sync(sqlDB, path); err != nil {
		t.Fatalf("second Sync failed: %v", err)
	}

	after := readExam(t, sqlDB, "Mathematik I")
	if after.id != before.id {
		t.Errorf("upsert must keep the row id: %s vs %s", after.id, before.id)
	}
	if after.max != 6.0 || after.step != 0.5 {
		t.Errorf("config scale must win: %+v", after)
	}
	if got := countExams(t, sqlDB); got != 1 {
		t.Errorf("expected no duplicate row, got %d", got)
	}

	// The existing grade record must be untouched
	var value float64
	err := sqlDB.QueryRow(`SELECT value FROM grades WHERE id = $1`, gradeID).Scan(&value)
	if err != nil {
		t.Fatalf("grade record disturbed by sync: %v", err)
	}
	if value != 1.7 {
		t.Errorf("expected grade value 1.7, got %v", value)
	}
}

func TestSyncFailsOnBrokenConfig(t *testing.T) {
	sqlDB := testutil.SetupTestDB(t)
	path := filepath.Join(t.TempDir(), "exams.yaml")

	if err := os.WriteFile(path, []byte("{{{not yaml"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, _, err := Sync(sqlDB, path); err == nil {
		t.Error("expected error for broken config")
	}
	if got := countExams(t, sqlDB); got != 0 {
		t.Errorf("broken config must not write rows, got %d", got)
	}
}
