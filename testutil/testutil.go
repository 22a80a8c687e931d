// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mweissbach/notenspiegel/auth"
	"github.com/mweissbach/notenspiegel/cliparse"
	"github.com/mweissbach/notenspiegel/db"
	"github.com/mweissbach/notenspiegel/models"
)

// TestPassword is the portal password used by GetTestConfig.
const TestPassword = "korrektes-pferd-batterie"

var (
	testHashOnce sync.Once
	testHash     string
)

// SetupTestDB creates a fresh sqlite database in a temp dir with the full
// schema. Each test gets its own file, so tests stay independent and need no
// external services.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := cliparse.Config{
		DatabaseType: models.DatabaseSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "notenspiegel-test.db"),
	}
	sqlDB, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.CreateSchema(sqlDB); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return sqlDB
}

// GetTestConfig returns a standard test configuration. The password hash is
// computed once per process with bcrypt.MinCost to keep tests fast.
func GetTestConfig() cliparse.Config {
	testHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		testHash = string(hash)
	})

	return cliparse.Config{
		Port:              3941,
		DatabaseType:      models.DatabaseSQLite,
		ExamsFile:         "exams.yaml",
		AdminPasswordHash: testHash,
		SessionSecret:     "test-session-secret",
		SessionTTLMinutes: 60,
	}
}

// SessionToken mints a valid session token for gated requests.
func SessionToken(t *testing.T, cfg cliparse.Config) string {
	t.Helper()

	token, _, err := auth.NewSessionToken(cfg.SessionSecret, cfg.SessionTTL())
	if err != nil {
		t.Fatalf("Failed to mint session token: %v", err)
	}
	return token
}

// CreateTestExam inserts an exam row and returns its ID.
func CreateTestExam(t *testing.T, sqlDB *sql.DB, name string, min, max, step float64, position int) string {
	t.Helper()

	examID := uuid.NewString()
	_, err := sqlDB.Exec(`
		INSERT INTO exams (id, name, min_value, max_value, step, position, updated_at_unix)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, examID, name, min, max, step, position, time.Now().UTC().UnixMilli())
	if err != nil {
		t.Fatalf("Failed to create test exam: %v", err)
	}

	return examID
}

// InsertTestGrade appends a grade record and returns its ID.
func InsertTestGrade(t *testing.T, sqlDB *sql.DB, examID string, value float64) string {
	t.Helper()

	gradeID := uuid.NewString()
	_, err := sqlDB.Exec(`
		INSERT INTO grades (id, exam_id, value, created_at_unix)
		VALUES ($1, $2, $3, $4)
	`, gradeID, examID, value, time.Now().UTC().UnixMilli())
	if err != nil {
		t.Fatalf("Failed to insert test grade: %v", err)
	}

	return gradeID
}

// CountGrades returns the number of grade records for an exam.
func CountGrades(t *testing.T, sqlDB *sql.DB, examID string) int {
	t.Helper()

	var n int
	if err := sqlDB.QueryRow(`SELECT COUNT(*) FROM grades WHERE exam_id = $1`, examID).Scan(&n); err != nil {
		t.Fatalf("Failed to count grades: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
