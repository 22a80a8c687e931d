// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package examsync

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StoredScale is what the exams table currently holds for one name.
type StoredScale struct {
	Min      float64
	Max      float64
	Step     float64
	Position int
}

// Upsert is one write the sync pass has decided on: a config entry plus its
// position in config order.
type Upsert struct {
	ExamScale
	Position int
}

// Reconcile compares the stored scales against the config and returns the
// entries that need writing: new names, changed scales, or moved positions.
// Config always wins; nothing is merged. Pure function, storage-independent.
func Reconcile(existing map[string]StoredScale, fromConfig []ExamScale) []Upsert {
	var changed []Upsert
	for i, sc := range fromConfig {
		cur, ok := existing[sc.Name]
		if ok && cur.Min == sc.Min && cur.Max == sc.Max && cur.Step == sc.Step && cur.Position == i {
			continue
		}
		changed = append(changed, Upsert{ExamScale: sc, Position: i})
	}
	return changed
}

// Sync loads the exam config and upserts every changed scale into the exams
// table. Existing rows keep their id, so grades recorded against an exam
// survive scale changes. Returns the exam names in config order and whether
// a default config file had to be created.
//
// Re-running Sync with an unchanged config performs zero writes.
func Sync(sqlDB *sql.DB, path string) ([]string, bool, error) {
	scales, created, err := Load(path)
	if err != nil {
		return nil, false, err
	}

	existing, err := loadStored(sqlDB)
	if err != nil {
		return nil, created, fmt.Errorf("load stored scales: %w", err)
	}

	now := time.Now().UTC().UnixMilli()
	for _, up := range Reconcile(existing, scales) {
		_, err := sqlDB.Exec(`
			INSERT INTO exams (id, name, min_value, max_value, step, position, updated_at_unix)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (name) DO UPDATE SET
				min_value = excluded.min_value,
				max_value = excluded.max_value,
				step = excluded.step,
				position = excluded.position,
				updated_at_unix = excluded.updated_at_unix
		`, uuid.NewString(), up.Name, up.Min, up.Max, up.Step, up.Position, now)
		if err != nil {
			return nil, created, fmt.Errorf("upsert exam %q: %w", up.Name, err)
		}
	}

	names := make([]string, len(scales))
	for i, sc := range scales {
		names[i] = sc.Name
	}
	return names, created, nil
}

func loadStored(sqlDB *sql.DB) (map[string]StoredScale, error) {
	rows, err := sqlDB.Query(`
		SELECT name, min_value, max_value, step, position FROM exams
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := make(map[string]StoredScale)
	for rows.Next() {
		var name string
		var sc StoredScale
		if err := rows.Scan(&name, &sc.Min, &sc.Max, &sc.Step, &sc.Position); err != nil {
			return nil, err
		}
		existing[name] = sc
	}
	return existing, rows.Err()
}
