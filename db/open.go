// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/mweissbach/notenspiegel/cliparse"
	"github.com/mweissbach/notenspiegel/models"
)

// Open connects to the configured database. For sqlite it also applies the
// pragmas the connection depends on (WAL, foreign keys, busy timeout) and
// limits the pool to one connection so concurrent writes are serialized by
// the engine instead of failing with SQLITE_BUSY.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case models.DatabaseSQLite:
		sqlDB, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open sqlite db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		for _, pragma := range []string{
			"PRAGMA journal_mode=WAL",
			"PRAGMA foreign_keys=ON",
			"PRAGMA busy_timeout=5000",
		} {
			if _, err := sqlDB.Exec(pragma); err != nil {
				_ = sqlDB.Close()
				return nil, fmt.Errorf("apply %s: %w", pragma, err)
			}
		}
		return sqlDB, nil
	case models.DatabasePostgres:
		sqlDB, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres db: %w", err)
		}
		return sqlDB, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}
