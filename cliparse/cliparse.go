package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mweissbach/notenspiegel/models"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"3941"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	ExamsFile    string `env:"EXAMS_FILE" envDefault:"exams.yaml"`

	// Secrets (env only unless overridden for dev)
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	AdminPassword     string `env:"ADMIN_PASSWORD"`
	SessionSecret     string `env:"SESSION_SECRET"`
	SessionTTLMinutes int    `env:"SESSION_TTL_MINUTES" envDefault:"720"`
}

// SessionTTL returns the configured session lifetime.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// ParseFlags loads configuration from environment variables and then lets
// CLI flags override them.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("notenspiegel", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL (postgres) or file path (sqlite)")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.ExamsFile, "exams", cfg.ExamsFile, "Exam scale config file")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Session signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseType != models.DatabaseSQLite && cfg.DatabaseType != models.DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q (sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == models.DatabaseSQLite {
			cfg.DatabaseURL = "school_grades.db"
		} else {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}
	if cfg.AdminPasswordHash == "" && cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD_HASH (or ADMIN_PASSWORD for dev) required")
	}

	if cfg.SessionTTLMinutes <= 0 {
		return Config{}, errors.New("SESSION_TTL_MINUTES must be positive")
	}

	return cfg, nil
}
