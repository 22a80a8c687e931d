// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mweissbach/notenspiegel/auth"
	"github.com/mweissbach/notenspiegel/cliparse"
	"github.com/mweissbach/notenspiegel/db"
	"github.com/mweissbach/notenspiegel/examsync"
	"github.com/mweissbach/notenspiegel/middleware"
	"github.com/mweissbach/notenspiegel/router"
)

func main() {
	var err error

	// .env is optional; deployments set real environment variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Dev convenience: hash a plain-text password at boot
	if cfg.AdminPasswordHash == "" {
		cfg.AdminPasswordHash, err = auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			slog.Error("failed to hash admin password", "error", err)
			os.Exit(1)
		}
		slog.Warn("ADMIN_PASSWORD is set in plain text; prefer ADMIN_PASSWORD_HASH")
	}

	// Connect to the database
	dbConn, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Sync exam scales from the config file (config is the source of truth)
	examNames, created, err := examsync.Sync(dbConn, cfg.ExamsFile)
	if err != nil {
		slog.Error("exam config sync failed", "error", err)
		os.Exit(1)
	}
	if created {
		slog.Warn("exam config not found, wrote default file", "path", cfg.ExamsFile)
	}
	slog.Info("exam scales synchronized", "exams", len(examNames))

	// Create router; the browser frontend is served from another origin
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
