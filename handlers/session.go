// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mweissbach/notenspiegel/auth"
	"github.com/mweissbach/notenspiegel/cliparse"
	"github.com/mweissbach/notenspiegel/middleware"
	"github.com/mweissbach/notenspiegel/models"
)

type SessionHandler struct {
	cfg cliparse.Config
}

func NewSessionHandler(cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{cfg: cfg}
}

// Login handles POST /session
// Verifies the shared portal password and mints a session token, returned in
// the body and as an HttpOnly cookie.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	if err := auth.VerifyPassword(h.cfg.AdminPasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			slog.Info("login rejected", "remote", r.RemoteAddr)
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
			return
		}
		slog.Error("failed to verify password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	token, expires, err := auth.NewSessionToken(h.cfg.SessionSecret, h.cfg.SessionTTL())
	if err != nil {
		slog.Error("failed to mint session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("login succeeded", "remote", r.RemoteAddr)

	middleware.JSONResponse(w, http.StatusCreated, models.LoginResponse{
		Token:     token,
		ExpiresAt: expires,
	})
}

// Logout handles DELETE /session
// Sessions are stateless, so teardown is expiring the cookie.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}
