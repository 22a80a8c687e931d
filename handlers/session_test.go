// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mweissbach/notenspiegel/auth"
	"github.com/mweissbach/notenspiegel/middleware"
	"github.com/mweissbach/notenspiegel/models"
	"github.com/mweissbach/notenspiegel/testutil"
)

func TestLogin(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewSessionHandler(cfg)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "correct password",
			body:           models.LoginRequest{Password: testutil.TestPassword},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "wrong password",
			body:           models.LoginRequest{Password: "falsches-passwort"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty password",
			body:           models.LoginRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           nil,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/session", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus != http.StatusCreated {
				return
			}

			var resp models.LoginResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Token == "" {
				t.Fatal("expected token in login response")
			}
			if err := auth.ParseSessionToken(cfg.SessionSecret, resp.Token); err != nil {
				t.Errorf("login token failed validation: %v", err)
			}

			// The cookie must carry the same session
			cookie := findCookie(t, w, middleware.SessionCookieName)
			if cookie == nil {
				t.Fatal("expected session cookie")
			}
			if cookie.Value != resp.Token {
				t.Error("cookie and body token differ")
			}
			if !cookie.HttpOnly {
				t.Error("session cookie must be HttpOnly")
			}
		})
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewSessionHandler(cfg)

	req := testutil.MakeRequest("DELETE", "/session", nil, nil)
	w := httptest.NewRecorder()

	handler.Logout(w, req)

	testutil.AssertStatus(t, w, http.StatusNoContent)

	cookie := findCookie(t, w, middleware.SessionCookieName)
	if cookie == nil {
		t.Fatal("expected expired session cookie")
	}
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Errorf("expected cleared cookie, got value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
