// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/danielhkuo/pollboard/auth"
	"github.com/danielhkuo/pollboard/middleware"
	"github.com/danielhkuo/pollboard/store"
)

type SessionHandler struct {
	store    store.Store
	sessions *scs.SessionManager
}

func NewSessionHandler(st store.Store, sessions *scs.SessionManager) *SessionHandler {
	return &SessionHandler{store: st, sessions: sessions}
}

// LoginForm handles GET /login
// The redirect target for guarded routes. Rendering is external; this
// just identifies the page.
func (h *SessionHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Sign in to continue",
	})
}

// Login handles POST /login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.store.UserByUsername(r.Context(), username)
	if errors.Is(err, store.ErrNotFound) {
		// Same response as a bad password; don't reveal which.
		middleware.ErrorResponse(w, http.StatusUnauthorized, auth.ErrBadCredentials.Error())
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	ok, err := auth.PasswordMatches(user.PasswordHash, password)
	if err != nil {
		slog.Error("failed to verify password", "error", err, "username", username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, auth.ErrBadCredentials.Error())
		return
	}

	// Fresh token before the identity is written, against fixation.
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		slog.Error("failed to renew session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}
	h.sessions.Put(r.Context(), auth.SessionKeyUser, user.Username)

	slog.Info("user signed in", "username", user.Username)

	http.Redirect(w, r, "/questions", http.StatusSeeOther)
}

// Logout handles POST /logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	username := h.sessions.GetString(r.Context(), auth.SessionKeyUser)

	if err := h.sessions.Destroy(r.Context()); err != nil {
		slog.Error("failed to destroy session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign out")
		return
	}

	if username != "" {
		slog.Info("user signed out", "username", username)
	}

	http.Redirect(w, r, "/questions", http.StatusSeeOther)
}
