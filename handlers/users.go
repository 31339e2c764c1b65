// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/danielhkuo/pollboard/middleware"
	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/store"
)

type UserHandler struct {
	store    store.Store
	sessions *scs.SessionManager
}

func NewUserHandler(st store.Store, sessions *scs.SessionManager) *UserHandler {
	return &UserHandler{store: st, sessions: sessions}
}

// Directory handles GET /users
// Guarded by middleware.RequireUser. Partitions the full user set into
// staff and non-staff in one pass; every user lands in exactly one
// list.
func (h *UserHandler) Directory(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.Users(r.Context())
	if err != nil {
		slog.Error("failed to query users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	directory := models.UserDirectory{
		Staff:    []models.User{},
		NonStaff: []models.User{},
	}
	for _, u := range users {
		if u.Staff {
			directory.Staff = append(directory.Staff, u)
		} else {
			directory.NonStaff = append(directory.NonStaff, u)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, directory)
}
