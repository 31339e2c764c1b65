// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/danielhkuo/pollboard/auth"
	"github.com/danielhkuo/pollboard/middleware"
	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/store"
)

type CommentHandler struct {
	store    store.Store
	sessions *scs.SessionManager
	now      func() time.Time
}

func NewCommentHandler(st store.Store, sessions *scs.SessionManager, now func() time.Time) *CommentHandler {
	return &CommentHandler{store: st, sessions: sessions, now: now}
}

// NewForm handles GET /questions/{id}/comments/new
// Returns the form contract: the question binding is always locked, and
// for signed-in callers the author is locked to their identity. A
// renderer presents locked fields as hidden inputs.
func (h *CommentHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	id, err := questionID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	question, err := h.store.Question(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	author := h.sessions.GetString(r.Context(), auth.SessionKeyUser)

	middleware.JSONResponse(w, http.StatusOK, models.CommentFormView{
		QuestionID:     question.ID,
		QuestionLocked: true,
		Author:         author,
		AuthorLocked:   author != "",
	})
}

// Create handles POST /questions/{id}/comments
// The question comes from the route and, for signed-in callers, the
// author comes from the session; client-supplied values for either are
// ignored. Hidden form fields are presentation, not authorization, so
// the binding happens here rather than trusting the form.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := questionID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	question, err := h.store.Question(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	author := h.sessions.GetString(r.Context(), auth.SessionKeyUser)
	authorLocked := author != ""
	if !authorLocked {
		// Anonymous comments may carry whatever author the form sent.
		author = strings.TrimSpace(r.PostFormValue("author"))
	}

	text := strings.TrimSpace(r.PostFormValue("text"))
	if text == "" {
		// Redisplay the form with validation errors; nothing persisted.
		middleware.JSONResponse(w, http.StatusOK, models.CommentFormView{
			QuestionID:     question.ID,
			QuestionLocked: true,
			Author:         author,
			AuthorLocked:   authorLocked,
			Errors: map[string]string{
				"text": "This field is required.",
			},
		})
		return
	}

	comment := models.Comment{
		QuestionID: question.ID,
		Author:     author,
		Text:       text,
		CreatedAt:  h.now().UTC(),
	}
	if err := h.store.CreateComment(r.Context(), &comment); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
			return
		}
		slog.Error("failed to insert comment", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	slog.Info("comment created", "question_id", id, "comment_id", comment.ID)

	http.Redirect(w, r, fmt.Sprintf("/questions/%d", question.ID), http.StatusSeeOther)
}
