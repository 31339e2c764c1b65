// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/pollboard/middleware"
	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/store"
)

// latestQuestionLimit caps the index listing.
const latestQuestionLimit = 5

type QuestionHandler struct {
	store store.Store
	now   func() time.Time
}

func NewQuestionHandler(st store.Store, now func() time.Time) *QuestionHandler {
	return &QuestionHandler{store: st, now: now}
}

// questionID extracts the {id} path value. A non-numeric id cannot
// resolve to an existing question, so callers treat the error as not
// found.
func questionID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// Index handles GET /questions
// Returns the five most recently published questions, newest first.
func (h *QuestionHandler) Index(w http.ResponseWriter, r *http.Request) {
	questions, err := h.store.LatestQuestions(r.Context(), h.now(), latestQuestionLimit)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionList{Questions: questions})
}

// Detail handles GET /questions/{id}
// Unpublished questions are indistinguishable from missing ones.
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := questionID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	question, err := h.store.PublishedQuestion(r.Context(), id, h.now())
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	detail, err := detailView(r.Context(), h.store, question)
	if err != nil {
		slog.Error("failed to build detail view", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, detail)
}

// Results handles GET /questions/{id}/results
// Unlike listing and detail, results are not publish-gated.
func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
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

	choices, err := h.store.Choices(r.Context(), question.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsView{
		Question: question,
		Choices:  choices,
	})
}

// detailView assembles the question detail payload. The voting handler
// reuses it to redisplay the view on an invalid vote.
func detailView(ctx context.Context, st store.Store, question models.Question) (models.QuestionDetail, error) {
	choices, err := st.Choices(ctx, question.ID)
	if err != nil {
		return models.QuestionDetail{}, err
	}

	comments, err := st.CommentsByQuestion(ctx, question.ID)
	if err != nil {
		return models.QuestionDetail{}, err
	}

	return models.QuestionDetail{
		Question: question,
		Choices:  choices,
		Comments: comments,
	}, nil
}
