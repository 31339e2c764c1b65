// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"

	"github.com/danielhkuo/pollboard/auth"
	"github.com/danielhkuo/pollboard/middleware"
	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/store"
)

// noChoiceMessage annotates the redisplayed detail view when a vote
// carries no usable choice.
const noChoiceMessage = "You didn't select a choice."

type VotingHandler struct {
	store    store.Store
	sessions *scs.SessionManager
}

func NewVotingHandler(st store.Store, sessions *scs.SessionManager) *VotingHandler {
	return &VotingHandler{store: st, sessions: sessions}
}

// Vote handles POST /questions/{id}/vote
// The router wraps this with middleware.RequireUser, so by the time it
// runs the caller is authenticated. A missing or foreign choice is a
// user-correctable condition: the detail view is redisplayed with an
// error message and nothing is mutated. A valid choice is incremented
// atomically and the caller is redirected to the results view, so a
// browser refresh cannot double-submit.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := questionID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	username := h.sessions.GetString(r.Context(), auth.SessionKeyUser)

	// No publish gate here: voting resolves the question the same way
	// the results view does.
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

	choiceValue := r.PostFormValue("choice")
	if choiceValue == "" {
		h.redisplay(w, r, question)
		return
	}

	choiceID, err := strconv.ParseInt(choiceValue, 10, 64)
	if err != nil {
		h.redisplay(w, r, question)
		return
	}

	err = h.store.IncrementVote(r.Context(), question.ID, choiceID)
	if errors.Is(err, store.ErrNotFound) {
		// Submitted choice does not belong to this question.
		h.redisplay(w, r, question)
		return
	}
	if err != nil {
		slog.Error("failed to increment vote", "error", err, "question_id", id, "choice_id", choiceID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "question_id", id, "choice_id", choiceID, "user", username)

	http.Redirect(w, r, fmt.Sprintf("/questions/%d/results", question.ID), http.StatusSeeOther)
}

// redisplay re-renders the detail view with the no-choice error. Not an
// error response; the condition is recoverable by the voter.
func (h *VotingHandler) redisplay(w http.ResponseWriter, r *http.Request, question models.Question) {
	detail, err := detailView(r.Context(), h.store, question)
	if err != nil {
		slog.Error("failed to build detail view", "error", err, "question_id", question.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	detail.ErrorMessage = noChoiceMessage

	middleware.JSONResponse(w, http.StatusOK, detail)
}
