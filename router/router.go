// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/danielhkuo/pollboard/handlers"
	"github.com/danielhkuo/pollboard/middleware"
	"github.com/danielhkuo/pollboard/store"
)

func NewRouter(st store.Store, sessions *scs.SessionManager) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(st, time.Now)
	votingHandler := handlers.NewVotingHandler(st, sessions)
	commentHandler := handlers.NewCommentHandler(st, sessions, time.Now)
	userHandler := handlers.NewUserHandler(st, sessions)
	sessionHandler := handlers.NewSessionHandler(st, sessions)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Question views (public)
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.Index))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.Detail))
	mux.HandleFunc("GET /questions/{id}/results", middleware.WithLogging(questionHandler.Results))

	// Voting (signed-in users only)
	mux.HandleFunc("POST /questions/{id}/vote",
		middleware.WithLogging(middleware.RequireUser(sessions, votingHandler.Vote)))

	// Comments (public; author binding depends on session)
	mux.HandleFunc("GET /questions/{id}/comments/new", middleware.WithLogging(commentHandler.NewForm))
	mux.HandleFunc("POST /questions/{id}/comments", middleware.WithLogging(commentHandler.Create))

	// User directory (signed-in users only)
	mux.HandleFunc("GET /users",
		middleware.WithLogging(middleware.RequireUser(sessions, userHandler.Directory)))

	// Sessions
	mux.HandleFunc("GET /login", middleware.WithLogging(sessionHandler.LoginForm))
	mux.HandleFunc("POST /login", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("POST /logout", middleware.WithLogging(sessionHandler.Logout))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollboard v1"))
	})

	return mux
}
