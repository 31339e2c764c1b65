// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pollboard server.

Pollboard is a small polling web service: visitors browse published
questions, vote on a choice, view results, and leave comments; signed-in
users can additionally browse the user directory.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 8080 -d "postgres://..."

A .env file in the working directory is loaded if present; real
environment variables take precedence.

# Configuration

Settings:

  - DATABASE_URL (-d): PostgreSQL connection string (required unless -t memory)
  - STORE_TYPE (-t): Store backend, "postgres" or "memory" (default: postgres)
  - PORT (-p): Server port (default: 8080)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (questions, voting, comments, users, sessions)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, JSON helpers, session guard
  - models: Domain and view types
  - store: Store contract plus postgres and in-memory implementations
  - auth: Password hashing and session management
  - cliparse: Configuration parsing

Handlers receive the store, the session manager, and a clock explicitly;
nothing reads ambient global state.

See package documentation for each component.
*/
package main
