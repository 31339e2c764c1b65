// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

  - WithLogging: slog request/completion logging around a handler
  - RequireUser: 303 redirect to /login for anonymous callers
  - JSONResponse / ErrorResponse: response writing helpers

RequireUser enforces the authentication contract for voting and the user
directory: the guard runs before any handler logic, so an anonymous
request never reaches code that could mutate state.
*/
package middleware
