// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the route table for the Pollboard server.

Routes use Go 1.22+ method and path-value patterns on the standard
ServeMux. Every route is wrapped with request logging; voting and the
user directory are additionally wrapped with the session guard, which
redirects anonymous callers to /login before any handler logic runs.

The session manager's LoadAndSave middleware is applied around the
whole mux in main, not here, so the router stays a plain ServeMux.
*/
package router
