// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential hashing and session management.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword("s3cret")
	ok, err := auth.PasswordMatches(hash, "s3cret")

# Sessions

Sessions use alexedwards/scs with its in-memory store. The manager is
created once in main and wraps the router:

	sessions := auth.NewSessionManager()
	server.Handler = sessions.LoadAndSave(mux)

Handlers read the caller identity from the session under SessionKeyUser.
The login handler renews the session token before writing the identity,
so a pre-login session cannot be fixed onto an authenticated one.
*/
package auth
