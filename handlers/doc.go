// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for Pollboard.

# Handler Types

Each handler is a struct with its dependencies injected explicitly:

  - QuestionHandler: listing, detail, and results views
  - VotingHandler: vote submission
  - CommentHandler: comment form and creation
  - UserHandler: staff/non-staff user directory
  - SessionHandler: login and logout

Constructors take the store contract, the session manager where the
handler needs caller identity, and a clock where publication gating or
timestamps apply:

	questionHandler := handlers.NewQuestionHandler(st, time.Now)

Passing the clock in keeps publish-date behavior testable; nothing
reads global time except through it.

# Request Surface

	GET  /questions                    → Index (5 latest published)
	GET  /questions/{id}               → Detail (published only, else 404)
	POST /questions/{id}/vote          → Vote (auth; 303 to results)
	GET  /questions/{id}/results       → Results (no publish gate)
	GET  /questions/{id}/comments/new  → NewForm
	POST /questions/{id}/comments      → Create (303 to detail)
	GET  /users                        → Directory (auth)
	POST /login, POST /logout          → SessionHandler

# Error Handling

Existence and authorization failures terminate a handler immediately
with 404 or a redirect to /login. Validation conditions - no choice
selected, blank comment text - are not errors: the originating view is
returned again with an inline message and no state is changed. The one
asymmetry worth knowing: listing and detail hide unpublished questions,
while results and vote lookups do not.
*/
package handlers
