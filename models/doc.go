// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and view types for Pollboard.

# Domain Types

Four entities back the whole application:

  - Question: a poll prompt with a publication timestamp
  - Choice: a selectable answer under a question, carrying a vote tally
  - Comment: free text attached to a question, optionally authored
  - User: an account with a staff flag and bcrypt credentials

A question is "published" once its PubDate is at or before the current
time; unpublished questions never appear in the listing or detail views.

# View Types

Handlers respond with view payloads (QuestionList, QuestionDetail,
ResultsView, CommentFormView, UserDirectory) rather than raw rows, so the
response contract is explicit per operation. HTML rendering is an
external concern.
*/
package models
