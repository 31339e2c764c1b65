// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides shared helpers for the test suite: seeding
// over the in-memory store, form request construction, a session login
// helper, and response assertions.
package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/pollboard/auth"
	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/store"
)

// Now is the frozen reference instant handler tests pin their clocks
// to, so publish-date behavior is deterministic.
var Now = time.Date(2025, time.June, 14, 12, 0, 0, 0, time.UTC)

// FrozenClock returns a clock that always reads at.
func FrozenClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// SeedQuestion inserts a question and returns it with its assigned ID.
func SeedQuestion(t *testing.T, st store.Store, text string, pubDate time.Time) models.Question {
	t.Helper()

	q := models.Question{Text: text, PubDate: pubDate}
	if err := st.CreateQuestion(context.Background(), &q); err != nil {
		t.Fatalf("Failed to seed question: %v", err)
	}
	return q
}

// SeedChoice inserts a zero-vote choice under a question.
func SeedChoice(t *testing.T, st store.Store, questionID int64, text string) models.Choice {
	t.Helper()

	c := models.Choice{QuestionID: questionID, Text: text}
	if err := st.CreateChoice(context.Background(), &c); err != nil {
		t.Fatalf("Failed to seed choice: %v", err)
	}
	return c
}

// SeedComment inserts a comment on a question.
func SeedComment(t *testing.T, st store.Store, questionID int64, author, text string) models.Comment {
	t.Helper()

	c := models.Comment{QuestionID: questionID, Author: author, Text: text}
	if err := st.CreateComment(context.Background(), &c); err != nil {
		t.Fatalf("Failed to seed comment: %v", err)
	}
	return c
}

// SeedUser inserts a user with the given password. MinCost keeps the
// suite fast; production hashing goes through auth.HashPassword.
func SeedUser(t *testing.T, st store.Store, username, password string, staff bool) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	u := models.User{Username: username, Staff: staff, PasswordHash: hash}
	if err := st.CreateUser(context.Background(), &u); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return u
}

// LoginCookie primes a session holding username and returns its
// cookie. Attach it to a request served through the same manager to
// act as that user.
func LoginCookie(t *testing.T, sessions *scs.SessionManager, username string) *http.Cookie {
	t.Helper()

	prime := sessions.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessions.Put(r.Context(), auth.SessionKeyUser, username)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	prime.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("No session cookie issued")
	}
	return cookies[0]
}

// Serve runs the request through the session middleware and handler.
// Handlers that read the session require this; calling them outside
// LoadAndSave panics in scs.
func Serve(sessions *scs.SessionManager, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	sessions.LoadAndSave(handler).ServeHTTP(w, req)
	return w
}

// FormRequest creates a form-encoded HTTP test request.
func FormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 303 redirect to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Errorf("Expected status %d, got %d. Body: %s", http.StatusSeeOther, w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %s, got %s", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
