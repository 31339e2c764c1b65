package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/pollboard/auth"
	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/store/inmemory"
	"github.com/danielhkuo/pollboard/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	st := inmemory.New()
	sessions := auth.NewSessionManager()
	handler := sessions.LoadAndSave(NewRouter(st, sessions))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got %q", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	st := inmemory.New()
	sessions := auth.NewSessionManager()
	handler := sessions.LoadAndSave(NewRouter(st, sessions))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pollboard") {
		t.Errorf("Unexpected root body: %q", w.Body.String())
	}
}

func TestGuardedRoutesRedirectAnonymous(t *testing.T) {
	st := inmemory.New()
	sessions := auth.NewSessionManager()
	handler := sessions.LoadAndSave(NewRouter(st, sessions))

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/users"},
		{"POST", "/questions/1/vote"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("Expected status 303, got %d", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != "/login" {
				t.Errorf("Expected redirect to /login, got %q", loc)
			}
		})
	}
}

// TestVotingWorkflow walks the full lifecycle: browse the index, sign
// in, open the detail page, cast a vote, read the results, and leave a
// comment.
func TestVotingWorkflow(t *testing.T) {
	st := inmemory.New()
	sessions := auth.NewSessionManager()
	handler := sessions.LoadAndSave(NewRouter(st, sessions))

	q := testutil.SeedQuestion(t, st, "Best color?", time.Now().Add(-time.Hour))
	red := testutil.SeedChoice(t, st, q.ID, "Red")
	blue := testutil.SeedChoice(t, st, q.ID, "Blue")
	testutil.SeedUser(t, st, "alice", "secret", false)

	// Browse the index.
	req := httptest.NewRequest("GET", "/questions", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Index returned %d", w.Code)
	}
	var list models.QuestionList
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("Failed to decode index: %v", err)
	}
	if len(list.Questions) != 1 || list.Questions[0].Text != "Best color?" {
		t.Fatalf("Unexpected index: %+v", list)
	}

	// Sign in and keep the session cookie.
	form := url.Values{"username": {"alice"}, "password": {"secret"}}
	req = httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Login returned %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Login did not set a session cookie")
	}
	cookie := cookies[0]

	// Open the detail page.
	req = httptest.NewRequest("GET", fmt.Sprintf("/questions/%d", q.ID), nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Detail returned %d", w.Code)
	}
	var detail models.QuestionDetail
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("Failed to decode detail: %v", err)
	}
	if len(detail.Choices) != 2 {
		t.Fatalf("Expected 2 choices, got %d", len(detail.Choices))
	}

	// Cast a vote for Blue.
	form = url.Values{"choice": {strconv.FormatInt(blue.ID, 10)}}
	req = httptest.NewRequest("POST", fmt.Sprintf("/questions/%d/vote", q.ID), strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Vote returned %d: %s", w.Code, w.Body.String())
	}
	wantResults := fmt.Sprintf("/questions/%d/results", q.ID)
	if loc := w.Header().Get("Location"); loc != wantResults {
		t.Fatalf("Expected redirect to %q, got %q", wantResults, loc)
	}

	// Read the results the redirect points at.
	req = httptest.NewRequest("GET", wantResults, nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Results returned %d", w.Code)
	}
	var results models.ResultsView
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("Failed to decode results: %v", err)
	}
	votes := map[int64]int64{}
	for _, c := range results.Choices {
		votes[c.ID] = c.Votes
	}
	if votes[blue.ID] != 1 || votes[red.ID] != 0 {
		t.Errorf("Expected Blue=1 Red=0, got Blue=%d Red=%d", votes[blue.ID], votes[red.ID])
	}

	// Leave a comment; the author comes from the session.
	form = url.Values{"text": {"great poll"}}
	req = httptest.NewRequest("POST", fmt.Sprintf("/questions/%d/comments", q.ID), strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Comment returned %d: %s", w.Code, w.Body.String())
	}

	comments, err := st.CommentsByQuestion(context.Background(), q.ID)
	if err != nil {
		t.Fatalf("Failed to query comments: %v", err)
	}
	if len(comments) != 1 || comments[0].Author != "alice" {
		t.Fatalf("Expected one comment by alice, got %+v", comments)
	}
}
