package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/store/inmemory"
	"github.com/danielhkuo/pollboard/testutil"
)

func TestIndex(t *testing.T) {
	st := inmemory.New()
	handler := NewQuestionHandler(st, testutil.FrozenClock(testutil.Now))

	// Six published questions at hourly intervals; q0 is the newest.
	for i := 0; i < 6; i++ {
		testutil.SeedQuestion(t, st, fmt.Sprintf("q%d", i), testutil.Now.Add(-time.Duration(i+1)*time.Hour))
	}
	testutil.SeedQuestion(t, st, "future", testutil.Now.Add(time.Hour))

	req := httptest.NewRequest("GET", "/questions", nil)
	w := httptest.NewRecorder()
	handler.Index(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.QuestionList
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Questions) != 5 {
		t.Fatalf("Expected 5 questions, got %d", len(resp.Questions))
	}
	for i, q := range resp.Questions {
		if q.Text == "future" {
			t.Error("Unpublished question leaked into the listing")
		}
		if want := fmt.Sprintf("q%d", i); q.Text != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, q.Text)
		}
	}
}

func TestIndexEmpty(t *testing.T) {
	st := inmemory.New()
	handler := NewQuestionHandler(st, testutil.FrozenClock(testutil.Now))

	req := httptest.NewRequest("GET", "/questions", nil)
	w := httptest.NewRecorder()
	handler.Index(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.QuestionList
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Questions) != 0 {
		t.Errorf("Expected empty listing, got %d questions", len(resp.Questions))
	}
}

func TestDetail(t *testing.T) {
	st := inmemory.New()
	handler := NewQuestionHandler(st, testutil.FrozenClock(testutil.Now))

	q := testutil.SeedQuestion(t, st, "Best color?", testutil.Now.Add(-24*time.Hour))
	testutil.SeedChoice(t, st, q.ID, "Red")
	testutil.SeedChoice(t, st, q.ID, "Blue")
	testutil.SeedComment(t, st, q.ID, "alice", "Great question")

	future := testutil.SeedQuestion(t, st, "future", testutil.Now.Add(time.Hour))

	tests := []struct {
		name           string
		id             string
		expectedStatus int
		checkResponse  func(t *testing.T, detail models.QuestionDetail)
	}{
		{
			name:           "published question",
			id:             fmt.Sprintf("%d", q.ID),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, detail models.QuestionDetail) {
				if detail.Question.Text != "Best color?" {
					t.Errorf("Unexpected question text: %s", detail.Question.Text)
				}
				if len(detail.Choices) != 2 {
					t.Errorf("Expected 2 choices, got %d", len(detail.Choices))
				}
				if len(detail.Comments) != 1 {
					t.Errorf("Expected 1 comment, got %d", len(detail.Comments))
				}
				if detail.ErrorMessage != "" {
					t.Errorf("Unexpected error message: %s", detail.ErrorMessage)
				}
			},
		},
		{
			name:           "unpublished question is hidden",
			id:             fmt.Sprintf("%d", future.ID),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing question",
			id:             "9999",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			id:             "banana",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/questions/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.Detail(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK && tt.checkResponse != nil {
				var detail models.QuestionDetail
				testutil.AssertJSON(t, w, &detail)
				tt.checkResponse(t, detail)
			}
		})
	}
}

func TestResults(t *testing.T) {
	st := inmemory.New()
	handler := NewQuestionHandler(st, testutil.FrozenClock(testutil.Now))

	q := testutil.SeedQuestion(t, st, "Best color?", testutil.Now.Add(-24*time.Hour))
	testutil.SeedChoice(t, st, q.ID, "Red")
	blue := testutil.SeedChoice(t, st, q.ID, "Blue")

	if err := st.IncrementVote(context.Background(), q.ID, blue.ID); err != nil {
		t.Fatalf("Failed to record vote: %v", err)
	}

	req := httptest.NewRequest("GET", fmt.Sprintf("/questions/%d/results", q.ID), nil)
	req.SetPathValue("id", fmt.Sprintf("%d", q.ID))
	w := httptest.NewRecorder()
	handler.Results(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsView
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Choices) != 2 {
		t.Fatalf("Expected 2 choices, got %d", len(resp.Choices))
	}
	if resp.Choices[0].Votes != 0 || resp.Choices[1].Votes != 1 {
		t.Errorf("Expected Red:0 Blue:1, got %d/%d", resp.Choices[0].Votes, resp.Choices[1].Votes)
	}
}

// Results are deliberately not publish-gated, unlike listing and
// detail.
func TestResultsForUnpublishedQuestion(t *testing.T) {
	st := inmemory.New()
	handler := NewQuestionHandler(st, testutil.FrozenClock(testutil.Now))

	q := testutil.SeedQuestion(t, st, "future", testutil.Now.Add(time.Hour))
	testutil.SeedChoice(t, st, q.ID, "Only choice")

	req := httptest.NewRequest("GET", fmt.Sprintf("/questions/%d/results", q.ID), nil)
	req.SetPathValue("id", fmt.Sprintf("%d", q.ID))
	w := httptest.NewRecorder()
	handler.Results(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsView
	testutil.AssertJSON(t, w, &resp)
	if resp.Question.Text != "future" {
		t.Errorf("Expected the unpublished question, got %q", resp.Question.Text)
	}
}

func TestResultsNotFound(t *testing.T) {
	st := inmemory.New()
	handler := NewQuestionHandler(st, testutil.FrozenClock(testutil.Now))

	req := httptest.NewRequest("GET", "/questions/9999/results", nil)
	req.SetPathValue("id", "9999")
	w := httptest.NewRecorder()
	handler.Results(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
