// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package inmemory implements the store contract with mutex-guarded
// maps. The test suite runs against it; it also serves as a
// zero-dependency development backend.
package inmemory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/store"
)

type Store struct {
	mu sync.RWMutex

	questions map[int64]models.Question
	choices   map[int64]models.Choice
	comments  map[string]models.Comment
	users     map[string]models.User // keyed by username

	nextQuestionID int64
	nextChoiceID   int64
}

func New() *Store {
	return &Store{
		questions: make(map[int64]models.Question),
		choices:   make(map[int64]models.Choice),
		comments:  make(map[string]models.Comment),
		users:     make(map[string]models.User),
	}
}

var _ store.Store = (*Store)(nil)

func (s *Store) LatestQuestions(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	published := []models.Question{}
	for _, q := range s.questions {
		if q.Published(now) {
			published = append(published, q)
		}
	}

	// Newest first; ties resolve to the higher ID so the order is stable
	// at the limit boundary.
	sort.Slice(published, func(i, j int) bool {
		if !published[i].PubDate.Equal(published[j].PubDate) {
			return published[i].PubDate.After(published[j].PubDate)
		}
		return published[i].ID > published[j].ID
	})

	if len(published) > limit {
		published = published[:limit]
	}
	return published, nil
}

func (s *Store) PublishedQuestion(ctx context.Context, id int64, now time.Time) (models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.questions[id]
	if !ok || !q.Published(now) {
		return models.Question{}, store.ErrNotFound
	}
	return q, nil
}

func (s *Store) Question(ctx context.Context, id int64) (models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.questions[id]
	if !ok {
		return models.Question{}, store.ErrNotFound
	}
	return q, nil
}

func (s *Store) Choices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	choices := []models.Choice{}
	for _, c := range s.choices {
		if c.QuestionID == questionID {
			choices = append(choices, c)
		}
	}
	sort.Slice(choices, func(i, j int) bool { return choices[i].ID < choices[j].ID })
	return choices, nil
}

func (s *Store) IncrementVote(ctx context.Context, questionID, choiceID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.choices[choiceID]
	if !ok || c.QuestionID != questionID {
		return store.ErrNotFound
	}
	c.Votes++
	s.choices[choiceID] = c
	return nil
}

func (s *Store) CreateComment(ctx context.Context, c *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[c.QuestionID]; !ok {
		return store.ErrNotFound
	}

	c.ID = uuid.NewString()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	s.comments[c.ID] = *c
	return nil
}

func (s *Store) CommentsByQuestion(ctx context.Context, questionID int64) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := []models.Comment{}
	for _, c := range s.comments {
		if c.QuestionID == questionID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []models.User{}
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.Username]; ok {
		return fmt.Errorf("username %q already taken", u.Username)
	}

	u.ID = uuid.NewString()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	s.users[u.Username] = *u
	return nil
}

func (s *Store) CreateQuestion(ctx context.Context, q *models.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextQuestionID++
	q.ID = s.nextQuestionID
	s.questions[q.ID] = *q
	return nil
}

func (s *Store) CreateChoice(ctx context.Context, c *models.Choice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[c.QuestionID]; !ok {
		return store.ErrNotFound
	}

	s.nextChoiceID++
	c.ID = s.nextChoiceID
	s.choices[c.ID] = *c
	return nil
}
