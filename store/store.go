// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/pollboard/models"
)

// ErrNotFound is returned when a referenced row does not exist, or when
// a publish-gated lookup filters it out.
var ErrNotFound = errors.New("not found")

// Store is the persistence contract for Pollboard. Query methods that
// apply the publication gate take the current time explicitly; callers
// decide what "now" means.
type Store interface {
	// LatestQuestions returns up to limit questions published at or
	// before now, newest first.
	LatestQuestions(ctx context.Context, now time.Time, limit int) ([]models.Question, error)

	// PublishedQuestion returns the question only if it exists and is
	// published at now; otherwise ErrNotFound.
	PublishedQuestion(ctx context.Context, id int64, now time.Time) (models.Question, error)

	// Question returns the question regardless of publication date.
	// The results view and the vote handler use this ungated lookup.
	Question(ctx context.Context, id int64) (models.Question, error)

	// Choices returns the question's choices ordered by ID.
	Choices(ctx context.Context, questionID int64) ([]models.Choice, error)

	// IncrementVote atomically adds exactly one vote to the choice,
	// provided it belongs to the question; ErrNotFound otherwise, with
	// no state change.
	IncrementVote(ctx context.Context, questionID, choiceID int64) error

	// CreateComment persists a new comment, assigning its ID. The
	// referenced question must exist; ErrNotFound otherwise.
	CreateComment(ctx context.Context, c *models.Comment) error

	// CommentsByQuestion returns the question's comments, oldest first.
	CommentsByQuestion(ctx context.Context, questionID int64) ([]models.Comment, error)

	// Users returns all users ordered by username.
	Users(ctx context.Context) ([]models.User, error)

	// UserByUsername returns the user or ErrNotFound.
	UserByUsername(ctx context.Context, username string) (models.User, error)

	// CreateUser persists a new user, assigning its ID. Usernames are
	// unique.
	CreateUser(ctx context.Context, u *models.User) error

	// CreateQuestion and CreateChoice are the administrative surface
	// used by seeding and tooling; request handlers never create
	// questions or choices.
	CreateQuestion(ctx context.Context, q *models.Question) error
	CreateChoice(ctx context.Context, c *models.Choice) error
}
