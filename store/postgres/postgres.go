// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package postgres implements the store contract on database/sql with
// the lib/pq driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/store"
)

// foreignKeyViolation is the Postgres error code for a failed FK check.
const foreignKeyViolation = "23503"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ store.Store = (*Store)(nil)

func (s *Store) LatestQuestions(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, pub_date
		FROM questions
		WHERE pub_date <= $1
		ORDER BY pub_date DESC, id DESC
		LIMIT $2
	`, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.PubDate); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *Store) PublishedQuestion(ctx context.Context, id int64, now time.Time) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		SELECT id, text, pub_date
		FROM questions
		WHERE id = $1 AND pub_date <= $2
	`, id, now).Scan(&q.ID, &q.Text, &q.PubDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, store.ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}
	return q, nil
}

func (s *Store) Question(ctx context.Context, id int64) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		SELECT id, text, pub_date
		FROM questions
		WHERE id = $1
	`, id).Scan(&q.ID, &q.Text, &q.PubDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, store.ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}
	return q, nil
}

func (s *Store) Choices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, text, votes
		FROM choices
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.Text, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	return choices, rows.Err()
}

// IncrementVote is a single conditional UPDATE so concurrent votes on
// the same choice serialize at the row and never lose an increment.
func (s *Store) IncrementVote(ctx context.Context, questionID, choiceID int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE choices
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to increment vote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CreateComment(ctx context.Context, c *models.Comment) error {
	// The caller's struct is only updated once the row exists.
	id := uuid.NewString()
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (id, question_id, author, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, c.QuestionID, c.Author, c.Text, createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return store.ErrNotFound
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	c.ID = id
	c.CreatedAt = createdAt
	return nil
}

func (s *Store) CommentsByQuestion(ctx context.Context, questionID int64) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, author, text, created_at
		FROM comments
		WHERE question_id = $1
		ORDER BY created_at ASC
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, staff, password_hash, created_at
		FROM users
		ORDER BY username
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Staff, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) UserByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, staff, password_hash, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.Staff, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, store.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	id := uuid.NewString()
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, staff, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, u.Username, u.Staff, u.PasswordHash, createdAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	u.ID = id
	u.CreatedAt = createdAt
	return nil
}

func (s *Store) CreateQuestion(ctx context.Context, q *models.Question) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO questions (text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, q.Text, q.PubDate).Scan(&q.ID)
	if err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

func (s *Store) CreateChoice(ctx context.Context, c *models.Choice) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO choices (question_id, text, votes)
		VALUES ($1, $2, $3)
		RETURNING id
	`, c.QuestionID, c.Text, c.Votes).Scan(&c.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return store.ErrNotFound
		}
		return fmt.Errorf("failed to insert choice: %w", err)
	}
	return nil
}
