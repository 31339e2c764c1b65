// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Domain types

type Question struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
}

// Published reports whether the question is visible at the given instant.
func (q Question) Published(now time.Time) bool {
	return !q.PubDate.After(now)
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Text       string `json:"text"`
	Votes      int64  `json:"votes"`
}

type Comment struct {
	ID         string    `json:"id"`
	QuestionID int64     `json:"question_id"`
	Author     string    `json:"author,omitempty"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Staff        bool      `json:"staff"`
	PasswordHash []byte    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// View payloads

type QuestionList struct {
	Questions []Question `json:"questions"`
}

// QuestionDetail is the detail view. ErrorMessage is set when a vote
// submission is redisplayed because no valid choice was selected.
type QuestionDetail struct {
	Question     Question  `json:"question"`
	Choices      []Choice  `json:"choices"`
	Comments     []Comment `json:"comments"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

type ResultsView struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

// CommentFormView describes the comment form for a question. Locked
// fields are server-bound: a renderer must present them as hidden, and
// the create handler ignores client values for them anyway.
type CommentFormView struct {
	QuestionID     int64             `json:"question_id"`
	QuestionLocked bool              `json:"question_locked"`
	Author         string            `json:"author,omitempty"`
	AuthorLocked   bool              `json:"author_locked"`
	Text           string            `json:"text,omitempty"`
	Errors         map[string]string `json:"errors,omitempty"`
}

type UserDirectory struct {
	Staff    []User `json:"staff"`
	NonStaff []User `json:"non_staff"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
