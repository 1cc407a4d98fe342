package models

import "time"

// Answer represents a student's answer to a question. Rating is a derived
// counter over answer_ratings rows, kept in sync transactionally.
type Answer struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"questionId"`
	UserID     int64     `json:"userId"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AnswerRating records that a user rated an answer. The (AnswerID, UserID)
// pair is unique in the store; the row's existence is the source of truth for
// "already rated".
type AnswerRating struct {
	AnswerID  int64     `json:"answerId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
