package models

import "time"

// Tag is a unique label attached to questions via a join table
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Favorite marks a question as saved by a user. At most one row exists per
// (UserID, QuestionID) pair.
type Favorite struct {
	UserID     int64     `json:"userId"`
	QuestionID int64     `json:"questionId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Comment is a remark on a question, optionally scoped to one of its answers.
type Comment struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"questionId"`
	AnswerID   *int64    `json:"answerId,omitempty"`
	UserID     int64     `json:"userId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}
