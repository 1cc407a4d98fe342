package models

import "time"

// Question represents a subject-tagged question asked by a student.
// Questions are never edited in place; they only disappear through the
// moderation or admin deletion paths.
type Question struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// Tags and AnswerCount are populated by read queries, not stored columns.
	Tags        []string `json:"tags,omitempty"`
	AnswerCount int      `json:"answerCount"`
}

// QuestionSort selects the ordering of question listings
type QuestionSort string

const (
	SortNewest  QuestionSort = "newest"
	SortPopular QuestionSort = "popular"
)

// QuestionFilter narrows and pages a question listing
type QuestionFilter struct {
	Subject *string
	Tag     *string
	Sort    QuestionSort
	Page    int
	Size    int
}
