package dto

import "github.com/kareemh/maarif/internal/app/models"

// CreateQuestionRequest is the payload for asking a question.
// ImageData, when present, is a base64-encoded image blob; the server resizes
// and compresses it before storage.
type CreateQuestionRequest struct {
	Subject   string   `json:"subject" binding:"required" example:"رياضيات"`
	Content   string   `json:"content" binding:"required" example:"كيف أحسب مساحة المثلث؟"`
	Tags      []string `json:"tags,omitempty"`
	ImageData string   `json:"imageData,omitempty"`
}

// QuestionResponse is the public view of a question
type QuestionResponse struct {
	ID          int64    `json:"id" example:"1"`
	UserID      int64    `json:"userId" example:"1"`
	Subject     string   `json:"subject" example:"رياضيات"`
	Content     string   `json:"content"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	AnswerCount int      `json:"answerCount" example:"2"`
	CreatedAt   string   `json:"createdAt" example:"2026-03-11T12:00:00Z"`
}

// QuestionListResponse is a paginated question listing
type QuestionListResponse struct {
	Questions  []QuestionResponse `json:"questions"`
	Pagination PaginationInfo     `json:"pagination"`
}

// FromQuestion converts a models.Question to its public view
func FromQuestion(q *models.Question) QuestionResponse {
	return QuestionResponse{
		ID:          q.ID,
		UserID:      q.UserID,
		Subject:     q.Subject,
		Content:     q.Content,
		ImageURL:    q.ImageURL,
		Tags:        q.Tags,
		AnswerCount: q.AnswerCount,
		CreatedAt:   q.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromQuestions converts a slice of questions to their public views
func FromQuestions(questions []*models.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, FromQuestion(questions[i]))
	}
	return out
}
