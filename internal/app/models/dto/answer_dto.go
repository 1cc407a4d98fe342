package dto

import "github.com/kareemh/maarif/internal/app/models"

// CreateAnswerRequest is the payload for answering a question
type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required" example:"مساحة المثلث نصف القاعدة في الارتفاع"`
}

// AnswerResponse is the public view of an answer
type AnswerResponse struct {
	ID         int64  `json:"id" example:"1"`
	QuestionID int64  `json:"questionId" example:"1"`
	UserID     int64  `json:"userId" example:"2"`
	Content    string `json:"content"`
	Rating     int    `json:"rating" example:"3"`
	CreatedAt  string `json:"createdAt" example:"2026-03-11T12:00:00Z"`
}

// FromAnswer converts a models.Answer to its public view
func FromAnswer(a *models.Answer) AnswerResponse {
	return AnswerResponse{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		UserID:     a.UserID,
		Content:    a.Content,
		Rating:     a.Rating,
		CreatedAt:  a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromAnswers converts a slice of answers to their public views
func FromAnswers(answers []*models.Answer) []AnswerResponse {
	out := make([]AnswerResponse, 0, len(answers))
	for i := range answers {
		out = append(out, FromAnswer(answers[i]))
	}
	return out
}
