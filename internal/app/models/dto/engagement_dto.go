package dto

import "github.com/kareemh/maarif/internal/app/models"

// FavoriteStatusResponse reports whether the current user favorited a
// question. Changed is false when an add or remove found nothing to do.
type FavoriteStatusResponse struct {
	Favorited bool `json:"favorited" example:"true"`
	Changed   bool `json:"changed,omitempty" example:"true"`
}

// CreateCommentRequest is the payload for commenting on a question,
// optionally scoped to one of its answers
type CreateCommentRequest struct {
	Content  string `json:"content" binding:"required" example:"إجابة ممتازة"`
	AnswerID *int64 `json:"answerId,omitempty" example:"3"`
}

// CommentResponse is the public view of a comment
type CommentResponse struct {
	ID         int64  `json:"id" example:"1"`
	QuestionID int64  `json:"questionId" example:"1"`
	AnswerID   *int64 `json:"answerId,omitempty"`
	UserID     int64  `json:"userId" example:"2"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt" example:"2026-03-11T12:00:00Z"`
}

// FromComment converts a models.Comment to its public view
func FromComment(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		QuestionID: c.QuestionID,
		AnswerID:   c.AnswerID,
		UserID:     c.UserID,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromComments converts a slice of comments to their public views
func FromComments(comments []*models.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, FromComment(comments[i]))
	}
	return out
}
