package dto

import "github.com/kareemh/maarif/internal/app/models"

// RegisterRequest is the payload for creating a new account
type RegisterRequest struct {
	Username string       `json:"username" binding:"required" example:"sara_5a"`
	Password string       `json:"password" binding:"required" example:"secret123"`
	Grade    models.Grade `json:"grade" binding:"required" example:"5"`
}

// LoginRequest is the payload for opening a session
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"sara_5a"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UserResponse is the public view of a user account
type UserResponse struct {
	ID               int64        `json:"id" example:"1"`
	Username         string       `json:"username" example:"sara_5a"`
	Grade            models.Grade `json:"grade" example:"5"`
	Role             models.Role  `json:"role" example:"user"`
	QuestionsAsked   int          `json:"questionsAsked" example:"3"`
	AnswersGiven     int          `json:"answersGiven" example:"7"`
	TotalHelpfulness int          `json:"totalHelpfulness" example:"12"`
	GoldenColleague  bool         `json:"goldenColleague" example:"false"`
	CreatedAt        string       `json:"createdAt" example:"2026-03-11T12:00:00Z"`
}

// FromUser converts a models.User to its public view
func FromUser(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		Grade:            u.Grade,
		Role:             u.Role,
		QuestionsAsked:   u.QuestionsAsked,
		AnswersGiven:     u.AnswersGiven,
		TotalHelpfulness: u.TotalHelpfulness,
		GoldenColleague:  u.GoldenColleague,
		CreatedAt:        u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromUsers converts a slice of users to their public views
func FromUsers(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *FromUser(users[i]))
	}
	return out
}
