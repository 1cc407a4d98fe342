package dto

import "github.com/kareemh/maarif/internal/app/models"

// CreateNotificationRequest addresses a notification to another user
type CreateNotificationRequest struct {
	UserID     int64                   `json:"userId" binding:"required" example:"2"`
	Type       models.NotificationKind `json:"type" binding:"required" example:"answer"`
	Content    string                  `json:"content" binding:"required" example:"sara_5a أجابت على سؤالك"`
	QuestionID *int64                  `json:"questionId,omitempty" example:"1"`
	AnswerID   *int64                  `json:"answerId,omitempty" example:"3"`
}

// NotificationResponse is the public view of a notification
type NotificationResponse struct {
	ID         int64                   `json:"id" example:"1"`
	Type       models.NotificationKind `json:"type" example:"answer"`
	Content    string                  `json:"content" example:"omar_6b answered your question"`
	QuestionID *int64                  `json:"questionId,omitempty"`
	AnswerID   *int64                  `json:"answerId,omitempty"`
	FromUserID *int64                  `json:"fromUserId,omitempty"`
	IsRead     bool                    `json:"isRead" example:"false"`
	CreatedAt  string                  `json:"createdAt" example:"2026-03-11T12:00:00Z"`
}

// FromNotification converts a models.Notification to its public view
func FromNotification(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Type:       n.Kind,
		Content:    n.Content,
		QuestionID: n.QuestionID,
		AnswerID:   n.AnswerID,
		FromUserID: n.FromUserID,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromNotifications converts a slice of notifications to their public views
func FromNotifications(notifications []*models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, FromNotification(notifications[i]))
	}
	return out
}
