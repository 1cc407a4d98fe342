package models

import "time"

// NotificationKind classifies what produced a notification
type NotificationKind string

const (
	NotificationAnswer  NotificationKind = "answer"
	NotificationComment NotificationKind = "comment"
	NotificationRating  NotificationKind = "rating"
)

// IsValid reports whether the kind is a known notification source
func (k NotificationKind) IsValid() bool {
	return k == NotificationAnswer || k == NotificationComment || k == NotificationRating
}

// Notification is a fan-out record addressed to a single user. Creation is
// fire-and-forget relative to the write that produced it.
type Notification struct {
	ID         int64            `json:"id"`
	UserID     int64            `json:"userId"`
	Kind       NotificationKind `json:"type"`
	Content    string           `json:"content"`
	QuestionID *int64           `json:"questionId,omitempty"`
	AnswerID   *int64           `json:"answerId,omitempty"`
	FromUserID *int64           `json:"fromUserId,omitempty"`
	IsRead     bool             `json:"isRead"`
	CreatedAt  time.Time        `json:"createdAt"`
}
