package models

import "time"

// User represents a registered student or administrator.
//
// QuestionsAsked, AnswersGiven and TotalHelpfulness are lifetime activity
// counters maintained eagerly on every write; deleting content does not roll
// them back.
type User struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	PasswordHash     string    `json:"-"`
	Grade            Grade     `json:"grade"`
	Role             Role      `json:"role"`
	QuestionsAsked   int       `json:"questionsAsked"`
	AnswersGiven     int       `json:"answersGiven"`
	TotalHelpfulness int       `json:"totalHelpfulness"`
	GoldenColleague  bool      `json:"goldenColleague"`
	CreatedAt        time.Time `json:"createdAt"`
}
