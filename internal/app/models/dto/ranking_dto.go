package dto

import "github.com/kareemh/maarif/internal/app/models"

// RankedUserResponse is a leaderboard entry. Score is the counter the
// leaderboard is sorted by: totalHelpfulness for top answerers,
// questionsAsked for top askers.
type RankedUserResponse struct {
	ID              int64  `json:"id" example:"2"`
	Username        string `json:"username" example:"omar_6b"`
	Score           int    `json:"score" example:"12"`
	GoldenColleague bool   `json:"goldenColleague" example:"true"`
}

// RankedByHelpfulness builds leaderboard entries scored by accumulated
// helpfulness
func RankedByHelpfulness(users []*models.User) []RankedUserResponse {
	out := make([]RankedUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, RankedUserResponse{
			ID:              u.ID,
			Username:        u.Username,
			Score:           u.TotalHelpfulness,
			GoldenColleague: u.GoldenColleague,
		})
	}
	return out
}

// RankedByQuestions builds leaderboard entries scored by questions asked
func RankedByQuestions(users []*models.User) []RankedUserResponse {
	out := make([]RankedUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, RankedUserResponse{
			ID:              u.ID,
			Username:        u.Username,
			Score:           u.QuestionsAsked,
			GoldenColleague: u.GoldenColleague,
		})
	}
	return out
}

// UserCountResponse carries the total number of registered users
type UserCountResponse struct {
	Count int64 `json:"count" example:"42"`
}
