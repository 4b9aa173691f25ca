package response

import "github.com/sarrasouelmia/ArenaNuitDeL-info/internal/dto"

type TeamsResponse struct {
	Teams []dto.TeamDTO `json:"teams"`
	Count int           `json:"count"`
}

type LeaderboardResponse struct {
	Leaderboard []dto.LeaderboardEntryDTO `json:"leaderboard"`
	Count       int                       `json:"count"`
}
