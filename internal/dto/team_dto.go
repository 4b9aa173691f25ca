package dto

import "time"

type TeamDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logoUrl"`
	Members   int       `json:"members"`
	Score     int64     `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

type LeaderboardEntryDTO struct {
	Rank      int       `json:"rank"`
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logoUrl"`
	Members   int       `json:"members"`
	Score     int64     `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}
