package domain

import "time"

type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logoUrl"`
	Members   int       `json:"members"`
	Score     int64     `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// TeamUpdate carries a partial update for a team. Nil fields keep the
// current value. The aggregate score is deliberately absent: it is owned by
// the award pipeline and never writable here.
type TeamUpdate struct {
	ID      int64
	Name    *string
	LogoURL *string
	Members *int
	Actor   string
}

// LeaderboardEntry is a team with its rank on the public board.
type LeaderboardEntry struct {
	Rank int `json:"rank"`
	Team
}
