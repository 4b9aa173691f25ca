package dto

import "time"

// ScoreAwardDTO mirrors the wire shape the dashboard expects: "user" is the
// acting admin, "time" the commit timestamp.
type ScoreAwardDTO struct {
	ID        int64     `json:"id"`
	TeamID    int64     `json:"teamId"`
	TeamName  string    `json:"teamName"`
	Points    int       `json:"points"`
	Challenge string    `json:"challenge"`
	Comment   string    `json:"comment"`
	User      string    `json:"user"`
	Time      time.Time `json:"time"`
}
