package domain

import "time"

// ScoreAward is a single point-granting record. Awards are immutable once
// committed: corrections are new awards, never edits.
type ScoreAward struct {
	ID         int64     `json:"id"`
	TeamID     int64     `json:"teamId"`
	TeamName   string    `json:"teamName"`
	Points     int       `json:"points"`
	Challenge  string    `json:"challenge"`
	Comment    string    `json:"comment"`
	Actor      string    `json:"user"`
	DedupToken string    `json:"-"`
	CreatedAt  time.Time `json:"time"`
}

// AwardRequest is the input to the award pipeline.
type AwardRequest struct {
	TeamID    int64
	Points    int
	Challenge string
	Comment   string
	Actor     string
	// DedupToken is an optional client-supplied idempotency token. A repeated
	// token returns the prior award instead of creating a duplicate.
	DedupToken string
}

// AwardResult is the committed outcome of one award transaction.
type AwardResult struct {
	Award   ScoreAward
	EventID int64
	// Replayed is true when DedupToken matched an earlier award and no new
	// rows were written.
	Replayed bool
}
