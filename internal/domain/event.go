package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/my_errors"
)

const (
	EventScoreUpdate = "SCORE_UPDATE"
	EventTeamCreated = "TEAM_CREATED"
	EventTeamUpdated = "TEAM_UPDATED"
	EventTeamDeleted = "TEAM_DELETED"
)

// Event is one append-only audit record. Payload is the JSON encoding of the
// typed payload for the event's kind; it snapshots the team name at write
// time so history stays legible after renames.
type Event struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ScoreUpdatePayload is the payload for EventScoreUpdate. Field names match
// the wire format consumed by the dashboard history view.
type ScoreUpdatePayload struct {
	TeamID    int64  `json:"teamId"`
	TeamName  string `json:"teamName"`
	Points    int    `json:"points"`
	Challenge string `json:"challenge"`
	Comment   string `json:"comment"`
	Actor     string `json:"user"`
}

// TeamPayload is the payload for the TEAM_* event kinds.
type TeamPayload struct {
	TeamID   int64  `json:"teamId"`
	TeamName string `json:"teamName"`
	Members  int    `json:"members,omitempty"`
	Actor    string `json:"user"`
}

// DecodePayload parses the raw payload into the typed shape for the event's
// kind.
func (e *Event) DecodePayload() (any, error) {
	switch e.Type {
	case EventScoreUpdate:
		var p ScoreUpdatePayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to decode %s payload: %w", e.Type, err)
		}
		return p, nil
	case EventTeamCreated, EventTeamUpdated, EventTeamDeleted:
		var p TeamPayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to decode %s payload: %w", e.Type, err)
		}
		return p, nil
	}
	return nil, fmt.Errorf("%q: %w", e.Type, my_errors.ErrUnknownEventType)
}

// PayloadTeamID extracts the team id from the payload without a full decode,
// for post-filtering event lists by team.
func (e *Event) PayloadTeamID() int64 {
	var p struct {
		TeamID int64 `json:"teamId"`
	}
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return 0
	}
	return p.TeamID
}

// EventFilter narrows a listed page of events. Zero values mean no filter.
// Filters never change ordering, they only drop rows from the ordered page.
type EventFilter struct {
	Type   string
	TeamID int64
	Since  time.Time
}

// Match reports whether the event passes the filter.
func (f EventFilter) Match(e *Event) bool {
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.TeamID != 0 && e.PayloadTeamID() != f.TeamID {
		return false
	}
	if !f.Since.IsZero() && e.CreatedAt.Before(f.Since) {
		return false
	}
	return true
}
