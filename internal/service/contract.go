package service

import (
	"context"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
)

type ScoreRepository interface {
	AwardPoints(ctx context.Context, req domain.AwardRequest) (*domain.AwardResult, error)
	RecentAwards(ctx context.Context, limit int) ([]domain.ScoreAward, error)
}

type TeamRepository interface {
	CreateTeam(ctx context.Context, name, logoURL string, members int, actor string) (*domain.Team, error)
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
	Leaderboard(ctx context.Context) ([]domain.Team, error)
	UpdateTeam(ctx context.Context, upd domain.TeamUpdate) (*domain.Team, error)
	DeleteTeam(ctx context.Context, id int64, actor string) error
}

type EventRepository interface {
	ListEvents(ctx context.Context, limit int, filter domain.EventFilter) ([]domain.Event, error)
}

// Publisher is the broadcast channel the write pipeline signals after a
// commit. Publish must never block or fail the caller.
type Publisher interface {
	Publish(event string, payload any)
}
