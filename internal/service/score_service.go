package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/my_errors"
)

// Broadcast event names the dashboard listens for.
const (
	BroadcastLeaderboardUpdate = "leaderboardUpdate"
	BroadcastTeamCreated       = "teamCreated"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 200
)

// ScoreService runs the award pipeline. It holds no state between calls;
// all durable state lives in the repository and the transaction it opens.
type ScoreService struct {
	repo ScoreRepository
	pub  Publisher
}

func NewScoreService(repo ScoreRepository, pub Publisher) *ScoreService {
	return &ScoreService{repo: repo, pub: pub}
}

// AwardPoints validates the request, commits the score row + team total
// increment + audit event as one transaction, then signals the broadcast
// channel. The broadcast happens strictly after commit and never for a
// replayed dedup token.
func (s *ScoreService) AwardPoints(ctx context.Context, req domain.AwardRequest) (*domain.AwardResult, error) {
	if req.TeamID <= 0 {
		return nil, my_errors.ErrTeamRequired
	}
	if req.Points <= 0 {
		return nil, my_errors.ErrNonPositivePoints
	}
	req.Actor = strings.TrimSpace(req.Actor)
	if req.Actor == "" {
		return nil, my_errors.ErrActorRequired
	}

	result, err := s.repo.AwardPoints(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to award points: %w", err)
	}

	if !result.Replayed {
		s.pub.Publish(BroadcastLeaderboardUpdate, result.Award)
	}
	return result, nil
}

// RecentAwards returns the latest awards in commit order, newest first.
func (s *ScoreService) RecentAwards(ctx context.Context, limit int) ([]domain.ScoreAward, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	awards, err := s.repo.RecentAwards(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent awards: %w", err)
	}
	return awards, nil
}
