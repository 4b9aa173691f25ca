package service

import (
	"context"
	"fmt"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
)

type LeaderboardService struct {
	repo TeamRepository
}

func NewLeaderboardService(repo TeamRepository) *LeaderboardService {
	return &LeaderboardService{repo: repo}
}

// GetLeaderboard returns all teams ranked by aggregate score. The storage
// query orders deterministically (score desc, creation asc, id asc), so two
// calls with no intervening writes return the same order, ties included.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	teams, err := s.repo.Leaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, len(teams))
	for i, team := range teams {
		entries[i] = domain.LeaderboardEntry{Rank: i + 1, Team: team}
	}
	return entries, nil
}
