package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/my_errors"
)

type TeamService struct {
	repo TeamRepository
	pub  Publisher
}

func NewTeamService(repo TeamRepository, pub Publisher) *TeamService {
	return &TeamService{repo: repo, pub: pub}
}

func (s *TeamService) CreateTeam(ctx context.Context, name, logoURL string, members int, actor string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, my_errors.ErrTeamNameRequired
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return nil, my_errors.ErrActorRequired
	}
	if members < 1 {
		members = 1
	}

	team, err := s.repo.CreateTeam(ctx, name, logoURL, members, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	s.pub.Publish(BroadcastTeamCreated, team)
	return team, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	if id <= 0 {
		return nil, my_errors.ErrTeamRequired
	}
	team, err := s.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (s *TeamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.repo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, upd domain.TeamUpdate) (*domain.Team, error) {
	if upd.ID <= 0 {
		return nil, my_errors.ErrTeamRequired
	}
	if upd.Name != nil && *upd.Name == "" {
		return nil, my_errors.ErrTeamNameRequired
	}
	team, err := s.repo.UpdateTeam(ctx, upd)
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return team, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id int64, actor string) error {
	if id <= 0 {
		return my_errors.ErrTeamRequired
	}
	if err := s.repo.DeleteTeam(ctx, id, actor); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}
