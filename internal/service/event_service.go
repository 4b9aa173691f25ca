package service

import (
	"context"
	"fmt"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
)

const (
	defaultEventLimit = 30
	maxEventLimit     = 200
)

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{repo: repo}
}

// ListEvents returns the newest events first. Filters drop rows from the
// ordered page; they never reorder it.
func (s *EventService) ListEvents(ctx context.Context, limit int, filter domain.EventFilter) ([]domain.Event, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}
	events, err := s.repo.ListEvents(ctx, limit, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}
