package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/my_errors"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// appendEvent writes one audit event inside the caller's transaction. If the
// transaction rolls back, the event goes with it.
func appendEvent(ctx context.Context, tx pgx.Tx, eventType string, payload any) (int64, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}

	var id int64
	query := `INSERT INTO events (type, payload) VALUES ($1, $2) RETURNING id`
	if err := tx.QueryRow(ctx, query, eventType, string(encoded)).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to append %s event: %w", eventType, err)
	}
	return id, nil
}

// ListEvents returns the most recent events in descending id order. The
// filter is applied after the ordered page is read and never reorders it.
func (r *EventRepository) ListEvents(ctx context.Context, limit int, filter domain.EventFilter) ([]domain.Event, error) {
	query := `
        SELECT id, type, payload, created_at
        FROM events
        ORDER BY id DESC
        LIMIT $1
    `
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, my_errors.StoreFailure("failed to list events", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Type, &e.Payload, &e.CreatedAt); err != nil {
			return nil, my_errors.StoreFailure("failed to scan event", err)
		}
		if filter.Match(&e) {
			events = append(events, e)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, my_errors.StoreFailure("failed to read events", err)
	}
	return events, nil
}
