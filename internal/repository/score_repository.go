package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/my_errors"
)

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrCheckViolation      = "23514"
)

type ScoreRepository struct {
	pool *pgxpool.Pool
}

func NewScoreRepository(pool *pgxpool.Pool) *ScoreRepository {
	return &ScoreRepository{pool: pool}
}

// AwardPoints runs the award pipeline as one transaction: insert the score
// row, bump the team's aggregate total, append the audit event. Either all
// three commit or none do. The increment is a single UPDATE statement so
// concurrent awards against the same team serialize on the row lock and no
// update is lost.
func (r *ScoreRepository) AwardPoints(ctx context.Context, req domain.AwardRequest) (*domain.AwardResult, error) {
	if req.DedupToken != "" {
		if prior, err := r.findByDedupToken(ctx, req.DedupToken); err != nil {
			return nil, err
		} else if prior != nil {
			return prior, nil
		}
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, my_errors.StoreFailure("failed to begin transaction", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback award transaction", "error", err)
		}
	}()

	award := domain.ScoreAward{
		TeamID:     req.TeamID,
		Points:     req.Points,
		Challenge:  req.Challenge,
		Comment:    req.Comment,
		Actor:      req.Actor,
		DedupToken: req.DedupToken,
	}

	insertQuery := `
        INSERT INTO scores (team_id, points, challenge, comment, actor, dedup_token)
        VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
        RETURNING id, created_at
    `
	err = tx.QueryRow(ctx, insertQuery,
		req.TeamID, req.Points, req.Challenge, req.Comment, req.Actor, req.DedupToken,
	).Scan(&award.ID, &award.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrForeignKeyViolation:
				return nil, my_errors.ErrTeamNotFound
			case pgErrCheckViolation:
				return nil, my_errors.ErrNonPositivePoints
			case pgErrUniqueViolation:
				// Another request with the same dedup token committed first.
				return r.replayAfterConflict(ctx, req.DedupToken)
			}
		}
		return nil, my_errors.StoreFailure("failed to insert score", err)
	}

	// Atomic store-side increment. Never read-then-write the total in
	// application code.
	updateQuery := `UPDATE teams SET score = score + $1 WHERE id = $2`
	tag, err := tx.Exec(ctx, updateQuery, req.Points, req.TeamID)
	if err != nil {
		return nil, my_errors.StoreFailure("failed to update team score", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, my_errors.ErrTeamNotFound
	}

	nameQuery := `SELECT name FROM teams WHERE id = $1`
	if err := tx.QueryRow(ctx, nameQuery, req.TeamID).Scan(&award.TeamName); err != nil {
		return nil, my_errors.StoreFailure("failed to read team name", err)
	}

	eventID, err := appendEvent(ctx, tx, domain.EventScoreUpdate, domain.ScoreUpdatePayload{
		TeamID:    award.TeamID,
		TeamName:  award.TeamName,
		Points:    award.Points,
		Challenge: award.Challenge,
		Comment:   award.Comment,
		Actor:     award.Actor,
	})
	if err != nil {
		return nil, my_errors.StoreFailure("failed to append score event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, my_errors.StoreFailure("failed to commit award transaction", err)
	}

	return &domain.AwardResult{Award: award, EventID: eventID}, nil
}

// RecentAwards returns the latest awards joined with the owning team's
// current name, in descending id order (commit order).
func (r *ScoreRepository) RecentAwards(ctx context.Context, limit int) ([]domain.ScoreAward, error) {
	query := `
        SELECT s.id, s.team_id, t.name, s.points, s.challenge, s.comment, s.actor, s.created_at
        FROM scores s
        JOIN teams t ON t.id = s.team_id
        ORDER BY s.id DESC
        LIMIT $1
    `
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, my_errors.StoreFailure("failed to list recent awards", err)
	}
	defer rows.Close()

	awards := []domain.ScoreAward{}
	for rows.Next() {
		var a domain.ScoreAward
		if err := rows.Scan(&a.ID, &a.TeamID, &a.TeamName, &a.Points, &a.Challenge, &a.Comment, &a.Actor, &a.CreatedAt); err != nil {
			return nil, my_errors.StoreFailure("failed to scan award", err)
		}
		awards = append(awards, a)
	}
	if err := rows.Err(); err != nil {
		return nil, my_errors.StoreFailure("failed to read awards", err)
	}
	return awards, nil
}

func (r *ScoreRepository) findByDedupToken(ctx context.Context, token string) (*domain.AwardResult, error) {
	query := `
        SELECT s.id, s.team_id, t.name, s.points, s.challenge, s.comment, s.actor, s.created_at
        FROM scores s
        JOIN teams t ON t.id = s.team_id
        WHERE s.dedup_token = $1
    `
	var a domain.ScoreAward
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&a.ID, &a.TeamID, &a.TeamName, &a.Points, &a.Challenge, &a.Comment, &a.Actor, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, my_errors.StoreFailure("failed to look up dedup token", err)
	}
	a.DedupToken = token
	return &domain.AwardResult{Award: a, Replayed: true}, nil
}

func (r *ScoreRepository) replayAfterConflict(ctx context.Context, token string) (*domain.AwardResult, error) {
	if token == "" {
		return nil, my_errors.StoreFailure("failed to insert score", fmt.Errorf("unexpected unique violation"))
	}
	prior, err := r.findByDedupToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, my_errors.StoreFailure("failed to replay award", fmt.Errorf("dedup token vanished"))
	}
	return prior, nil
}
