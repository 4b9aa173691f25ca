package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/domain"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/my_errors"
)

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

// CreateTeam inserts the team and appends the TEAM_CREATED event in one
// transaction.
func (r *TeamRepository) CreateTeam(ctx context.Context, name, logoURL string, members int, actor string) (*domain.Team, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, my_errors.StoreFailure("failed to begin transaction", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback team transaction", "error", err)
		}
	}()

	team := domain.Team{Name: name, LogoURL: logoURL, Members: members}
	query := `
        INSERT INTO teams (name, logo_url, members)
        VALUES ($1, $2, $3)
        RETURNING id, score, created_at
    `
	err = tx.QueryRow(ctx, query, name, logoURL, members).Scan(&team.ID, &team.Score, &team.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return nil, my_errors.ErrTeamAlreadyExists
		}
		return nil, my_errors.StoreFailure("failed to create team", err)
	}

	_, err = appendEvent(ctx, tx, domain.EventTeamCreated, domain.TeamPayload{
		TeamID:   team.ID,
		TeamName: team.Name,
		Members:  team.Members,
		Actor:    actor,
	})
	if err != nil {
		return nil, my_errors.StoreFailure("failed to append team event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, my_errors.StoreFailure("failed to commit team transaction", err)
	}
	return &team, nil
}

func (r *TeamRepository) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	query := `
        SELECT id, name, logo_url, members, score, created_at
        FROM teams
        WHERE id = $1
    `
	var team domain.Team
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&team.ID, &team.Name, &team.LogoURL, &team.Members, &team.Score, &team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, my_errors.ErrTeamNotFound
		}
		return nil, my_errors.StoreFailure("failed to get team", err)
	}
	return &team, nil
}

func (r *TeamRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	query := `
        SELECT id, name, logo_url, members, score, created_at
        FROM teams
        ORDER BY id DESC
    `
	return r.queryTeams(ctx, query)
}

// Leaderboard orders by aggregate score descending; earliest-created team
// wins ties, id breaks exact timestamp collisions so the order is stable
// across calls.
func (r *TeamRepository) Leaderboard(ctx context.Context) ([]domain.Team, error) {
	query := `
        SELECT id, name, logo_url, members, score, created_at
        FROM teams
        ORDER BY score DESC, created_at ASC, id ASC
    `
	return r.queryTeams(ctx, query)
}

// UpdateTeam applies a partial, last-writer-wins update to the non-score
// fields and appends a TEAM_UPDATED event. The aggregate score is untouched.
func (r *TeamRepository) UpdateTeam(ctx context.Context, upd domain.TeamUpdate) (*domain.Team, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, my_errors.StoreFailure("failed to begin transaction", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback team transaction", "error", err)
		}
	}()

	query := `
        UPDATE teams
        SET name     = COALESCE($1, name),
            logo_url = COALESCE($2, logo_url),
            members  = COALESCE($3, members)
        WHERE id = $4
        RETURNING id, name, logo_url, members, score, created_at
    `
	var team domain.Team
	err = tx.QueryRow(ctx, query, upd.Name, upd.LogoURL, upd.Members, upd.ID).Scan(
		&team.ID, &team.Name, &team.LogoURL, &team.Members, &team.Score, &team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, my_errors.ErrTeamNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return nil, my_errors.ErrTeamAlreadyExists
		}
		return nil, my_errors.StoreFailure("failed to update team", err)
	}

	_, err = appendEvent(ctx, tx, domain.EventTeamUpdated, domain.TeamPayload{
		TeamID:   team.ID,
		TeamName: team.Name,
		Members:  team.Members,
		Actor:    upd.Actor,
	})
	if err != nil {
		return nil, my_errors.StoreFailure("failed to append team event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, my_errors.StoreFailure("failed to commit team transaction", err)
	}
	return &team, nil
}

// DeleteTeam removes a team that has no recorded awards. Award history is
// immutable, so a team with awards can only be retired by the front-end, not
// deleted here.
func (r *TeamRepository) DeleteTeam(ctx context.Context, id int64, actor string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return my_errors.StoreFailure("failed to begin transaction", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback team transaction", "error", err)
		}
	}()

	var name string
	err = tx.QueryRow(ctx, `SELECT name FROM teams WHERE id = $1`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return my_errors.ErrTeamNotFound
		}
		return my_errors.StoreFailure("failed to get team", err)
	}

	var hasAwards bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM scores WHERE team_id = $1)`, id).Scan(&hasAwards)
	if err != nil {
		return my_errors.StoreFailure("failed to check team awards", err)
	}
	if hasAwards {
		return my_errors.ErrTeamHasAwards
	}

	if _, err := tx.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id); err != nil {
		return my_errors.StoreFailure("failed to delete team", err)
	}

	_, err = appendEvent(ctx, tx, domain.EventTeamDeleted, domain.TeamPayload{
		TeamID:   id,
		TeamName: name,
		Actor:    actor,
	})
	if err != nil {
		return my_errors.StoreFailure("failed to append team event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return my_errors.StoreFailure("failed to commit team transaction", err)
	}
	return nil
}

func (r *TeamRepository) queryTeams(ctx context.Context, query string) ([]domain.Team, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, my_errors.StoreFailure("failed to list teams", err)
	}
	defer rows.Close()

	teams := []domain.Team{}
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.LogoURL, &team.Members, &team.Score, &team.CreatedAt); err != nil {
			return nil, my_errors.StoreFailure("failed to scan team", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, my_errors.StoreFailure("failed to read teams", err)
	}
	return teams, nil
}
