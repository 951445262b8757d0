package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/community-engage/internal/domain"
)

// RSVPRepository encapsulates RSVP record persistence. A partial unique index
// guarantees at most one confirmed row per (event, user) pair.
type RSVPRepository interface {
	Create(ctx context.Context, record *domain.RSVP) error
	GetConfirmed(ctx context.Context, eventID, userID string) (*domain.RSVP, error)
	Cancel(ctx context.Context, eventID, userID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.RSVP, error)
}

type rsvpRepository struct {
	pool *pgxpool.Pool
}

// NewRSVPRepository instantiates repository.
func NewRSVPRepository(pool *pgxpool.Pool) RSVPRepository {
	return &rsvpRepository{pool: pool}
}

func (r *rsvpRepository) Create(ctx context.Context, record *domain.RSVP) error {
	const query = `
        INSERT INTO rsvps (event_id, user_id, status)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	if record.Status == "" {
		record.Status = domain.RSVPStatusConfirmed
	}
	return r.pool.QueryRow(ctx, query,
		record.EventID,
		record.UserID,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
}

func (r *rsvpRepository) GetConfirmed(ctx context.Context, eventID, userID string) (*domain.RSVP, error) {
	const query = `
        SELECT id, event_id, user_id, status, created_at, updated_at
        FROM rsvps WHERE event_id=$1 AND user_id=$2 AND status='CONFIRMED'`
	var record domain.RSVP
	if err := r.pool.QueryRow(ctx, query, eventID, userID).Scan(
		&record.ID,
		&record.EventID,
		&record.UserID,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *rsvpRepository) Cancel(ctx context.Context, eventID, userID string) error {
	const query = `
        UPDATE rsvps SET status='CANCELLED', updated_at=NOW()
        WHERE event_id=$1 AND user_id=$2 AND status='CONFIRMED'`
	cmd, err := r.pool.Exec(ctx, query, eventID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *rsvpRepository) ListByUser(ctx context.Context, userID string) ([]domain.RSVP, error) {
	const query = `
        SELECT id, event_id, user_id, status, created_at, updated_at
        FROM rsvps WHERE user_id=$1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.RSVP
	for rows.Next() {
		var record domain.RSVP
		if err := rows.Scan(
			&record.ID,
			&record.EventID,
			&record.UserID,
			&record.Status,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
