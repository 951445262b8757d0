package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/community-engage/internal/domain"
)

// NGORepository encapsulates NGO persistence.
type NGORepository interface {
	Create(ctx context.Context, ngo *domain.NGO) error
	GetByID(ctx context.Context, id string) (*domain.NGO, error)
	List(ctx context.Context) ([]*domain.NGO, error)
	MarkVerified(ctx context.Context, id, darpanID string) error
}

type ngoRepository struct {
	pool *pgxpool.Pool
}

// NewNGORepository instantiates repository.
func NewNGORepository(pool *pgxpool.Pool) NGORepository {
	return &ngoRepository{pool: pool}
}

func (r *ngoRepository) Create(ctx context.Context, ngo *domain.NGO) error {
	const query = `
        INSERT INTO ngos (name, description, category, location, is_verified, darpan_id, volunteers_needed, current_volunteers)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	darpan := any(nil)
	if ngo.DarpanID != "" {
		darpan = ngo.DarpanID
	}
	return r.pool.QueryRow(ctx, query,
		ngo.Name,
		ngo.Description,
		ngo.Category,
		ngo.Location,
		ngo.IsVerified,
		darpan,
		ngo.VolunteersNeeded,
		ngo.CurrentVolunteers,
	).Scan(&ngo.ID, &ngo.CreatedAt, &ngo.UpdatedAt)
}

func (r *ngoRepository) GetByID(ctx context.Context, id string) (*domain.NGO, error) {
	const query = `
        SELECT id, name, description, category, location, is_verified, darpan_id,
               volunteers_needed, current_volunteers, created_at, updated_at
        FROM ngos WHERE id=$1`
	var ngo domain.NGO
	var darpan *string
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ngo.ID,
		&ngo.Name,
		&ngo.Description,
		&ngo.Category,
		&ngo.Location,
		&ngo.IsVerified,
		&darpan,
		&ngo.VolunteersNeeded,
		&ngo.CurrentVolunteers,
		&ngo.CreatedAt,
		&ngo.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if darpan != nil {
		ngo.DarpanID = *darpan
	}
	return &ngo, nil
}

func (r *ngoRepository) List(ctx context.Context) ([]*domain.NGO, error) {
	const query = `
        SELECT id, name, description, category, location, is_verified, darpan_id,
               volunteers_needed, current_volunteers, created_at, updated_at
        FROM ngos ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.NGO
	for rows.Next() {
		var ngo domain.NGO
		var darpan *string
		if err := rows.Scan(
			&ngo.ID,
			&ngo.Name,
			&ngo.Description,
			&ngo.Category,
			&ngo.Location,
			&ngo.IsVerified,
			&darpan,
			&ngo.VolunteersNeeded,
			&ngo.CurrentVolunteers,
			&ngo.CreatedAt,
			&ngo.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if darpan != nil {
			ngo.DarpanID = *darpan
		}
		result = append(result, &ngo)
	}
	return result, rows.Err()
}

func (r *ngoRepository) MarkVerified(ctx context.Context, id, darpanID string) error {
	const query = `UPDATE ngos SET is_verified=TRUE, darpan_id=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, darpanID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
