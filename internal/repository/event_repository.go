package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/community-engage/internal/domain"
)

// EventRepository encapsulates event persistence. RSVP lists live in the rsvps
// table and are joined in by the caller when needed.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository instantiates repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (title, description, category, venue_name, venue_address, venue_type, organizer_id, max_attendees, starts_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.Category,
		event.Venue.Name,
		event.Venue.Address,
		event.Venue.Type,
		event.OrganizerID,
		event.MaxAttendees,
		event.StartsAt,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	const query = `
        SELECT id, title, description, category, venue_name, venue_address, venue_type,
               organizer_id, max_attendees, starts_at, created_at, updated_at
        FROM events WHERE id=$1`
	var event domain.Event
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Category,
		&event.Venue.Name,
		&event.Venue.Address,
		&event.Venue.Type,
		&event.OrganizerID,
		&event.MaxAttendees,
		&event.StartsAt,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		return nil, err
	}
	event.Venue = domain.ClassifyVenue(event.Venue)
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	const query = `
        SELECT id, title, description, category, venue_name, venue_address, venue_type,
               organizer_id, max_attendees, starts_at, created_at, updated_at
        FROM events ORDER BY starts_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Category,
			&event.Venue.Name,
			&event.Venue.Address,
			&event.Venue.Type,
			&event.OrganizerID,
			&event.MaxAttendees,
			&event.StartsAt,
			&event.CreatedAt,
			&event.UpdatedAt,
		); err != nil {
			return nil, err
		}
		event.Venue = domain.ClassifyVenue(event.Venue)
		result = append(result, &event)
	}
	return result, rows.Err()
}
