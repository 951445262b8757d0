package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/events"
	"github.com/spec-kit/community-engage/internal/repository"
	"github.com/spec-kit/community-engage/internal/rsvp"
)

// RSVPService is the durable implementation of the controller's external RSVP
// collaborator, backed by the rsvps table.
type RSVPService struct {
	records    repository.RSVPRepository
	dispatcher events.Dispatcher
}

var _ rsvp.Service = (*RSVPService)(nil)

// NewRSVPService builds the service.
func NewRSVPService(records repository.RSVPRepository, dispatcher events.Dispatcher) *RSVPService {
	return &RSVPService{records: records, dispatcher: dispatcher}
}

// CreateRSVP inserts a confirmed record and returns it with its stable id.
func (s *RSVPService) CreateRSVP(ctx context.Context, eventID, userID string) (*domain.RSVP, error) {
	record := &domain.RSVP{
		EventID: eventID,
		UserID:  userID,
		Status:  domain.RSVPStatusConfirmed,
	}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventRSVPConfirmed, record)
	return record, nil
}

// CancelRSVP flips the confirmed record for the pair to cancelled.
func (s *RSVPService) CancelRSVP(ctx context.Context, eventID, userID string) error {
	if err := s.records.Cancel(ctx, eventID, userID); err != nil {
		return err
	}
	s.publish(ctx, events.EventRSVPCancelled, &domain.RSVP{EventID: eventID, UserID: userID})
	return nil
}

// GetUserRSVPs returns all lifecycle records for a user.
func (s *RSVPService) GetUserRSVPs(ctx context.Context, userID string) ([]domain.RSVP, error) {
	return s.records.ListByUser(ctx, userID)
}

func (s *RSVPService) publish(ctx context.Context, eventType events.EventType, record *domain.RSVP) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    record.UserID,
		Timestamp: time.Now(),
		Payload: events.RSVPPayload{
			RSVPID:  record.ID,
			EventID: record.EventID,
		},
	})
}
