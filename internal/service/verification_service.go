package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/events"
	"github.com/spec-kit/community-engage/internal/repository"
	"github.com/spec-kit/community-engage/internal/state"
	"github.com/spec-kit/community-engage/pkg/errorutil"
)

// VerificationService verifies NGOs against their Darpan registration id.
// Malformed ids are rejected before any I/O; only a successful backend write
// results in a VERIFY_NGO dispatch.
type VerificationService struct {
	ngos       repository.NGORepository
	sessions   *SessionService
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewVerificationService builds the service.
func NewVerificationService(ngos repository.NGORepository, sessions *SessionService, dispatcher events.Dispatcher, logger *zap.Logger) *VerificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VerificationService{
		ngos:       ngos,
		sessions:   sessions,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// VerifyNGO validates the id, persists the verification, and reflects it into
// the caller's store. On any failure the store is left untouched.
func (s *VerificationService) VerifyNGO(ctx context.Context, store *state.Store, ngoID, darpanID string) (*domain.NGO, error) {
	if !domain.ValidDarpanID(darpanID) {
		return nil, errorutil.NewValidationError("darpan id must be exactly 5 digits", map[string]any{
			"field": "darpan_id",
		})
	}
	if _, ok := store.State().FindNGO(ngoID); !ok {
		return nil, errorutil.NewNotFound("ngo", map[string]any{"ngo_id": ngoID})
	}

	if s.ngos != nil {
		if err := s.ngos.MarkVerified(ctx, ngoID, darpanID); err != nil {
			return nil, err
		}
	}

	next := store.Dispatch(state.VerifyNGO{NGOID: ngoID, DarpanID: darpanID})
	ngo, _ := next.FindNGO(ngoID)

	if user := next.User; user != nil && s.sessions != nil {
		_ = s.sessions.Persist(ctx, user.ID)
	}
	if s.dispatcher != nil && ngo != nil {
		userID := ""
		if next.User != nil {
			userID = next.User.ID
		}
		err := s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventNGOVerified,
			UserID:    userID,
			Timestamp: time.Now(),
			Payload: events.NGOVerifiedPayload{
				NGOID:    ngo.ID,
				NGOName:  ngo.Name,
				DarpanID: ngo.DarpanID,
			},
		})
		if err != nil {
			s.logger.Warn("ngo verified event publish failed", zap.String("ngo_id", ngo.ID), zap.Error(err))
		}
	}
	return ngo, nil
}
