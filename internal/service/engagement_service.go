package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/events"
	"github.com/spec-kit/community-engage/internal/repository"
	"github.com/spec-kit/community-engage/internal/state"
	"github.com/spec-kit/community-engage/internal/trust"
)

// EngagementService applies trust-point awards: the store transition, the
// durable user row, and the domain event, in that order.
type EngagementService struct {
	users      repository.UserRepository
	sessions   *SessionService
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewEngagementService builds the service.
func NewEngagementService(users repository.UserRepository, sessions *SessionService, dispatcher events.Dispatcher, logger *zap.Logger) *EngagementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EngagementService{
		users:      users,
		sessions:   sessions,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// AwardPoints applies one named action's delta to the store's current user.
func (s *EngagementService) AwardPoints(ctx context.Context, store *state.Store, action trust.PointAction, eventID string) (*domain.User, error) {
	current := store.State().User
	if current == nil {
		return nil, fmt.Errorf("no signed-in user")
	}
	delta := trust.DeltaFor(action)
	if delta == 0 {
		return nil, fmt.Errorf("unknown trust action %q", action)
	}

	next := store.Dispatch(state.UpdateTrustPoints{
		UserID:  current.ID,
		Delta:   delta,
		Reason:  string(action),
		EventID: eventID,
	})
	user := next.User

	if s.users != nil {
		if err := s.users.UpdateTrustPoints(ctx, user.ID, user.TrustPoints); err != nil {
			s.logger.Warn("trust point write-through failed", zap.String("user_id", user.ID), zap.Error(err))
		}
	}
	if s.sessions != nil {
		_ = s.sessions.Persist(ctx, user.ID)
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTrustPointsAwarded,
			UserID:    user.ID,
			Timestamp: time.Now(),
			Payload: events.TrustPointsAwardedPayload{
				Action:   string(action),
				Delta:    delta,
				NewTotal: user.TrustPoints,
				NewTier:  string(trust.TierFor(user.TrustPoints)),
				EventID:  eventID,
			},
		})
	}
	return user, nil
}

// VerifyIdentity marks the current user verified and awards the identity
// verification bonus.
func (s *EngagementService) VerifyIdentity(ctx context.Context, store *state.Store) (*domain.User, error) {
	current := store.State().User
	if current == nil {
		return nil, fmt.Errorf("no signed-in user")
	}
	if current.VerificationStatus == domain.VerificationVerified {
		return current, nil
	}

	status := domain.VerificationVerified
	store.Dispatch(state.UpdateUser{Patch: state.UserPatch{VerificationStatus: &status}})
	if s.users != nil {
		if err := s.users.UpdateVerificationStatus(ctx, current.ID, status); err != nil {
			s.logger.Warn("verification write-through failed", zap.String("user_id", current.ID), zap.Error(err))
		}
	}
	return s.AwardPoints(ctx, store, trust.ActionVerifyIdentity, "")
}
