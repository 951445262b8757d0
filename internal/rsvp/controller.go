// Package rsvp implements the RSVP lifecycle controller: optimistic
// create/cancel over the state store backed by an external RSVP service, with
// verbatim rollback on failure.
package rsvp

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/state"
	"github.com/spec-kit/community-engage/internal/trust"
)

// Service is the external RSVP collaborator. Failures surface as errors the
// controller turns into rollbacks.
type Service interface {
	CreateRSVP(ctx context.Context, eventID, userID string) (*domain.RSVP, error)
	CancelRSVP(ctx context.Context, eventID, userID string) error
	GetUserRSVPs(ctx context.Context, userID string) ([]domain.RSVP, error)
}

var (
	// ErrNotAuthenticated is returned when no user is signed in.
	ErrNotAuthenticated = errors.New("rsvp requires an authenticated user")
	// ErrNotEligible is returned when the user is below the trust-point gate.
	ErrNotEligible = errors.New("trust points below rsvp threshold")
	// ErrAlreadyConfirmed is returned when a confirmed record already exists.
	ErrAlreadyConfirmed = errors.New("rsvp already confirmed for event")
	// ErrNoConfirmedRSVP is returned when cancelling without a confirmed record.
	ErrNoConfirmedRSVP = errors.New("no confirmed rsvp for event")
	// ErrInFlight rejects a second submit for the same (event, user) pair
	// while the first service call has not settled.
	ErrInFlight = errors.New("rsvp request already in flight")
)

// Controller coordinates the RSVP lifecycle for the store's current user.
type Controller struct {
	store   *state.Store
	service Service
	logger  *zap.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewController builds a controller over a store and an RSVP service.
func NewController(store *state.Store, service Service, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		store:    store,
		service:  service,
		logger:   logger,
		inflight: make(map[string]struct{}),
	}
}

// Create inserts an optimistic confirmed record and reconciles it with the
// RSVP service: on success the temporary record is replaced by the service's
// record, on failure the optimistic insert is removed entirely.
func (c *Controller) Create(ctx context.Context, eventID string) (*domain.RSVP, error) {
	snapshot := c.store.State()
	user := snapshot.User
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	if !trust.CanRSVP(user.TrustPoints) {
		return nil, ErrNotEligible
	}
	if trust.NearIneligibility(user.TrustPoints) {
		c.logger.Warn("user close to rsvp ineligibility",
			zap.String("user_id", user.ID),
			zap.Int("trust_points", user.TrustPoints),
		)
	}
	key := eventID + "|" + user.ID
	if !c.begin(key) {
		return nil, ErrInFlight
	}
	defer c.end(key)

	// Re-read after acquiring the key so an earlier settled submit is seen.
	if _, ok := c.store.State().ConfirmedRSVP(eventID); ok {
		return nil, ErrAlreadyConfirmed
	}

	now := time.Now()
	optimistic := &domain.RSVP{
		ID:        "tmp-" + uuid.NewString(),
		EventID:   eventID,
		UserID:    user.ID,
		Status:    domain.RSVPStatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var settled *domain.RSVP
	err := withOptimisticUpdate(
		func() {
			c.store.Dispatch(state.AddRSVPRecord{Record: optimistic})
			c.store.Dispatch(state.RSVPEvent{EventID: eventID, UserID: user.ID})
		},
		func() error {
			record, err := c.service.CreateRSVP(ctx, eventID, user.ID)
			if err != nil {
				return err
			}
			settled = record
			c.store.Dispatch(state.ReplaceRSVPRecord{TempID: optimistic.ID, Record: record})
			return nil
		},
		func() {
			c.store.Dispatch(state.RemoveRSVPRecord{RecordID: optimistic.ID})
			c.store.Dispatch(state.CancelRSVP{EventID: eventID, UserID: user.ID})
		},
	)
	if err != nil {
		c.logger.Warn("rsvp create failed, rolled back",
			zap.String("event_id", eventID),
			zap.Error(err),
		)
		return nil, err
	}
	return settled, nil
}

// Cancel optimistically flips the confirmed record to cancelled and asks the
// service to do the same; on failure the pre-cancellation record is restored
// field-for-field.
func (c *Controller) Cancel(ctx context.Context, eventID string) error {
	snapshot := c.store.State()
	user := snapshot.User
	if user == nil {
		return ErrNotAuthenticated
	}
	key := eventID + "|" + user.ID
	if !c.begin(key) {
		return ErrInFlight
	}
	defer c.end(key)

	record, ok := c.store.State().ConfirmedRSVP(eventID)
	if !ok {
		return ErrNoConfirmedRSVP
	}

	before := *record
	err := withOptimisticUpdate(
		func() {
			c.store.Dispatch(state.SetRSVPRecordStatus{RecordID: record.ID, Status: domain.RSVPStatusCancelled})
			c.store.Dispatch(state.CancelRSVP{EventID: eventID, UserID: user.ID})
		},
		func() error {
			return c.service.CancelRSVP(ctx, eventID, user.ID)
		},
		func() {
			restored := before
			c.store.Dispatch(state.RestoreRSVPRecord{Record: &restored})
			c.store.Dispatch(state.RSVPEvent{EventID: eventID, UserID: user.ID})
		},
	)
	if err != nil {
		c.logger.Warn("rsvp cancel failed, rolled back",
			zap.String("event_id", eventID),
			zap.Error(err),
		)
	}
	return err
}

// IsRSVPd reports whether a confirmed record exists for the event.
func (c *Controller) IsRSVPd(eventID string) bool {
	_, ok := c.store.State().ConfirmedRSVP(eventID)
	return ok
}

// Refresh replaces local lifecycle records with the service's view. Used after
// login to reconcile records created in earlier sessions.
func (c *Controller) Refresh(ctx context.Context) error {
	user := c.store.State().User
	if user == nil {
		return ErrNotAuthenticated
	}
	records, err := c.service.GetUserRSVPs(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, existing := range c.store.State().RSVPs {
		c.store.Dispatch(state.RemoveRSVPRecord{RecordID: existing.ID})
	}
	for i := range records {
		record := records[i]
		c.store.Dispatch(state.AddRSVPRecord{Record: &record})
	}
	return nil
}

func (c *Controller) begin(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inflight[key]; busy {
		return false
	}
	c.inflight[key] = struct{}{}
	return true
}

func (c *Controller) end(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, key)
}
