package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/observability"
	"github.com/spec-kit/community-engage/internal/repository"
	"github.com/spec-kit/community-engage/internal/state"
)

// SessionService owns one state store per signed-in user. Stores are hydrated
// from the persistence adapter when a snapshot exists and seeded from the
// catalogs otherwise; selected mutations are persisted back through the
// adapter.
type SessionService struct {
	mu     sync.Mutex
	stores map[string]*state.Store

	snapshots state.SnapshotStore
	ngos      repository.NGORepository
	events    repository.EventRepository
	logger    *zap.Logger
	metrics   *observability.Metrics
}

// SessionDependencies bundles collaborators for the session service.
type SessionDependencies struct {
	Snapshots state.SnapshotStore
	NGORepo   repository.NGORepository
	EventRepo repository.EventRepository
	Logger    *zap.Logger
	Metrics   *observability.Metrics
}

// NewSessionService builds the service.
func NewSessionService(deps SessionDependencies) *SessionService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		stores:    make(map[string]*state.Store),
		snapshots: deps.Snapshots,
		ngos:      deps.NGORepo,
		events:    deps.EventRepo,
		logger:    logger,
		metrics:   deps.Metrics,
	}
}

// StoreFor returns the store for a user, creating and hydrating it on first
// use within the process.
func (s *SessionService) StoreFor(ctx context.Context, user *domain.User) (*state.Store, error) {
	s.mu.Lock()
	if store, ok := s.stores[user.ID]; ok {
		s.mu.Unlock()
		return store, nil
	}
	s.mu.Unlock()

	store := state.NewStore(s.logger, s.metrics)

	snapshot, found, err := s.snapshots.Load(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if !found {
		snapshot, err = s.seed(ctx)
		if err != nil {
			return nil, err
		}
	}
	store.Hydrate(snapshot)
	// The freshly-authenticated user wins over whatever the snapshot carried.
	store.Dispatch(state.SetUser{User: user})

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.stores[user.ID]; ok {
		return existing, nil
	}
	s.stores[user.ID] = store
	return store, nil
}

// Lookup returns an already-created store without hydrating.
func (s *SessionService) Lookup(userID string) (*state.Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	store, ok := s.stores[userID]
	return store, ok
}

// Persist saves the user's current snapshot through the adapter.
func (s *SessionService) Persist(ctx context.Context, userID string) error {
	store, ok := s.Lookup(userID)
	if !ok {
		return nil
	}
	if err := s.snapshots.Save(ctx, userID, store.State()); err != nil {
		s.logger.Warn("snapshot save failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// Drop releases a user's store, persisting it first.
func (s *SessionService) Drop(ctx context.Context, userID string) {
	_ = s.Persist(ctx, userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stores, userID)
}

func (s *SessionService) seed(ctx context.Context) (*state.State, error) {
	snapshot := state.New()
	if s.ngos != nil {
		ngos, err := s.ngos.List(ctx)
		if err != nil {
			return nil, err
		}
		snapshot.NGOs = ngos
	}
	if s.events != nil {
		events, err := s.events.List(ctx)
		if err != nil {
			return nil, err
		}
		snapshot.Events = events
	}
	return snapshot, nil
}
