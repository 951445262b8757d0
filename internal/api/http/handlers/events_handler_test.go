package handlers

import (
	"context"
	"testing"

	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/state"
)

type stubRSVPService struct{}

func (stubRSVPService) CreateRSVP(ctx context.Context, eventID, userID string) (*domain.RSVP, error) {
	return &domain.RSVP{ID: "rsvp-1", EventID: eventID, UserID: userID, Status: domain.RSVPStatusConfirmed}, nil
}

func (stubRSVPService) CancelRSVP(ctx context.Context, eventID, userID string) error { return nil }

func (stubRSVPService) GetUserRSVPs(ctx context.Context, userID string) ([]domain.RSVP, error) {
	return nil, nil
}

func seededSessionStore(t *testing.T) *state.Store {
	t.Helper()
	store := state.NewStore(nil, nil)
	store.Hydrate(&state.State{
		User: &domain.User{ID: "user-1", TrustPoints: 50},
		Events: []*domain.Event{
			{ID: "event-1", Title: "Park Cleanup", MaxAttendees: 10},
		},
	})
	return store
}

func TestControllerForReusesControllerForSameStore(t *testing.T) {
	handler := NewEventHandler(nil, stubRSVPService{}, nil)
	store := seededSessionStore(t)

	first := handler.controllerFor("user-1", store)
	second := handler.controllerFor("user-1", store)
	if first != second {
		t.Fatal("expected the same controller for an unchanged store")
	}
}

func TestControllerForRebindsAfterSessionRebuild(t *testing.T) {
	handler := NewEventHandler(nil, stubRSVPService{}, nil)

	dropped := seededSessionStore(t)
	old := handler.controllerFor("user-1", dropped)

	// Logout drops the session; the next login hydrates a fresh store.
	active := seededSessionStore(t)
	rebuilt := handler.controllerFor("user-1", active)
	if rebuilt == old {
		t.Fatal("expected a fresh controller after the session store changed")
	}

	if _, err := rebuilt.Create(context.Background(), "event-1"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, ok := active.State().ConfirmedRSVP("event-1"); !ok {
		t.Fatal("rsvp record missing from the active store")
	}
	if _, ok := dropped.State().ConfirmedRSVP("event-1"); ok {
		t.Fatal("rsvp record landed in the dropped store")
	}
}
