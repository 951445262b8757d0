package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/events"
	"github.com/spec-kit/community-engage/internal/state"
)

type fakeNGORepo struct {
	markErr    error
	markCalls  int
	lastNGOID  string
	lastDarpan string
}

func (f *fakeNGORepo) Create(ctx context.Context, ngo *domain.NGO) error { return nil }

func (f *fakeNGORepo) GetByID(ctx context.Context, id string) (*domain.NGO, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeNGORepo) List(ctx context.Context) ([]*domain.NGO, error) { return nil, nil }

func (f *fakeNGORepo) MarkVerified(ctx context.Context, id, darpanID string) error {
	f.markCalls++
	f.lastNGOID = id
	f.lastDarpan = darpanID
	return f.markErr
}

func verificationStore(t *testing.T) *state.Store {
	t.Helper()
	store := state.NewStore(nil, nil)
	store.Hydrate(&state.State{
		User: &domain.User{ID: "user-1", TrustPoints: 50},
		NGOs: []*domain.NGO{
			{ID: "ngo-1", Name: "Green Earth Foundation"},
		},
	})
	return store
}

func TestVerifyNGORejectsMalformedDarpanID(t *testing.T) {
	tests := []struct {
		name     string
		darpanID string
	}{
		{"empty", ""},
		{"too short", "1234"},
		{"too long", "123456"},
		{"letters", "12a45"},
		{"spaces", "12 45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeNGORepo{}
			svc := NewVerificationService(repo, nil, nil, nil)
			store := verificationStore(t)

			if _, err := svc.VerifyNGO(context.Background(), store, "ngo-1", tt.darpanID); err == nil {
				t.Fatal("expected validation error")
			}
			if repo.markCalls != 0 {
				t.Fatalf("repository reached with malformed id: %d calls", repo.markCalls)
			}
			if ngo, _ := store.State().FindNGO("ngo-1"); ngo.IsVerified {
				t.Fatal("ngo verified despite malformed id")
			}
		})
	}
}

func TestVerifyNGOUnknownNGO(t *testing.T) {
	repo := &fakeNGORepo{}
	svc := NewVerificationService(repo, nil, nil, nil)
	store := verificationStore(t)

	if _, err := svc.VerifyNGO(context.Background(), store, "missing", "12345"); err == nil {
		t.Fatal("expected not found error")
	}
	if repo.markCalls != 0 {
		t.Fatalf("repository reached for unknown ngo: %d calls", repo.markCalls)
	}
}

func TestVerifyNGOBackendFailureLeavesStoreUntouched(t *testing.T) {
	repo := &fakeNGORepo{markErr: errors.New("connection refused")}
	svc := NewVerificationService(repo, nil, nil, nil)
	store := verificationStore(t)
	before := store.State()

	if _, err := svc.VerifyNGO(context.Background(), store, "ngo-1", "12345"); err == nil {
		t.Fatal("expected backend error")
	}
	if store.State() != before {
		t.Fatal("store changed on backend failure")
	}
}

func TestVerifyNGOSuccess(t *testing.T) {
	repo := &fakeNGORepo{}
	svc := NewVerificationService(repo, nil, nil, nil)
	store := verificationStore(t)

	ngo, err := svc.VerifyNGO(context.Background(), store, "ngo-1", "12345")
	if err != nil {
		t.Fatalf("VerifyNGO: %v", err)
	}
	if !ngo.IsVerified || ngo.DarpanID != "12345" {
		t.Fatalf("got verified=%v darpan=%q", ngo.IsVerified, ngo.DarpanID)
	}
	if repo.lastNGOID != "ngo-1" || repo.lastDarpan != "12345" {
		t.Fatalf("repository called with %q %q", repo.lastNGOID, repo.lastDarpan)
	}
	if got, _ := store.State().FindNGO("ngo-1"); !got.IsVerified {
		t.Fatal("verification not reflected in store")
	}
}

type failingDispatcher struct{}

func (failingDispatcher) Publish(ctx context.Context, event events.Event) error {
	return errors.New("dispatcher down")
}

func (failingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func TestVerifyNGOWarnsWhenPublishFails(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	svc := NewVerificationService(&fakeNGORepo{}, nil, failingDispatcher{}, zap.New(core))
	store := verificationStore(t)

	ngo, err := svc.VerifyNGO(context.Background(), store, "ngo-1", "12345")
	if err != nil {
		t.Fatalf("VerifyNGO: %v", err)
	}
	if !ngo.IsVerified {
		t.Fatal("verification must succeed despite the publish failure")
	}
	if logs.FilterMessage("ngo verified event publish failed").Len() != 1 {
		t.Fatalf("expected one publish warning, got %d log entries", logs.Len())
	}
}
