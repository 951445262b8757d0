package state

import (
	"fmt"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/observability"
)

func TestStoreDispatchNotifiesOnChangeOnly(t *testing.T) {
	store := NewStore(zap.NewNop(), observability.NewMetrics())

	var fired int
	store.Subscribe(func(*State) { fired++ })

	store.Dispatch(SetUser{User: &domain.User{ID: "user-1"}})
	if fired != 1 {
		t.Fatalf("expected one notification, got %d", fired)
	}

	// Identity result: no listener call.
	store.Dispatch(unknownAction{})
	if fired != 1 {
		t.Fatalf("expected no notification for ignored action, got %d", fired)
	}
}

func TestStoreCountsDispatches(t *testing.T) {
	metrics := observability.NewMetrics()
	store := NewStore(zap.NewNop(), metrics)

	store.Dispatch(SetLoading{Loading: true})
	store.Dispatch(unknownAction{})

	if got := metrics.ActionCount("SetLoading", true); got != 1 {
		t.Fatalf("expected one applied SetLoading, got %d", got)
	}
	if got := metrics.ActionCount("unknownAction", false); got != 1 {
		t.Fatalf("expected one ignored unknownAction, got %d", got)
	}
}

func TestStoreDeliversSnapshotsInCommitOrder(t *testing.T) {
	store := NewStore(zap.NewNop(), nil)

	var seen []int
	store.Subscribe(func(s *State) { seen = append(seen, len(s.UI.Notifications)) })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Dispatch(AddNotification{Notification: &domain.Notification{ID: fmt.Sprintf("n-%d", n)}})
		}(i)
	}
	wg.Wait()

	if len(seen) != 50 {
		t.Fatalf("expected 50 deliveries, got %d", len(seen))
	}
	for i, count := range seen {
		if count != i+1 {
			t.Fatalf("delivery %d carried %d notifications, want %d", i, count, i+1)
		}
	}
}

func TestStoreHydrateReplacesState(t *testing.T) {
	store := NewStore(zap.NewNop(), nil)
	loaded := New()
	loaded.User = &domain.User{ID: "user-3", TrustPoints: 55}

	store.Hydrate(loaded)
	if store.State() != loaded {
		t.Fatal("expected hydrated snapshot to become current state")
	}
}
