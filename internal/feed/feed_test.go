package feed

import (
	"testing"
	"time"

	"github.com/spec-kit/community-engage/internal/domain"
)

func sampleNGOs() []*domain.NGO {
	return []*domain.NGO{
		{ID: "ngo-1", Name: "Green Earth Foundation", Description: "We plant trees across the city", Category: "Environment", IsVerified: true, VolunteersNeeded: 10, CurrentVolunteers: 4},
		{ID: "ngo-2", Name: "Education for All", Description: "After-school tutoring", Category: "Education", VolunteersNeeded: 5, CurrentVolunteers: 5},
		{ID: "ngo-3", Name: "Animal Rescue Center", Description: "Shelter and adoption drives", Category: "Animals", IsVerified: true, VolunteersNeeded: 8, CurrentVolunteers: 2},
	}
}

func TestFilterNGOsSubstringSearch(t *testing.T) {
	matches := FilterNGOs(sampleNGOs(), NGOQuery{Search: "tree"})
	if len(matches) != 1 {
		t.Fatalf("expected exactly one match for %q, got %d", "tree", len(matches))
	}
	if matches[0].ID != "ngo-1" {
		t.Fatalf("expected ngo-1, got %s", matches[0].ID)
	}
}

func TestFilterNGOsSearchIsCaseInsensitive(t *testing.T) {
	matches := FilterNGOs(sampleNGOs(), NGOQuery{Search: "  RESCUE "})
	if len(matches) != 1 || matches[0].ID != "ngo-3" {
		t.Fatalf("expected ngo-3, got %+v", matches)
	}
}

func TestFilterNGOsComposesFilters(t *testing.T) {
	ngos := sampleNGOs()

	verified := FilterNGOs(ngos, NGOQuery{VerifiedOnly: true})
	if len(verified) != 2 {
		t.Fatalf("expected two verified NGOs, got %d", len(verified))
	}

	withCapacity := FilterNGOs(ngos, NGOQuery{HasCapacity: true})
	for _, ngo := range withCapacity {
		if ngo.ID == "ngo-2" {
			t.Fatal("full NGO must be filtered out")
		}
	}

	both := FilterNGOs(ngos, NGOQuery{Category: "environment", VerifiedOnly: true})
	if len(both) != 1 || both[0].ID != "ngo-1" {
		t.Fatalf("expected only ngo-1, got %+v", both)
	}
}

func TestFilterNGOsSortAndOrder(t *testing.T) {
	ngos := sampleNGOs()

	byName := FilterNGOs(ngos, NGOQuery{SortBy: NGOSortByName})
	if byName[0].ID != "ngo-3" || byName[2].ID != "ngo-1" {
		t.Fatalf("unexpected ascending name order: %s %s %s", byName[0].ID, byName[1].ID, byName[2].ID)
	}

	desc := FilterNGOs(ngos, NGOQuery{SortBy: NGOSortByName, Descending: true})
	if desc[0].ID != "ngo-1" {
		t.Fatalf("expected ngo-1 first descending, got %s", desc[0].ID)
	}

	// No sort key: input order preserved.
	unsorted := FilterNGOs(ngos, NGOQuery{})
	for i, ngo := range ngos {
		if unsorted[i].ID != ngo.ID {
			t.Fatal("expected input order without a sort key")
		}
	}
}

func TestFilterNGOsStableSortKeepsInputOrderOnTies(t *testing.T) {
	ngos := []*domain.NGO{
		{ID: "a", Name: "Same", VolunteersNeeded: 3},
		{ID: "b", Name: "Same", VolunteersNeeded: 3},
		{ID: "c", Name: "Same", VolunteersNeeded: 3},
	}
	sorted := FilterNGOs(ngos, NGOQuery{SortBy: NGOSortByName})
	if sorted[0].ID != "a" || sorted[1].ID != "b" || sorted[2].ID != "c" {
		t.Fatalf("ties must keep input order, got %s %s %s", sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}
}

func TestFilterNGOsDoesNotMutateInput(t *testing.T) {
	ngos := sampleNGOs()
	FilterNGOs(ngos, NGOQuery{SortBy: NGOSortByName, Descending: true})
	if ngos[0].ID != "ngo-1" || ngos[2].ID != "ngo-3" {
		t.Fatal("input slice order must be preserved")
	}
}

func TestFilterEvents(t *testing.T) {
	events := []*domain.Event{
		{ID: "event-1", Title: "Park Cleanup", Category: "Outdoors", StartsAt: time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC), Venue: domain.ClassifyVenue(domain.Venue{Name: "Central Park", Type: domain.VenueTypePublic})},
		{ID: "event-2", Title: "Board Game Night", Category: "Indoors", StartsAt: time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC), Venue: domain.ClassifyVenue(domain.Venue{Name: "Cafe Ludo", Type: domain.VenueTypeCommercial})},
		{ID: "event-3", Title: "House Concert", Category: "Indoors", StartsAt: time.Date(2026, 9, 7, 20, 0, 0, 0, time.UTC), Venue: domain.ClassifyVenue(domain.Venue{Name: "Priya's Place", Type: domain.VenueTypePrivate})},
	}

	safe := FilterEvents(events, EventQuery{SafeOnly: true})
	if len(safe) != 1 || safe[0].ID != "event-1" {
		t.Fatalf("expected only the public-venue event, got %+v", safe)
	}

	byVenue := FilterEvents(events, EventQuery{Search: "ludo"})
	if len(byVenue) != 1 || byVenue[0].ID != "event-2" {
		t.Fatalf("expected venue-name search hit, got %+v", byVenue)
	}

	byDate := FilterEvents(events, EventQuery{SortBy: EventSortByDate})
	if byDate[0].ID != "event-2" || byDate[2].ID != "event-1" {
		t.Fatalf("unexpected date order: %s %s %s", byDate[0].ID, byDate[1].ID, byDate[2].ID)
	}

	upcoming := FilterEvents(events, EventQuery{After: time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)})
	if len(upcoming) != 1 || upcoming[0].ID != "event-1" {
		t.Fatalf("expected only events after the cutoff, got %+v", upcoming)
	}
}
