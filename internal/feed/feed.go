// Package feed derives filtered, sorted views over NGO and event collections.
// Derivations are pure and cheap enough to re-run on every keystroke; search
// debouncing belongs to the caller.
package feed

import (
	"sort"
	"strings"
	"time"

	"github.com/spec-kit/community-engage/internal/domain"
)

// NGOSortKey enumerates the sortable NGO feed columns.
type NGOSortKey string

const (
	NGOSortByName             NGOSortKey = "NAME"
	NGOSortByVolunteersNeeded NGOSortKey = "VOLUNTEERS_NEEDED"
	NGOSortByNewest           NGOSortKey = "NEWEST"
)

// EventSortKey enumerates the sortable event feed columns.
type EventSortKey string

const (
	EventSortByDate      EventSortKey = "DATE"
	EventSortByTitle     EventSortKey = "TITLE"
	EventSortByAttendees EventSortKey = "ATTENDEES"
)

// NGOQuery composes, in order: substring search, category filter, boolean
// filters, then a stable sort.
type NGOQuery struct {
	Search       string
	Category     string
	VerifiedOnly bool
	HasCapacity  bool
	SortBy       NGOSortKey
	Descending   bool
}

// EventQuery composes the same pipeline over events. After keeps events
// starting after the given instant; the zero value disables the filter so the
// derivation stays clock-free.
type EventQuery struct {
	Search     string
	Category   string
	SafeOnly   bool
	After      time.Time
	SortBy     EventSortKey
	Descending bool
}

// FilterNGOs derives an NGO feed from the input list. The input is never
// mutated and ties keep input order.
func FilterNGOs(ngos []*domain.NGO, query NGOQuery) []*domain.NGO {
	result := make([]*domain.NGO, 0, len(ngos))
	search := normalize(query.Search)
	for _, ngo := range ngos {
		if search != "" && !matchesNGO(ngo, search) {
			continue
		}
		if query.Category != "" && !strings.EqualFold(ngo.Category, query.Category) {
			continue
		}
		if query.VerifiedOnly && !ngo.IsVerified {
			continue
		}
		if query.HasCapacity && ngo.CapacityRemaining() == 0 {
			continue
		}
		result = append(result, ngo)
	}

	sortNGOs(result, query.SortBy, query.Descending)
	return result
}

// FilterEvents derives an event feed from the input list.
func FilterEvents(events []*domain.Event, query EventQuery) []*domain.Event {
	result := make([]*domain.Event, 0, len(events))
	search := normalize(query.Search)
	for _, event := range events {
		if search != "" && !matchesEvent(event, search) {
			continue
		}
		if query.Category != "" && !strings.EqualFold(event.Category, query.Category) {
			continue
		}
		if query.SafeOnly && event.Venue.SafetyRating != domain.SafetyGreen {
			continue
		}
		if !query.After.IsZero() && !event.StartsAt.After(query.After) {
			continue
		}
		result = append(result, event)
	}

	sortEvents(result, query.SortBy, query.Descending)
	return result
}

func matchesNGO(ngo *domain.NGO, search string) bool {
	return contains(ngo.Name, search) ||
		contains(ngo.Description, search) ||
		contains(ngo.Category, search)
}

func matchesEvent(event *domain.Event, search string) bool {
	return contains(event.Title, search) ||
		contains(event.Description, search) ||
		contains(event.Venue.Name, search)
}

func sortNGOs(ngos []*domain.NGO, key NGOSortKey, descending bool) {
	var less func(a, b *domain.NGO) bool
	switch key {
	case NGOSortByVolunteersNeeded:
		less = func(a, b *domain.NGO) bool { return a.CapacityRemaining() < b.CapacityRemaining() }
	case NGOSortByNewest:
		less = func(a, b *domain.NGO) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case NGOSortByName:
		less = func(a, b *domain.NGO) bool { return normalize(a.Name) < normalize(b.Name) }
	default:
		return
	}
	sort.SliceStable(ngos, func(i, j int) bool {
		if descending {
			return less(ngos[j], ngos[i])
		}
		return less(ngos[i], ngos[j])
	})
}

func sortEvents(events []*domain.Event, key EventSortKey, descending bool) {
	var less func(a, b *domain.Event) bool
	switch key {
	case EventSortByDate:
		less = func(a, b *domain.Event) bool { return a.StartsAt.Before(b.StartsAt) }
	case EventSortByTitle:
		less = func(a, b *domain.Event) bool { return normalize(a.Title) < normalize(b.Title) }
	case EventSortByAttendees:
		less = func(a, b *domain.Event) bool { return len(a.RSVPList) < len(b.RSVPList) }
	default:
		return
	}
	sort.SliceStable(events, func(i, j int) bool {
		if descending {
			return less(events[j], events[i])
		}
		return less(events[i], events[j])
	})
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
