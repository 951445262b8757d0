// Package state implements the application state store: an immutable State
// snapshot, a closed action alphabet, the pure reducer over it, and the
// single-writer Store that serializes dispatch.
package state

import (
	"github.com/spec-kit/community-engage/internal/domain"
)

// ViewMode selects how feed-like views render their lists.
type ViewMode string

const (
	ViewModeList ViewMode = "LIST"
	ViewModeGrid ViewMode = "GRID"
	ViewModeMap  ViewMode = "MAP"
)

// UIState is the slice of state owned by presentation concerns.
type UIState struct {
	Loading       bool                   `json:"loading"`
	ActiveModal   string                 `json:"active_modal,omitempty"`
	ViewMode      ViewMode               `json:"view_mode"`
	Theme         domain.Track           `json:"theme"`
	Notifications []*domain.Notification `json:"notifications"`
}

// Preferences holds sticky per-user choices.
type Preferences struct {
	LastSelectedTrack domain.Track `json:"last_selected_track"`
}

// State is one immutable snapshot of application state. Mutation happens only
// by reducing an action into a new snapshot; entities inside a snapshot are
// never written in place.
type State struct {
	User         *domain.User         `json:"user"`
	NGOs         []*domain.NGO        `json:"ngos"`
	Events       []*domain.Event      `json:"events"`
	ChatThreads  []*domain.ChatThread `json:"chat_threads"`
	RSVPs        []*domain.RSVP       `json:"rsvps"`
	CurrentTrack domain.Track         `json:"current_track"`
	Preferences  Preferences          `json:"preferences"`
	UI           UIState              `json:"ui"`
}

// New returns the initial empty state.
func New() *State {
	return &State{
		CurrentTrack: domain.TrackVolunteering,
		Preferences:  Preferences{LastSelectedTrack: domain.TrackVolunteering},
		UI: UIState{
			ViewMode: ViewModeList,
			Theme:    domain.TrackVolunteering,
		},
	}
}

// ConfirmedRSVP returns the confirmed RSVP record for an event, if any.
func (s *State) ConfirmedRSVP(eventID string) (*domain.RSVP, bool) {
	for _, record := range s.RSVPs {
		if record.EventID == eventID && record.Status == domain.RSVPStatusConfirmed {
			return record, true
		}
	}
	return nil, false
}

// FindEvent returns the event with the given id, if present.
func (s *State) FindEvent(eventID string) (*domain.Event, bool) {
	for _, event := range s.Events {
		if event.ID == eventID {
			return event, true
		}
	}
	return nil, false
}

// FindNGO returns the NGO with the given id, if present.
func (s *State) FindNGO(ngoID string) (*domain.NGO, bool) {
	for _, ngo := range s.NGOs {
		if ngo.ID == ngoID {
			return ngo, true
		}
	}
	return nil, false
}

// FindThread returns the chat thread with the given id, if present.
func (s *State) FindThread(threadID string) (*domain.ChatThread, bool) {
	for _, thread := range s.ChatThreads {
		if thread.ID == threadID {
			return thread, true
		}
	}
	return nil, false
}
