package domain

import "time"

// Event is the domain model for social gatherings and volunteering drives.
type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Venue        Venue     `json:"venue"`
	OrganizerID  string    `json:"organizer_id"`
	RSVPList     []string  `json:"rsvp_list"`
	MaxAttendees int       `json:"max_attendees"`
	StartsAt     time.Time `json:"starts_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRSVP reports whether the user id is on the event's RSVP list.
func (e *Event) HasRSVP(userID string) bool {
	for _, id := range e.RSVPList {
		if id == userID {
			return true
		}
	}
	return false
}

// IsFull reports whether the RSVP list has reached capacity. The reducer does
// not enforce this; it is an optimistic gate applied by callers before
// dispatching an RSVP.
func (e *Event) IsFull() bool {
	return e.MaxAttendees > 0 && len(e.RSVPList) >= e.MaxAttendees
}
