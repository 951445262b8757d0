package domain

import "time"

// RSVPStatus enumerates lifecycle states for an RSVP record.
type RSVPStatus string

const (
	RSVPStatusConfirmed RSVPStatus = "CONFIRMED"
	RSVPStatusCancelled RSVPStatus = "CANCELLED"
)

// RSVP is an intent-to-attend record for an (event, user) pair. At most one
// confirmed record may exist per pair at a time; a cancelled record is
// terminal and a new confirmation starts a fresh record.
type RSVP struct {
	ID        string     `json:"id"`
	EventID   string     `json:"event_id"`
	UserID    string     `json:"user_id"`
	Status    RSVPStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
