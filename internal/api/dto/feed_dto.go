package dto

import "time"

// NGOSummary is the API view of an NGO.
type NGOSummary struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Category          string `json:"category"`
	Location          string `json:"location"`
	IsVerified        bool   `json:"is_verified"`
	VolunteersNeeded  int    `json:"volunteers_needed"`
	CurrentVolunteers int    `json:"current_volunteers"`
}

// VerifyNGORequest carries the Darpan registration id.
type VerifyNGORequest struct {
	DarpanID string `json:"darpan_id"`
}

// VenueSummary is the API view of a venue with its derived safety badge.
type VenueSummary struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Type         string `json:"type"`
	SafetyRating string `json:"safety_rating"`
	SafetyBadge  string `json:"safety_badge"`
}

// EventSummary is the API view of an event.
type EventSummary struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Venue        VenueSummary `json:"venue"`
	MaxAttendees int          `json:"max_attendees"`
	Attendees    int          `json:"attendees"`
	IsRSVPd      bool         `json:"is_rsvpd"`
	StartsAt     time.Time    `json:"starts_at"`
}

// RSVPResponse is the API view of an RSVP record.
type RSVPResponse struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	Status  string `json:"status"`
}
