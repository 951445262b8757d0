package events

import (
	"time"

	"github.com/spec-kit/community-engage/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTrustPointsAwarded EventType = "trust_points_awarded"
	EventRSVPConfirmed      EventType = "rsvp_confirmed"
	EventRSVPCancelled      EventType = "rsvp_cancelled"
	EventNGOVerified        EventType = "ngo_verified"
	EventMessageSent        EventType = "message_sent"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TrustPointsAwardedPayload payload.
type TrustPointsAwardedPayload struct {
	Action   string `json:"action"`
	Delta    int    `json:"delta"`
	NewTotal int    `json:"new_total"`
	NewTier  string `json:"new_tier"`
	EventID  string `json:"event_id,omitempty"`
}

// RSVPPayload payload for confirmations and cancellations.
type RSVPPayload struct {
	RSVPID  string `json:"rsvp_id"`
	EventID string `json:"event_id"`
}

// NGOVerifiedPayload payload.
type NGOVerifiedPayload struct {
	NGOID    string `json:"ngo_id"`
	NGOName  string `json:"ngo_name"`
	DarpanID string `json:"darpan_id"`
}

// MessageSentPayload payload.
type MessageSentPayload struct {
	ThreadID    string                 `json:"thread_id"`
	MessageID   string                 `json:"message_id"`
	SenderID    string                 `json:"sender_id"`
	ContextKind domain.ChatContextKind `json:"context_kind"`
	BodyPreview string                 `json:"body_preview"`
}
