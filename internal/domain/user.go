package domain

import "time"

// VerificationStatus represents identity verification states for a user.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
)

// TrustPointsMin and TrustPointsMax bound the trust-point scale.
const (
	TrustPointsMin = 0
	TrustPointsMax = 100
)

// EngagementRecord is one append-only entry in a user's event history,
// carrying the signed point delta the engagement was worth.
type EngagementRecord struct {
	EventID    string    `json:"event_id,omitempty"`
	Action     string    `json:"action"`
	PointDelta int       `json:"point_delta"`
	OccurredAt time.Time `json:"occurred_at"`
}

// User is the domain model for platform members.
type User struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	PasswordHash       string             `json:"-"`
	TrustPoints        int                `json:"trust_points"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	EventHistory       []EngagementRecord `json:"event_history"`
	ChatHistory        []string           `json:"chat_history"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
