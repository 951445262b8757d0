package domain

import "time"

// NotificationType enumerates notification categories.
type NotificationType string

const (
	NotificationTrustPoints NotificationType = "TRUST_POINTS"
	NotificationRSVP        NotificationType = "RSVP"
	NotificationNGOVerified NotificationType = "NGO_VERIFIED"
	NotificationMessage     NotificationType = "MESSAGE"
	NotificationSystem      NotificationType = "SYSTEM"
)

// Notification is a store-created UI notification. Read state is its only
// mutable field besides removal.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
