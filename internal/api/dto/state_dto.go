package dto

import "time"

// UserSummary is the API view of a member.
type UserSummary struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	TrustPoints        int    `json:"trust_points"`
	TrustTier          string `json:"trust_tier"`
	CanRSVP            bool   `json:"can_rsvp"`
	NearIneligibility  bool   `json:"near_ineligibility"`
	VerificationStatus string `json:"verification_status"`
}

// AwardPointsRequest applies one named trust action.
type AwardPointsRequest struct {
	Action  string `json:"action"`
	EventID string `json:"event_id,omitempty"`
}

// SwitchTrackRequest changes the active track.
type SwitchTrackRequest struct {
	Track string `json:"track"`
}

// SetViewModeRequest changes the feed view mode.
type SetViewModeRequest struct {
	Mode string `json:"mode"`
}

// ShowModalRequest opens a named modal.
type ShowModalRequest struct {
	Modal string `json:"modal"`
}

// StateSummary is the API view of a session snapshot.
type StateSummary struct {
	User          *UserSummary          `json:"user"`
	CurrentTrack  string                `json:"current_track"`
	ViewMode      string                `json:"view_mode"`
	ActiveModal   string                `json:"active_modal,omitempty"`
	Loading       bool                  `json:"loading"`
	NGOCount      int                   `json:"ngo_count"`
	EventCount    int                   `json:"event_count"`
	Notifications []NotificationSummary `json:"notifications"`
}

// NotificationSummary is the API view of a notification.
type NotificationSummary struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
