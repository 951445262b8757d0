package state

import (
	"fmt"
	"strings"

	"github.com/spec-kit/community-engage/internal/domain"
)

// Action is the closed alphabet of state transitions. Each variant carries a
// typed payload; the reducer matches them exhaustively and treats anything
// else as a no-op.
type Action interface {
	isAction()
}

// UserPatch carries optional field updates for the current user.
type UserPatch struct {
	Name               *string
	Email              *string
	VerificationStatus *domain.VerificationStatus
}

// SetUser replaces the user slot wholesale. A nil user logs out.
type SetUser struct {
	User *domain.User
}

// UpdateUser merges patch fields into the current user.
type UpdateUser struct {
	Patch UserPatch
}

// UpdateTrustPoints is the only legal trust-point mutation. The delta is
// clamped into the valid range and the engagement is appended to the user's
// event history.
type UpdateTrustPoints struct {
	UserID  string
	Delta   int
	Reason  string
	EventID string
}

// SwitchTrack changes the active platform track, mirroring it into the UI
// theme and preferences in the same transition.
type SwitchTrack struct {
	Track domain.Track
}

// AddNGO registers an NGO in the catalog.
type AddNGO struct {
	NGO *domain.NGO
}

// VerifyNGO marks an NGO as verified with its Darpan id. Verification is
// monotonic: no action reverses it.
type VerifyNGO struct {
	NGOID    string
	DarpanID string
}

// AddEvent registers an event in the catalog.
type AddEvent struct {
	Event *domain.Event
}

// RSVPEvent appends a user id to an event's RSVP list.
type RSVPEvent struct {
	EventID string
	UserID  string
}

// CancelRSVP filters a user id out of an event's RSVP list.
type CancelRSVP struct {
	EventID string
	UserID  string
}

// AddChatThread opens a new chat thread.
type AddChatThread struct {
	Thread *domain.ChatThread
}

// SendMessage appends a message to a thread and bumps its last activity.
type SendMessage struct {
	ThreadID string
	Message  domain.ChatMessage
}

// MarkMessagesRead marks only the listed message ids as read.
type MarkMessagesRead struct {
	ThreadID   string
	MessageIDs []string
}

// AddRSVPRecord inserts an RSVP lifecycle record (optimistic or settled).
type AddRSVPRecord struct {
	Record *domain.RSVP
}

// ReplaceRSVPRecord swaps a temporary-id record for the settled one returned
// by the RSVP service.
type ReplaceRSVPRecord struct {
	TempID string
	Record *domain.RSVP
}

// SetRSVPRecordStatus flips a record's status and stamps it.
type SetRSVPRecordStatus struct {
	RecordID string
	Status   domain.RSVPStatus
}

// RestoreRSVPRecord replaces the record with the same id by the given
// snapshot, verbatim. Used for rollback after a failed service call.
type RestoreRSVPRecord struct {
	Record *domain.RSVP
}

// RemoveRSVPRecord deletes a record entirely (failed optimistic create).
type RemoveRSVPRecord struct {
	RecordID string
}

// AddNotification appends a store-created notification.
type AddNotification struct {
	Notification *domain.Notification
}

// MarkNotificationRead marks one notification as read.
type MarkNotificationRead struct {
	NotificationID string
}

// RemoveNotification deletes one notification.
type RemoveNotification struct {
	NotificationID string
}

// SetLoading toggles the global loading flag.
type SetLoading struct {
	Loading bool
}

// ShowModal opens the named modal.
type ShowModal struct {
	Modal string
}

// HideModal closes any open modal.
type HideModal struct{}

// SetViewMode switches the feed view mode.
type SetViewMode struct {
	Mode ViewMode
}

// SyncWithStorage replaces the entire state with an externally-loaded
// snapshot. Used once at startup to hydrate from the persistence adapter.
type SyncWithStorage struct {
	State *State
}

func (SetUser) isAction()              {}
func (UpdateUser) isAction()           {}
func (UpdateTrustPoints) isAction()    {}
func (SwitchTrack) isAction()          {}
func (AddNGO) isAction()               {}
func (VerifyNGO) isAction()            {}
func (AddEvent) isAction()             {}
func (RSVPEvent) isAction()            {}
func (CancelRSVP) isAction()           {}
func (AddChatThread) isAction()        {}
func (SendMessage) isAction()          {}
func (MarkMessagesRead) isAction()     {}
func (AddRSVPRecord) isAction()        {}
func (ReplaceRSVPRecord) isAction()    {}
func (SetRSVPRecordStatus) isAction()  {}
func (RestoreRSVPRecord) isAction()    {}
func (RemoveRSVPRecord) isAction()     {}
func (AddNotification) isAction()      {}
func (MarkNotificationRead) isAction() {}
func (RemoveNotification) isAction()   {}
func (SetLoading) isAction()           {}
func (ShowModal) isAction()            {}
func (HideModal) isAction()            {}
func (SetViewMode) isAction()          {}
func (SyncWithStorage) isAction()      {}

// ActionName returns a short tag for logging and metrics.
func ActionName(action Action) string {
	if action == nil {
		return "nil"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", action), "state.")
}
