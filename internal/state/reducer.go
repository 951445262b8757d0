package state

import (
	"time"

	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/trust"
)

// Reduce computes the next state for an action. It is total over the action
// alphabet: unknown or nil actions return the input state itself (identity by
// pointer, enabling cheap change detection), and illegal or no-op actions
// (missing entity, ownership mismatch) degrade the same way. Every mutating
// branch returns a new top-level State; containers it touches are shallow
// copied and untouched entities are reused by pointer.
func Reduce(s *State, action Action) *State {
	if s == nil || action == nil {
		return s
	}

	switch a := action.(type) {
	case SetUser:
		next := *s
		next.User = a.User
		return &next

	case UpdateUser:
		if s.User == nil {
			return s
		}
		user := *s.User
		if a.Patch.Name != nil {
			user.Name = *a.Patch.Name
		}
		if a.Patch.Email != nil {
			user.Email = *a.Patch.Email
		}
		if a.Patch.VerificationStatus != nil {
			user.VerificationStatus = *a.Patch.VerificationStatus
		}
		user.UpdatedAt = time.Now()
		next := *s
		next.User = &user
		return &next

	case UpdateTrustPoints:
		if s.User == nil || s.User.ID != a.UserID {
			return s
		}
		user := *s.User
		user.TrustPoints = trust.Clamp(user.TrustPoints + a.Delta)
		record := domain.EngagementRecord{
			EventID:    a.EventID,
			Action:     a.Reason,
			PointDelta: a.Delta,
			OccurredAt: time.Now(),
		}
		user.EventHistory = append(append([]domain.EngagementRecord{}, s.User.EventHistory...), record)
		user.UpdatedAt = time.Now()
		next := *s
		next.User = &user
		return &next

	case SwitchTrack:
		next := *s
		next.CurrentTrack = a.Track
		next.Preferences.LastSelectedTrack = a.Track
		next.UI.Theme = a.Track
		return &next

	case AddNGO:
		if a.NGO == nil {
			return s
		}
		next := *s
		next.NGOs = append(append([]*domain.NGO{}, s.NGOs...), a.NGO)
		return &next

	case VerifyNGO:
		if !domain.ValidDarpanID(a.DarpanID) {
			return s
		}
		idx := -1
		for i, ngo := range s.NGOs {
			if ngo.ID == a.NGOID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return s
		}
		ngo := *s.NGOs[idx]
		ngo.IsVerified = true
		ngo.DarpanID = a.DarpanID
		ngo.UpdatedAt = time.Now()
		next := *s
		next.NGOs = append([]*domain.NGO{}, s.NGOs...)
		next.NGOs[idx] = &ngo
		return &next

	case AddEvent:
		if a.Event == nil {
			return s
		}
		next := *s
		next.Events = append(append([]*domain.Event{}, s.Events...), a.Event)
		return &next

	case RSVPEvent:
		idx := eventIndex(s, a.EventID)
		if idx < 0 {
			return s
		}
		event := *s.Events[idx]
		event.RSVPList = append(append([]string{}, event.RSVPList...), a.UserID)
		event.UpdatedAt = time.Now()
		next := *s
		next.Events = append([]*domain.Event{}, s.Events...)
		next.Events[idx] = &event
		return &next

	case CancelRSVP:
		idx := eventIndex(s, a.EventID)
		if idx < 0 || !s.Events[idx].HasRSVP(a.UserID) {
			return s
		}
		event := *s.Events[idx]
		filtered := make([]string, 0, len(event.RSVPList))
		for _, id := range event.RSVPList {
			if id != a.UserID {
				filtered = append(filtered, id)
			}
		}
		event.RSVPList = filtered
		event.UpdatedAt = time.Now()
		next := *s
		next.Events = append([]*domain.Event{}, s.Events...)
		next.Events[idx] = &event
		return &next

	case AddChatThread:
		if a.Thread == nil {
			return s
		}
		next := *s
		next.ChatThreads = append(append([]*domain.ChatThread{}, s.ChatThreads...), a.Thread)
		if s.User != nil && containsString(a.Thread.Participants, s.User.ID) {
			user := *s.User
			user.ChatHistory = append(append([]string{}, user.ChatHistory...), a.Thread.ID)
			next.User = &user
		}
		return &next

	case SendMessage:
		idx := threadIndex(s, a.ThreadID)
		if idx < 0 {
			return s
		}
		message := a.Message
		if message.SentAt.IsZero() {
			message.SentAt = time.Now()
		}
		thread := *s.ChatThreads[idx]
		thread.Messages = append(append([]domain.ChatMessage{}, thread.Messages...), message)
		thread.LastActivity = message.SentAt
		next := *s
		next.ChatThreads = append([]*domain.ChatThread{}, s.ChatThreads...)
		next.ChatThreads[idx] = &thread
		return &next

	case MarkMessagesRead:
		idx := threadIndex(s, a.ThreadID)
		if idx < 0 || len(a.MessageIDs) == 0 {
			return s
		}
		wanted := make(map[string]struct{}, len(a.MessageIDs))
		for _, id := range a.MessageIDs {
			wanted[id] = struct{}{}
		}
		thread := *s.ChatThreads[idx]
		thread.Messages = append([]domain.ChatMessage{}, thread.Messages...)
		for i := range thread.Messages {
			if _, ok := wanted[thread.Messages[i].ID]; ok {
				thread.Messages[i].IsRead = true
			}
		}
		next := *s
		next.ChatThreads = append([]*domain.ChatThread{}, s.ChatThreads...)
		next.ChatThreads[idx] = &thread
		return &next

	case AddRSVPRecord:
		if a.Record == nil {
			return s
		}
		next := *s
		next.RSVPs = append(append([]*domain.RSVP{}, s.RSVPs...), a.Record)
		return &next

	case ReplaceRSVPRecord:
		if a.Record == nil {
			return s
		}
		idx := rsvpIndex(s, a.TempID)
		if idx < 0 {
			return s
		}
		next := *s
		next.RSVPs = append([]*domain.RSVP{}, s.RSVPs...)
		next.RSVPs[idx] = a.Record
		return &next

	case SetRSVPRecordStatus:
		idx := rsvpIndex(s, a.RecordID)
		if idx < 0 {
			return s
		}
		record := *s.RSVPs[idx]
		record.Status = a.Status
		record.UpdatedAt = time.Now()
		next := *s
		next.RSVPs = append([]*domain.RSVP{}, s.RSVPs...)
		next.RSVPs[idx] = &record
		return &next

	case RestoreRSVPRecord:
		if a.Record == nil {
			return s
		}
		idx := rsvpIndex(s, a.Record.ID)
		if idx < 0 {
			return s
		}
		next := *s
		next.RSVPs = append([]*domain.RSVP{}, s.RSVPs...)
		next.RSVPs[idx] = a.Record
		return &next

	case RemoveRSVPRecord:
		idx := rsvpIndex(s, a.RecordID)
		if idx < 0 {
			return s
		}
		next := *s
		next.RSVPs = append([]*domain.RSVP{}, s.RSVPs[:idx]...)
		next.RSVPs = append(next.RSVPs, s.RSVPs[idx+1:]...)
		return &next

	case AddNotification:
		if a.Notification == nil {
			return s
		}
		next := *s
		next.UI.Notifications = append(append([]*domain.Notification{}, s.UI.Notifications...), a.Notification)
		return &next

	case MarkNotificationRead:
		idx := notificationIndex(s, a.NotificationID)
		if idx < 0 {
			return s
		}
		notification := *s.UI.Notifications[idx]
		notification.IsRead = true
		next := *s
		next.UI.Notifications = append([]*domain.Notification{}, s.UI.Notifications...)
		next.UI.Notifications[idx] = &notification
		return &next

	case RemoveNotification:
		idx := notificationIndex(s, a.NotificationID)
		if idx < 0 {
			return s
		}
		next := *s
		next.UI.Notifications = append([]*domain.Notification{}, s.UI.Notifications[:idx]...)
		next.UI.Notifications = append(next.UI.Notifications, s.UI.Notifications[idx+1:]...)
		return &next

	case SetLoading:
		next := *s
		next.UI.Loading = a.Loading
		return &next

	case ShowModal:
		next := *s
		next.UI.ActiveModal = a.Modal
		return &next

	case HideModal:
		next := *s
		next.UI.ActiveModal = ""
		return &next

	case SetViewMode:
		next := *s
		next.UI.ViewMode = a.Mode
		return &next

	case SyncWithStorage:
		if a.State == nil {
			return s
		}
		return a.State

	default:
		return s
	}
}

func eventIndex(s *State, eventID string) int {
	for i, event := range s.Events {
		if event.ID == eventID {
			return i
		}
	}
	return -1
}

func threadIndex(s *State, threadID string) int {
	for i, thread := range s.ChatThreads {
		if thread.ID == threadID {
			return i
		}
	}
	return -1
}

func rsvpIndex(s *State, recordID string) int {
	for i, record := range s.RSVPs {
		if record.ID == recordID {
			return i
		}
	}
	return -1
}

func notificationIndex(s *State, notificationID string) int {
	for i, notification := range s.UI.Notifications {
		if notification.ID == notificationID {
			return i
		}
	}
	return -1
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
