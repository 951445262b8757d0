package state

import (
	"testing"
	"time"

	"github.com/spec-kit/community-engage/internal/domain"
)

type unknownAction struct{}

func (unknownAction) isAction() {}

func seededState() *State {
	s := New()
	s.User = &domain.User{
		ID:          "user-1",
		Name:        "Asha",
		TrustPoints: 40,
	}
	s.NGOs = []*domain.NGO{
		{ID: "ngo-1", Name: "Green Earth Foundation"},
		{ID: "ngo-2", Name: "Education for All"},
	}
	s.Events = []*domain.Event{
		{ID: "event-1", Title: "Beach Cleanup", MaxAttendees: 10, RSVPList: []string{"user-9"}},
		{ID: "event-2", Title: "Book Drive", MaxAttendees: 5},
	}
	s.ChatThreads = []*domain.ChatThread{
		{
			ID:           "thread-1",
			Participants: []string{"user-1", "user-2"},
			Messages: []domain.ChatMessage{
				{ID: "msg-1", SenderID: "user-2", Body: "hello"},
				{ID: "msg-2", SenderID: "user-2", Body: "are you coming?"},
			},
		},
	}
	return s
}

func TestReduceUnknownActionReturnsSameReference(t *testing.T) {
	s := seededState()
	if next := Reduce(s, unknownAction{}); next != s {
		t.Fatal("expected unknown action to return the input state unchanged")
	}
	if next := Reduce(s, nil); next != s {
		t.Fatal("expected nil action to return the input state unchanged")
	}
}

func TestReduceSetUserReplacesWholesale(t *testing.T) {
	s := seededState()
	replacement := &domain.User{ID: "user-5", Name: "Ravi"}

	next := Reduce(s, SetUser{User: replacement})
	if next == s {
		t.Fatal("expected a new state object")
	}
	if next.User != replacement {
		t.Fatal("expected user slot replaced with the given reference")
	}

	loggedOut := Reduce(next, SetUser{User: nil})
	if loggedOut.User != nil {
		t.Fatal("expected nil user after logout")
	}
}

func TestReduceUpdateUserWithoutUserIsNoop(t *testing.T) {
	s := New()
	name := "Someone"
	if next := Reduce(s, UpdateUser{Patch: UserPatch{Name: &name}}); next != s {
		t.Fatal("expected no-op when no user is set")
	}
}

func TestReduceUpdateTrustPointsClampsAndRecords(t *testing.T) {
	s := seededState()
	s.User.TrustPoints = 95

	next := Reduce(s, UpdateTrustPoints{UserID: "user-1", Delta: 20, Reason: "ORGANIZE_EVENT"})
	if next.User.TrustPoints != 100 {
		t.Fatalf("expected clamp at 100, got %d", next.User.TrustPoints)
	}
	if len(next.User.EventHistory) != 1 {
		t.Fatalf("expected one engagement record, got %d", len(next.User.EventHistory))
	}
	record := next.User.EventHistory[0]
	if record.Action != "ORGANIZE_EVENT" || record.PointDelta != 20 {
		t.Fatalf("unexpected engagement record %+v", record)
	}
	if s.User.TrustPoints != 95 {
		t.Fatal("input state must not be mutated")
	}
}

func TestReduceUpdateTrustPointsAuthorizationNoop(t *testing.T) {
	s := seededState()
	if next := Reduce(s, UpdateTrustPoints{UserID: "someone-else", Delta: 10, Reason: "VERIFY_IDENTITY"}); next != s {
		t.Fatal("expected identity for mismatched user id")
	}
	if s.User.TrustPoints != 40 {
		t.Fatalf("trust points must stay at 40, got %d", s.User.TrustPoints)
	}
}

func TestReduceSwitchTrackMirrorsDenormalizedFields(t *testing.T) {
	s := seededState()
	next := Reduce(s, SwitchTrack{Track: domain.TrackSocial})
	if next.CurrentTrack != domain.TrackSocial {
		t.Fatalf("expected current track switched, got %q", next.CurrentTrack)
	}
	if next.UI.Theme != domain.TrackSocial {
		t.Fatalf("expected theme mirrored, got %q", next.UI.Theme)
	}
	if next.Preferences.LastSelectedTrack != domain.TrackSocial {
		t.Fatalf("expected preference mirrored, got %q", next.Preferences.LastSelectedTrack)
	}
}

func TestReduceVerifyNGO(t *testing.T) {
	s := seededState()

	next := Reduce(s, VerifyNGO{NGOID: "ngo-1", DarpanID: "12345"})
	ngo, ok := next.FindNGO("ngo-1")
	if !ok || !ngo.IsVerified || ngo.DarpanID != "12345" {
		t.Fatalf("expected ngo-1 verified with darpan id, got %+v", ngo)
	}
	if other, _ := next.FindNGO("ngo-2"); other != s.NGOs[1] {
		t.Fatal("untouched NGOs must be reused by reference")
	}

	if same := Reduce(s, VerifyNGO{NGOID: "missing", DarpanID: "12345"}); same != s {
		t.Fatal("expected identity for unknown ngo id")
	}
	if same := Reduce(s, VerifyNGO{NGOID: "ngo-1", DarpanID: "12ab5"}); same != s {
		t.Fatal("expected identity for malformed darpan id")
	}
}

func TestVerificationIsMonotonicAcrossActionTable(t *testing.T) {
	s := seededState()
	s = Reduce(s, VerifyNGO{NGOID: "ngo-1", DarpanID: "12345"})

	// No action in the alphabet may flip IsVerified back to false.
	actions := []Action{
		SetUser{User: &domain.User{ID: "user-1"}},
		UpdateUser{},
		UpdateTrustPoints{UserID: "user-1", Delta: 5},
		SwitchTrack{Track: domain.TrackSocial},
		AddNGO{NGO: &domain.NGO{ID: "ngo-3"}},
		VerifyNGO{NGOID: "ngo-1", DarpanID: "54321"},
		AddEvent{Event: &domain.Event{ID: "event-3"}},
		RSVPEvent{EventID: "event-1", UserID: "user-1"},
		CancelRSVP{EventID: "event-1", UserID: "user-9"},
		AddChatThread{Thread: &domain.ChatThread{ID: "thread-2"}},
		SendMessage{ThreadID: "thread-1", Message: domain.ChatMessage{ID: "msg-3"}},
		MarkMessagesRead{ThreadID: "thread-1", MessageIDs: []string{"msg-1"}},
		AddRSVPRecord{Record: &domain.RSVP{ID: "rsvp-1"}},
		SetRSVPRecordStatus{RecordID: "rsvp-1", Status: domain.RSVPStatusCancelled},
		RemoveRSVPRecord{RecordID: "rsvp-1"},
		AddNotification{Notification: &domain.Notification{ID: "note-1"}},
		MarkNotificationRead{NotificationID: "note-1"},
		RemoveNotification{NotificationID: "note-1"},
		SetLoading{Loading: true},
		ShowModal{Modal: "rsvp"},
		HideModal{},
		SetViewMode{Mode: ViewModeGrid},
	}
	for _, action := range actions {
		s = Reduce(s, action)
		ngo, ok := s.FindNGO("ngo-1")
		if !ok {
			t.Fatalf("ngo-1 disappeared after %s", ActionName(action))
		}
		if !ngo.IsVerified {
			t.Fatalf("verification reversed by %s", ActionName(action))
		}
	}
}

func TestReduceRSVPListSemantics(t *testing.T) {
	s := seededState()

	next := Reduce(s, RSVPEvent{EventID: "event-1", UserID: "user-1"})
	event, _ := next.FindEvent("event-1")
	if !event.HasRSVP("user-1") || len(event.RSVPList) != 2 {
		t.Fatalf("expected user-1 appended, got %v", event.RSVPList)
	}
	if untouched, _ := next.FindEvent("event-2"); untouched != s.Events[1] {
		t.Fatal("untouched events must be reused by reference")
	}

	// The reducer does not dedupe; duplicate prevention is a caller contract.
	dup := Reduce(next, RSVPEvent{EventID: "event-1", UserID: "user-1"})
	event, _ = dup.FindEvent("event-1")
	if len(event.RSVPList) != 3 {
		t.Fatalf("expected duplicate append, got %v", event.RSVPList)
	}

	cancelled := Reduce(dup, CancelRSVP{EventID: "event-1", UserID: "user-1"})
	event, _ = cancelled.FindEvent("event-1")
	if event.HasRSVP("user-1") {
		t.Fatalf("expected user-1 filtered out, got %v", event.RSVPList)
	}
	if !event.HasRSVP("user-9") {
		t.Fatal("other attendees must survive a cancel")
	}

	if same := Reduce(cancelled, CancelRSVP{EventID: "event-1", UserID: "user-1"}); same != cancelled {
		t.Fatal("cancelling an absent rsvp must be identity")
	}
}

func TestReduceSendMessageBumpsLastActivity(t *testing.T) {
	s := seededState()
	sentAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	next := Reduce(s, SendMessage{ThreadID: "thread-1", Message: domain.ChatMessage{ID: "msg-3", SenderID: "user-1", Body: "on my way", SentAt: sentAt}})
	thread, _ := next.FindThread("thread-1")
	if len(thread.Messages) != 3 {
		t.Fatalf("expected message appended, got %d", len(thread.Messages))
	}
	if !thread.LastActivity.Equal(sentAt) {
		t.Fatalf("expected last activity %v, got %v", sentAt, thread.LastActivity)
	}

	if same := Reduce(s, SendMessage{ThreadID: "missing", Message: domain.ChatMessage{ID: "msg-4"}}); same != s {
		t.Fatal("expected identity for unknown thread")
	}
}

func TestReduceMarkMessagesReadIsSelective(t *testing.T) {
	s := seededState()
	next := Reduce(s, MarkMessagesRead{ThreadID: "thread-1", MessageIDs: []string{"msg-2"}})
	thread, _ := next.FindThread("thread-1")
	if thread.Messages[0].IsRead {
		t.Fatal("msg-1 must stay unread")
	}
	if !thread.Messages[1].IsRead {
		t.Fatal("msg-2 must be marked read")
	}
}

func TestReduceAddChatThreadAppendsToUserHistory(t *testing.T) {
	s := seededState()
	thread := &domain.ChatThread{ID: "thread-2", Participants: []string{"user-1", "user-3"}}

	next := Reduce(s, AddChatThread{Thread: thread})
	if len(next.ChatThreads) != 2 {
		t.Fatalf("expected thread appended, got %d", len(next.ChatThreads))
	}
	if len(next.User.ChatHistory) != 1 || next.User.ChatHistory[0] != "thread-2" {
		t.Fatalf("expected thread id in user chat history, got %v", next.User.ChatHistory)
	}

	bystander := &domain.ChatThread{ID: "thread-3", Participants: []string{"user-7", "user-8"}}
	other := Reduce(next, AddChatThread{Thread: bystander})
	if other.User != next.User {
		t.Fatal("user must be untouched when not a participant")
	}
}

func TestReduceRSVPRecordLifecycle(t *testing.T) {
	s := seededState()
	temp := &domain.RSVP{ID: "temp-1", EventID: "event-1", UserID: "user-1", Status: domain.RSVPStatusConfirmed}

	s = Reduce(s, AddRSVPRecord{Record: temp})
	if record, ok := s.ConfirmedRSVP("event-1"); !ok || record.ID != "temp-1" {
		t.Fatal("expected optimistic record present")
	}

	settled := &domain.RSVP{ID: "rsvp-77", EventID: "event-1", UserID: "user-1", Status: domain.RSVPStatusConfirmed}
	s = Reduce(s, ReplaceRSVPRecord{TempID: "temp-1", Record: settled})
	if record, ok := s.ConfirmedRSVP("event-1"); !ok || record.ID != "rsvp-77" {
		t.Fatal("expected settled record to replace the temporary one")
	}

	s = Reduce(s, SetRSVPRecordStatus{RecordID: "rsvp-77", Status: domain.RSVPStatusCancelled})
	if _, ok := s.ConfirmedRSVP("event-1"); ok {
		t.Fatal("expected no confirmed record after cancellation")
	}

	restored := &domain.RSVP{ID: "rsvp-77", EventID: "event-1", UserID: "user-1", Status: domain.RSVPStatusConfirmed}
	s = Reduce(s, RestoreRSVPRecord{Record: restored})
	if record, ok := s.ConfirmedRSVP("event-1"); !ok || record != restored {
		t.Fatal("expected snapshot restored verbatim")
	}

	s = Reduce(s, RemoveRSVPRecord{RecordID: "rsvp-77"})
	if len(s.RSVPs) != 0 {
		t.Fatalf("expected record removed, got %d", len(s.RSVPs))
	}
}

func TestReduceNotifications(t *testing.T) {
	s := seededState()
	s = Reduce(s, AddNotification{Notification: &domain.Notification{ID: "note-1", Type: domain.NotificationRSVP}})
	s = Reduce(s, AddNotification{Notification: &domain.Notification{ID: "note-2", Type: domain.NotificationMessage}})

	s = Reduce(s, MarkNotificationRead{NotificationID: "note-1"})
	if !s.UI.Notifications[0].IsRead {
		t.Fatal("expected note-1 read")
	}
	if s.UI.Notifications[1].IsRead {
		t.Fatal("expected note-2 untouched")
	}

	s = Reduce(s, RemoveNotification{NotificationID: "note-1"})
	if len(s.UI.Notifications) != 1 || s.UI.Notifications[0].ID != "note-2" {
		t.Fatalf("unexpected notifications after removal: %+v", s.UI.Notifications)
	}
}

func TestReduceUIActions(t *testing.T) {
	s := seededState()
	s = Reduce(s, SetLoading{Loading: true})
	if !s.UI.Loading {
		t.Fatal("expected loading set")
	}
	s = Reduce(s, ShowModal{Modal: "verify-ngo"})
	if s.UI.ActiveModal != "verify-ngo" {
		t.Fatalf("expected modal shown, got %q", s.UI.ActiveModal)
	}
	s = Reduce(s, HideModal{})
	if s.UI.ActiveModal != "" {
		t.Fatal("expected modal hidden")
	}
	s = Reduce(s, SetViewMode{Mode: ViewModeMap})
	if s.UI.ViewMode != ViewModeMap {
		t.Fatalf("expected map view mode, got %q", s.UI.ViewMode)
	}
}

func TestReduceSyncWithStorage(t *testing.T) {
	s := seededState()
	loaded := New()
	loaded.User = &domain.User{ID: "user-42", TrustPoints: 60}

	next := Reduce(s, SyncWithStorage{State: loaded})
	if next != loaded {
		t.Fatal("expected total replacement with the loaded snapshot")
	}
	if same := Reduce(s, SyncWithStorage{State: nil}); same != s {
		t.Fatal("expected identity for nil snapshot")
	}
}
