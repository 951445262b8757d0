package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/events"
	"github.com/spec-kit/community-engage/internal/state"
)

// NotificationService turns domain events into store notifications for the
// affected user. Notifications are created here, never by the UI directly.
type NotificationService struct {
	sessions   *SessionService
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService builds the service.
func NewNotificationService(sessions *SessionService, dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		sessions:   sessions,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to the domain events that produce notifications.
func (s *NotificationService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventTrustPointsAwarded, s.onTrustPointsAwarded)
	s.dispatcher.Subscribe(events.EventRSVPConfirmed, s.onRSVPConfirmed)
	s.dispatcher.Subscribe(events.EventNGOVerified, s.onNGOVerified)
	s.dispatcher.Subscribe(events.EventMessageSent, s.onMessageSent)
}

func (s *NotificationService) onTrustPointsAwarded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TrustPointsAwardedPayload)
	if !ok {
		return nil
	}
	verb := "earned"
	if payload.Delta < 0 {
		verb = "lost"
	}
	return s.push(event.UserID, domain.NotificationTrustPoints,
		"Trust points updated",
		fmt.Sprintf("You %s %d trust points (%s). New tier: %s.", verb, abs(payload.Delta), payload.Action, payload.NewTier))
}

func (s *NotificationService) onRSVPConfirmed(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.RSVPPayload)
	if !ok {
		return nil
	}
	return s.push(event.UserID, domain.NotificationRSVP,
		"RSVP confirmed",
		fmt.Sprintf("Your spot for event %s is confirmed.", payload.EventID))
}

func (s *NotificationService) onNGOVerified(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.NGOVerifiedPayload)
	if !ok {
		return nil
	}
	return s.push(event.UserID, domain.NotificationNGOVerified,
		"NGO verified",
		fmt.Sprintf("%s is now a verified organization.", payload.NGOName))
}

func (s *NotificationService) onMessageSent(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.MessageSentPayload)
	if !ok {
		return nil
	}
	return s.push(event.UserID, domain.NotificationMessage,
		"Message sent",
		fmt.Sprintf("Your message in thread %s was delivered.", payload.ThreadID))
}

func (s *NotificationService) push(userID string, kind domain.NotificationType, title, body string) error {
	if userID == "" {
		return nil
	}
	store, ok := s.sessions.Lookup(userID)
	if !ok {
		s.logger.Debug("no active session for notification", zap.String("user_id", userID))
		return nil
	}
	store.Dispatch(state.AddNotification{Notification: &domain.Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}})
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
