package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/events"
	"github.com/spec-kit/community-engage/internal/state"
	"github.com/spec-kit/community-engage/pkg/errorutil"
)

// ChatService manages chat threads and messages inside a user's store.
type ChatService struct {
	dispatcher events.Dispatcher
}

// NewChatService builds the service.
func NewChatService(dispatcher events.Dispatcher) *ChatService {
	return &ChatService{dispatcher: dispatcher}
}

// OpenThread starts a thread about an NGO or event. The context entity must
// exist in the store.
func (s *ChatService) OpenThread(ctx context.Context, store *state.Store, kind domain.ChatContextKind, contextID string, participants []string) (*domain.ChatThread, error) {
	snapshot := store.State()
	switch kind {
	case domain.ChatContextNGO:
		if _, ok := snapshot.FindNGO(contextID); !ok {
			return nil, errorutil.NewNotFound("ngo", nil)
		}
	case domain.ChatContextEvent:
		if _, ok := snapshot.FindEvent(contextID); !ok {
			return nil, errorutil.NewNotFound("event", nil)
		}
	default:
		return nil, errorutil.NewValidationError("unknown chat context kind", nil)
	}

	now := time.Now()
	thread := &domain.ChatThread{
		ID:           uuid.NewString(),
		Participants: participants,
		Context:      domain.ChatContext{Kind: kind, ID: contextID},
		LastActivity: now,
		CreatedAt:    now,
	}
	store.Dispatch(state.AddChatThread{Thread: thread})
	return thread, nil
}

// SendMessage appends a message from the current user to a thread.
func (s *ChatService) SendMessage(ctx context.Context, store *state.Store, threadID, body string) (*domain.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errorutil.NewValidationError("message body required", nil)
	}
	snapshot := store.State()
	user := snapshot.User
	if user == nil {
		return nil, errorutil.NewUnauthorized("user required")
	}
	thread, ok := snapshot.FindThread(threadID)
	if !ok {
		return nil, errorutil.NewNotFound("chat thread", nil)
	}

	message := domain.ChatMessage{
		ID:       uuid.NewString(),
		SenderID: user.ID,
		Body:     body,
		SentAt:   time.Now(),
	}
	store.Dispatch(state.SendMessage{ThreadID: threadID, Message: message})

	if s.dispatcher != nil {
		preview := body
		if len(preview) > 80 {
			preview = preview[:80]
		}
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventMessageSent,
			UserID:    user.ID,
			Timestamp: message.SentAt,
			Payload: events.MessageSentPayload{
				ThreadID:    thread.ID,
				MessageID:   message.ID,
				SenderID:    user.ID,
				ContextKind: thread.Context.Kind,
				BodyPreview: preview,
			},
		})
	}
	return &message, nil
}

// MarkRead marks the listed messages in a thread as read.
func (s *ChatService) MarkRead(store *state.Store, threadID string, messageIDs []string) error {
	if _, ok := store.State().FindThread(threadID); !ok {
		return errorutil.NewNotFound("chat thread", nil)
	}
	store.Dispatch(state.MarkMessagesRead{ThreadID: threadID, MessageIDs: messageIDs})
	return nil
}
