package dto

import "time"

// OpenThreadRequest starts a chat thread about an NGO or event.
type OpenThreadRequest struct {
	ContextKind  string   `json:"context_kind"`
	ContextID    string   `json:"context_id"`
	Participants []string `json:"participants"`
}

// SendMessageRequest appends a message to a thread.
type SendMessageRequest struct {
	Body string `json:"body"`
}

// MarkReadRequest marks the listed messages as read.
type MarkReadRequest struct {
	MessageIDs []string `json:"message_ids"`
}

// MessageSummary is the API view of a chat message.
type MessageSummary struct {
	ID       string    `json:"id"`
	SenderID string    `json:"sender_id"`
	Body     string    `json:"body"`
	IsRead   bool      `json:"is_read"`
	SentAt   time.Time `json:"sent_at"`
}

// ThreadSummary is the API view of a chat thread.
type ThreadSummary struct {
	ID           string           `json:"id"`
	ContextKind  string           `json:"context_kind"`
	ContextID    string           `json:"context_id"`
	Participants []string         `json:"participants"`
	Messages     []MessageSummary `json:"messages"`
	LastActivity time.Time        `json:"last_activity"`
}
