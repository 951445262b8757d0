package domain

import "time"

// ChatContextKind tags what a chat thread is about.
type ChatContextKind string

const (
	ChatContextNGO   ChatContextKind = "NGO"
	ChatContextEvent ChatContextKind = "EVENT"
)

// ChatContext references the NGO or Event a thread belongs to.
type ChatContext struct {
	Kind ChatContextKind `json:"kind"`
	ID   string          `json:"id"`
}

// ChatMessage is one entry in a thread's append-only message sequence.
type ChatMessage struct {
	ID       string    `json:"id"`
	SenderID string    `json:"sender_id"`
	Body     string    `json:"body"`
	IsRead   bool      `json:"is_read"`
	SentAt   time.Time `json:"sent_at"`
}

// ChatThread groups messages between participants about one NGO or event.
type ChatThread struct {
	ID           string        `json:"id"`
	Participants []string      `json:"participants"`
	Context      ChatContext   `json:"context"`
	Messages     []ChatMessage `json:"messages"`
	LastActivity time.Time     `json:"last_activity"`
	CreatedAt    time.Time     `json:"created_at"`
}
