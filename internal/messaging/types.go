package messaging

import "time"

// TextMimeType is the MIME type of plain text message parts.
const TextMimeType = "text/plain"

// TypingState is the composing state carried by a typing indicator.
type TypingState string

const (
	TypingStarted  TypingState = "started"
	TypingPaused   TypingState = "paused"
	TypingFinished TypingState = "finished"
)

// RecipientStatus is the per-recipient delivery state of a message.
type RecipientStatus string

const (
	StatusSent      RecipientStatus = "sent"
	StatusDelivered RecipientStatus = "delivered"
	StatusRead      RecipientStatus = "read"
)

// Conversation is a messaging conversation between a set of participants.
type Conversation struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	Distinct     bool      `json:"distinct"`
	CreatedAt    time.Time `json:"created_at"`
}

// Message is a single text message within a conversation.
type Message struct {
	ID              string                     `json:"id"`
	ConversationID  string                     `json:"conversation_id"`
	Sender          string                     `json:"sender"`
	Body            string                     `json:"body"`
	MimeType        string                     `json:"mime_type"`
	SentAt          time.Time                  `json:"sent_at"`
	RecipientStatus map[string]RecipientStatus `json:"recipient_status,omitempty"`
	IsUnread        bool                       `json:"is_unread"`
}

// StatusFor returns the delivery state recorded for userID.
func (m Message) StatusFor(userID string) RecipientStatus {
	if status, ok := m.RecipientStatus[userID]; ok {
		return status
	}
	return StatusSent
}

// EventOperation is the kind of change carried by a [MessageEvent].
type EventOperation string

const (
	OperationCreate EventOperation = "create"
	OperationUpdate EventOperation = "update"
	OperationDelete EventOperation = "delete"
)

// MessageEvent is a change notification for a message.
type MessageEvent struct {
	Operation EventOperation
	Message   Message
}
