package adapter

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/layer-quickstart/internal/messaging"
)

const (
	frameAuthenticate = "authenticate"
	frameChange       = "change"
	frameSignal       = "signal"

	signalTypingIndicator = "typing_indicator"
	objectTypeMessage     = "Message"

	receiptRead = "read"
)

type nonceResponse struct {
	Nonce string `json:"nonce"`
}

type sessionRequest struct {
	IdentityToken string `json:"identity_token"`
	AppID         string `json:"app_id"`
}

type sessionResponse struct {
	SessionToken string `json:"session_token"`
}

type conversationRequest struct {
	Participants []string `json:"participants"`
	Distinct     bool     `json:"distinct"`
}

type partWire struct {
	Body     string `json:"body"`
	MimeType string `json:"mime_type"`
}

type messageRequest struct {
	ID    string     `json:"id"`
	Parts []partWire `json:"parts"`
}

type receiptRequest struct {
	Type string `json:"type"`
}

type objectRef struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

type senderWire struct {
	UserID string `json:"user_id"`
}

type messageWire struct {
	ID              string                               `json:"id"`
	Conversation    objectRef                            `json:"conversation"`
	Parts           []partWire                           `json:"parts"`
	SentAt          time.Time                            `json:"sent_at"`
	Sender          senderWire                           `json:"sender"`
	IsUnread        bool                                 `json:"is_unread"`
	RecipientStatus map[string]messaging.RecipientStatus `json:"recipient_status,omitempty"`
}

// toMessage flattens the text parts of a wire message into one body.
func (w messageWire) toMessage() messaging.Message {
	mimeType := messaging.TextMimeType
	texts := make([]string, 0, len(w.Parts))
	for i, p := range w.Parts {
		if i == 0 && p.MimeType != "" {
			mimeType = p.MimeType
		}
		if p.MimeType == "" || p.MimeType == messaging.TextMimeType {
			texts = append(texts, p.Body)
		}
	}

	return messaging.Message{
		ID:              w.ID,
		ConversationID:  w.Conversation.ID,
		Sender:          w.Sender.UserID,
		Body:            strings.Join(texts, "\n"),
		MimeType:        mimeType,
		SentAt:          w.SentAt,
		RecipientStatus: w.RecipientStatus,
		IsUnread:        w.IsUnread,
	}
}

// toMessages converts wire messages and orders them oldest first.
func toMessages(wire []messageWire) []messaging.Message {
	msgs := make([]messaging.Message, 0, len(wire))
	for _, w := range wire {
		msgs = append(msgs, w.toMessage())
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].SentAt.Before(msgs[j].SentAt)
	})
	return msgs
}

// frame is the envelope of every websocket packet.
type frame struct {
	Type string          `json:"type"`
	Body json.RawMessage `json:"body"`
}

type authenticateBody struct {
	SessionToken string `json:"session_token"`
}

type changeBody struct {
	Operation messaging.EventOperation `json:"operation"`
	Object    objectRef                `json:"object"`
	Data      json.RawMessage          `json:"data"`
}

type typingData struct {
	UserID string                `json:"user_id,omitempty"`
	Action messaging.TypingState `json:"action"`
}

type signalBody struct {
	Type   string     `json:"type"`
	Object objectRef  `json:"object"`
	Data   typingData `json:"data"`
}
