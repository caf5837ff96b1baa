package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/layer-quickstart/internal/messaging"
)

// handlePacket decodes one inbound websocket packet and dispatches it.
// Malformed packets and unknown frame types are logged and skipped.
func (c *layerClient) handlePacket(data []byte) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		c.logger.Warn().Err(err).Msg("skipping malformed frame")
		return
	}

	switch f.Type {
	case frameChange:
		c.handleChange(f.Body)
	case frameSignal:
		c.handleSignal(f.Body)
	default:
		c.logger.Debug().Str("type", f.Type).Msg("ignoring frame")
	}
}

func (c *layerClient) handleChange(raw json.RawMessage) {
	var body changeBody
	if err := json.Unmarshal(raw, &body); err != nil {
		c.logger.Warn().Err(err).Msg("skipping malformed change frame")
		return
	}
	if body.Object.Type != objectTypeMessage {
		return
	}

	var msg messaging.Message
	if len(body.Data) > 0 && string(body.Data) != "null" {
		var wire messageWire
		if err := json.Unmarshal(body.Data, &wire); err != nil {
			c.logger.Warn().Err(err).Str("message_id", body.Object.ID).Msg("skipping malformed message change")
			return
		}
		msg = wire.toMessage()
	}
	if msg.ID == "" {
		msg.ID = body.Object.ID
	}

	switch {
	case body.Operation == messaging.OperationDelete:
		if err := c.messages.DeleteMessage(context.Background(), msg.ID); err != nil {
			c.logger.Warn().Err(err).Str("message_id", msg.ID).Msg("failed to drop deleted message")
		}
	case msg.ConversationID != "":
		if err := c.messages.SaveMessages(context.Background(), msg); err != nil {
			c.logger.Warn().Err(err).Str("message_id", msg.ID).Msg("failed to cache message change")
		}
	}

	c.logger.Debug().
		Str("operation", string(body.Operation)).
		Str("message_id", msg.ID).
		Msg("message change")
	c.notifyEvent(messaging.MessageEvent{Operation: body.Operation, Message: msg})
}

func (c *layerClient) handleSignal(raw json.RawMessage) {
	var body signalBody
	if err := json.Unmarshal(raw, &body); err != nil {
		c.logger.Warn().Err(err).Msg("skipping malformed signal frame")
		return
	}
	if body.Type != signalTypingIndicator {
		return
	}
	// the service echoes our own indicators
	if body.Data.UserID == "" || body.Data.UserID == c.userID {
		return
	}

	c.notifyTyping(body.Object.ID, body.Data.UserID, body.Data.Action)
}
