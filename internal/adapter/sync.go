package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/layer-quickstart/internal/messaging"
)

// syncHistory pulls message history of every conversation into the local
// cache according to the configured policy.
func (c *layerClient) syncHistory(ctx context.Context) error {
	convs, err := c.api.listConversations(ctx)
	if err != nil {
		return fmt.Errorf("list conversations: %w", err)
	}

	var errs []error
	for _, conv := range convs {
		if err := c.syncConversation(ctx, conv.ID); err != nil {
			if errors.Is(err, ErrUnauthorized) {
				return err
			}
			errs = append(errs, fmt.Errorf("conversation %s: %w", conv.ID, err))
		}
	}

	c.logger.Debug().
		Int("conversations", len(convs)).
		Str("policy", c.opts.HistoricSyncPolicy.String()).
		Msg("historic sync finished")

	return errors.Join(errs...)
}

func (c *layerClient) syncConversation(ctx context.Context, conversationID string) error {
	pageSize := 0
	if c.opts.HistoricSyncPolicy == messaging.FromLastMessage {
		pageSize = 1
	}

	wire, err := c.api.listMessages(ctx, conversationID, pageSize)
	if err != nil {
		return err
	}

	msgs := toMessages(wire)
	if c.opts.HistoricSyncPolicy == messaging.FromEarliestUnreadMessage {
		msgs = fromEarliestUnread(msgs)
	}
	for i := range msgs {
		if msgs[i].ConversationID == "" {
			msgs[i].ConversationID = conversationID
		}
	}

	if len(msgs) == 0 {
		return nil
	}
	if err := c.messages.SaveMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("cache messages: %w", err)
	}

	return nil
}

// fromEarliestUnread trims msgs (oldest first) to start at the first unread
// message. With nothing unread only the last message is kept.
func fromEarliestUnread(msgs []messaging.Message) []messaging.Message {
	for i, m := range msgs {
		if m.IsUnread {
			return msgs[i:]
		}
	}
	if len(msgs) == 0 {
		return msgs
	}
	return msgs[len(msgs)-1:]
}
