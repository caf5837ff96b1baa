package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/layer-quickstart/internal/logger"
	"github.com/MKhiriev/layer-quickstart/internal/messaging"
)

var messageColumns = []string{"id", "conversation_id", "sender", "body", "mime_type", "sent_at", "is_unread", "recipient_status"}

// saveMessagesChunk bounds the rows of one INSERT so that the bind variables
// stay below SQLite's limit (32766 since 3.32).
const saveMessagesChunk = 500

const upsertMessageSuffix = "ON CONFLICT(id) DO UPDATE SET " +
	"body = excluded.body, is_unread = excluded.is_unread, recipient_status = excluded.recipient_status"

type messageRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMessageRepository returns the SQLite-backed [MessageRepository].
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	return &messageRepository{db: db, logger: logger}
}

// SaveMessages upserts messages in chunks of [saveMessagesChunk] rows. All
// chunks share one transaction, so a failure leaves the cache untouched.
func (r *messageRepository) SaveMessages(ctx context.Context, messages ...messaging.Message) error {
	if len(messages) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).
			Str("func", "messageRepository.SaveMessages").
			Int("count", len(messages)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for start := 0; start < len(messages); start += saveMessagesChunk {
		chunk := messages[start:min(start+saveMessagesChunk, len(messages))]

		insert := txBuilder(tx).
			Insert("messages").
			Columns(messageColumns...)
		for _, m := range chunk {
			status, err := encodeRecipientStatus(m.RecipientStatus)
			if err != nil {
				return fmt.Errorf("%w: recipient status of %s: %w", ErrEncodingColumn, m.ID, err)
			}
			insert = insert.Values(m.ID, m.ConversationID, m.Sender, m.Body, m.MimeType, m.SentAt, m.IsUnread, status)
		}

		if _, err = insert.Suffix(upsertMessageSuffix).ExecContext(ctx); err != nil {
			r.logger.Err(err).
				Str("func", "messageRepository.SaveMessages").
				Int("offset", start).
				Int("count", len(chunk)).
				Msg("failed to upsert messages")
			return fmt.Errorf("%w: save messages: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).
			Str("func", "messageRepository.SaveMessages").
			Int("count", len(messages)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

func (r *messageRepository) GetMessages(ctx context.Context, conversationID string) ([]messaging.Message, error) {
	rows, err := r.db.builder().
		Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		OrderBy("sent_at ASC", "id ASC").
		QueryContext(ctx)
	if err != nil {
		r.logger.Err(err).
			Str("func", "messageRepository.GetMessages").
			Str("conversation_id", conversationID).
			Msg("failed to query messages")
		return nil, fmt.Errorf("%w: get messages: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]messaging.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

func (r *messageRepository) LastMessage(ctx context.Context, conversationID string) (messaging.Message, error) {
	row := r.db.builder().
		Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		OrderBy("sent_at DESC", "id DESC").
		Limit(1).
		QueryRowContext(ctx)

	m, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return messaging.Message{}, ErrMessageNotFound
	}
	return m, err
}

func (r *messageRepository) MarkRead(ctx context.Context, messageID string) error {
	res, err := r.db.builder().
		Update("messages").
		Set("is_unread", false).
		Where(sq.Eq{"id": messageID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: mark read: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: mark read: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrMessageNotFound
	}

	return nil
}

func (r *messageRepository) DeleteMessage(ctx context.Context, messageID string) error {
	_, err := r.db.builder().
		Delete("messages").
		Where(sq.Eq{"id": messageID}).
		ExecContext(ctx)
	if err != nil {
		r.logger.Err(err).
			Str("func", "messageRepository.DeleteMessage").
			Str("message_id", messageID).
			Msg("failed to delete message")
		return fmt.Errorf("%w: delete message: %w", ErrExecutingQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (messaging.Message, error) {
	var (
		m      messaging.Message
		status string
	)
	err := row.Scan(&m.ID, &m.ConversationID, &m.Sender, &m.Body, &m.MimeType, &m.SentAt, &m.IsUnread, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return messaging.Message{}, err
	}
	if err != nil {
		return messaging.Message{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if m.RecipientStatus, err = decodeRecipientStatus(status); err != nil {
		return messaging.Message{}, fmt.Errorf("%w: recipient status of %s: %w", ErrScanningRows, m.ID, err)
	}
	return m, nil
}

// encodeRecipientStatus stores the receipt map as a JSON object; an empty map
// is stored as "{}".
func encodeRecipientStatus(status map[string]messaging.RecipientStatus) (string, error) {
	if len(status) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(status)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeRecipientStatus(raw string) (map[string]messaging.RecipientStatus, error) {
	if raw == "" {
		return nil, nil
	}
	var status map[string]messaging.RecipientStatus
	if err := json.Unmarshal([]byte(raw), &status); err != nil {
		return nil, err
	}
	if len(status) == 0 {
		return nil, nil
	}
	return status, nil
}
