// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the local SQLite cache used by the messaging
// client: the persisted session and the messages fetched by history sync.
package store

import (
	"context"

	"github.com/MKhiriev/layer-quickstart/internal/messaging"
	"github.com/MKhiriev/layer-quickstart/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the authenticated session per application.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns [ErrSessionNotFound] when no session is stored.
	GetSession(ctx context.Context, appID string) (models.Session, error)
	DeleteSession(ctx context.Context, appID string) error
}

// MessageRepository caches synced messages.
type MessageRepository interface {
	// SaveMessages upserts messages by ID.
	SaveMessages(ctx context.Context, messages ...messaging.Message) error
	// GetMessages returns the messages of a conversation, oldest first.
	GetMessages(ctx context.Context, conversationID string) ([]messaging.Message, error)
	// LastMessage returns [ErrMessageNotFound] for an empty conversation.
	LastMessage(ctx context.Context, conversationID string) (messaging.Message, error)
	MarkRead(ctx context.Context, messageID string) error
	// DeleteMessage removes a message; deleting an unknown ID is not an error.
	DeleteMessage(ctx context.Context, messageID string) error
}
