package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/layer-quickstart/internal/config"
	"github.com/MKhiriev/layer-quickstart/internal/logger"
)

// ClientStorages groups the local cache repositories.
type ClientStorages struct {
	SessionRepository SessionRepository
	MessageRepository MessageRepository

	db *DB
}

// NewClientStorages opens the SQLite cache named by cfg.DB.DSN, runs pending
// migrations and wires the repositories.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating local storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, logger),
		MessageRepository: NewMessageRepository(db, logger),
		db:                db,
	}
}

// Close closes the underlying database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
