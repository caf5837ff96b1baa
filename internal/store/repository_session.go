package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/layer-quickstart/internal/logger"
	"github.com/MKhiriev/layer-quickstart/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository returns the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := r.db.builder().
		Insert("sessions").
		Columns("app_id", "user_id", "session_token", "created_at").
		Values(session.AppID, session.UserID, session.Token, session.CreatedAt).
		Suffix("ON CONFLICT(app_id) DO UPDATE SET user_id = excluded.user_id, session_token = excluded.session_token, created_at = excluded.created_at").
		ExecContext(ctx)
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("app_id", session.AppID).
			Msg("failed to upsert session")
		return fmt.Errorf("%w: save session: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, appID string) (models.Session, error) {
	var session models.Session

	err := r.db.builder().
		Select("app_id", "user_id", "session_token", "created_at").
		From("sessions").
		Where(sq.Eq{"app_id": appID}).
		QueryRowContext(ctx).
		Scan(&session.AppID, &session.UserID, &session.Token, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.GetSession").
			Str("app_id", appID).
			Msg("failed to query session")
		return models.Session{}, fmt.Errorf("%w: get session: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, appID string) error {
	_, err := r.db.builder().
		Delete("sessions").
		Where(sq.Eq{"app_id": appID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: delete session: %w", ErrExecutingQuery, err)
	}

	return nil
}
