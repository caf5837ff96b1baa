package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/layer-quickstart/internal/logger"
	"github.com/MKhiriev/layer-quickstart/migrations"
)

// DB is the local cache connection shared by repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.logger)
}

// builder returns a squirrel statement builder bound to the connection.
// SQLite uses "?" placeholders, squirrel's default.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.RunWith(db.DB)
}

// txBuilder returns a squirrel statement builder bound to tx.
func txBuilder(tx *sql.Tx) sq.StatementBuilderType {
	return sq.StatementBuilder.RunWith(tx)
}
