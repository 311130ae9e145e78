// Package db wires the PostgreSQL connection, migrations, and the
// per-aggregate repositories behind a single manager.
package db

import (
	"context"
	"database/sql"

	"notekeeper/internal/server/folders"
	"notekeeper/internal/server/notes"
	"notekeeper/internal/server/refreshtokens"
	"notekeeper/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	RefreshTokens() refreshtokens.Repository
	Notes() notes.Repository
	Folders() folders.Repository
}
