package notes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"notekeeper/internal/common"
	"notekeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Tags live in a jsonb column; encode/decode on the way through.
func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

func decodeTags(raw []byte, dst *[]string) error {
	if len(raw) == 0 {
		*dst = []string{}
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func scanNote(scan func(dest ...any) error, n *Note) error {
	var rawTags []byte
	if err := scan(&n.ID, &n.UserID, &n.Title, &n.Content, &rawTags, &n.IsFavorite, &n.FolderID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return err
	}
	return decodeTags(rawTags, &n.Tags)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Note, error) {
	query :=
		`SELECT id, user_id, title, content, tags, is_favorite, folder_id, created_at, updated_at FROM notes
		 WHERE user_id = $1
		 ORDER BY updated_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []Note{}
	for rows.Next() {
		var n Note
		if err := scanNote(rows.Scan, &n); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, noteID string) (*Note, error) {
	query :=
		`SELECT id, user_id, title, content, tags, is_favorite, folder_id, created_at, updated_at FROM notes
		 WHERE id = $1 AND user_id = $2
		 `

	n := &Note{}
	err := scanNote(r.db.QueryRowContext(ctx, query, noteID, userID).Scan, n)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}

func (r *PostgresRepository) Create(ctx context.Context, note *Note) (*Note, error) {
	query :=
		`INSERT INTO notes (id, user_id, title, content, tags, is_favorite, folder_id)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at
		 `

	tags, err := encodeTags(note.Tags)
	if err != nil {
		return nil, fmt.Errorf("encoding tags: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query,
		note.ID, note.UserID, note.Title, note.Content, tags, note.IsFavorite, note.FolderID).
		Scan(&note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, fmt.Errorf("%w: unknown folder", common.ErrorValidation)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) Update(ctx context.Context, note *Note) (*Note, error) {
	query :=
		`UPDATE notes SET title = $1, content = $2, tags = $3, is_favorite = $4, folder_id = $5, updated_at = now()
		 WHERE id = $6 AND user_id = $7
		 RETURNING updated_at
		 `

	tags, err := encodeTags(note.Tags)
	if err != nil {
		return nil, fmt.Errorf("encoding tags: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query,
		note.Title, note.Content, tags, note.IsFavorite, note.FolderID, note.ID, note.UserID).
		Scan(&note.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, fmt.Errorf("%w: unknown folder", common.ErrorValidation)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, noteID string) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, noteID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) ClearFolder(ctx context.Context, userID, folderID string) error {
	query :=
		`UPDATE notes SET folder_id = NULL, updated_at = now()
		 WHERE folder_id = $1 AND user_id = $2
		 `

	_, err := r.db.ExecContext(ctx, query, folderID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
