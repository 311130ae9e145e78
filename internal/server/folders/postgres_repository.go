package folders

import (
	"context"
	"database/sql"
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

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Folder, error) {
	query :=
		`SELECT id, user_id, name, created_at, updated_at FROM folders
		 WHERE user_id = $1
		 ORDER BY name ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []Folder{}
	for rows.Next() {
		var f Folder
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, folderID string) (*Folder, error) {
	query :=
		`SELECT id, user_id, name, created_at, updated_at FROM folders
		 WHERE id = $1 AND user_id = $2
		 `

	f := &Folder{}
	err := r.db.QueryRowContext(ctx, query, folderID, userID).Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt, &f.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return f, nil
}

func (r *PostgresRepository) Create(ctx context.Context, folder *Folder) (*Folder, error) {
	query :=
		`INSERT INTO folders (id, user_id, name)
         VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		folder.ID, folder.UserID, folder.Name).Scan(&folder.CreatedAt, &folder.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%w: folder name already exists", common.ErrorValidation)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return folder, nil
}

func (r *PostgresRepository) UpdateName(ctx context.Context, userID, folderID, name string) (*Folder, error) {
	query :=
		`UPDATE folders SET name = $1, updated_at = now()
		 WHERE id = $2 AND user_id = $3
		 RETURNING id, user_id, name, created_at, updated_at
		 `

	f := &Folder{}
	err := r.db.QueryRowContext(ctx, query, name, folderID, userID).Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt, &f.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%w: folder name already exists", common.ErrorValidation)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return f, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, folderID string) error {
	query := `DELETE FROM folders WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, folderID, userID)
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
