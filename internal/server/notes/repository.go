package notes

import (
	"context"
)

type Repository interface {
	// ListByUser returns the user's notes ordered by updated time descending.
	ListByUser(ctx context.Context, userID string) ([]Note, error)
	Get(ctx context.Context, userID, noteID string) (*Note, error)
	Create(ctx context.Context, note *Note) (*Note, error)
	// Update persists all mutable fields of the note and bumps updated_at.
	Update(ctx context.Context, note *Note) (*Note, error)
	Delete(ctx context.Context, userID, noteID string) error
	// ClearFolder unfiles every note of the user in the given folder.
	ClearFolder(ctx context.Context, userID, folderID string) error
}
