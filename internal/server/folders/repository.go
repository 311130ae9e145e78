package folders

import (
	"context"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Folder, error)
	Get(ctx context.Context, userID, folderID string) (*Folder, error)
	Create(ctx context.Context, folder *Folder) (*Folder, error)
	UpdateName(ctx context.Context, userID, folderID, name string) (*Folder, error)
	Delete(ctx context.Context, userID, folderID string) error
}
