// Package backend defines the remote data/auth service contract the client
// talks to, and an HTTP implementation of it. All note and folder operations
// are implicitly scoped to the authenticated owner; the server derives the
// owner from the access token.
package backend

import (
	"context"

	"notekeeper/internal/client/models"
)

// Session is the authenticated state returned by sign-in/sign-up.
type Session struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

// NotePatch carries a partial note update. Nil fields are left unchanged.
// Folder moves are tri-state (set to a folder, set to unfiled, don't touch),
// so they ride a separate flag: when MoveFolder is true, FolderID nil means
// "unfiled".
type NotePatch struct {
	Title      *string   `json:"title,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	IsFavorite *bool     `json:"is_favorite,omitempty"`
	MoveFolder bool      `json:"move_folder,omitempty"`
	FolderID   *string   `json:"folder_id,omitempty"`
}

// Backend is the remote collaborator contract. Implementations must return
// common.ErrorUnauthorized for missing/expired sessions and
// common.ErrorNotFound for absent records, wrapped so errors.Is works.
type Backend interface {
	Close() error

	SignUp(ctx context.Context, email, password string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)

	// ListNotes returns the owner's notes ordered by updated time descending.
	ListNotes(ctx context.Context) ([]models.Note, error)
	// ListFolders returns the owner's folders ordered by name ascending.
	ListFolders(ctx context.Context) ([]models.Folder, error)

	CreateNote(ctx context.Context, input models.NoteInput, folderID *string) (*models.Note, error)
	UpdateNote(ctx context.Context, noteID string, patch NotePatch) (*models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error

	CreateFolder(ctx context.Context, name string) (*models.Folder, error)
	UpdateFolder(ctx context.Context, folderID, name string) (*models.Folder, error)
	DeleteFolder(ctx context.Context, folderID string) error

	// ClearFolderNotes sets folder_id to null on every note in the folder.
	// Kept separate from DeleteFolder so callers compose the two-phase
	// folder removal themselves.
	ClearFolderNotes(ctx context.Context, folderID string) error
}
