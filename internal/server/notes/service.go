package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"notekeeper/internal/common"
	"notekeeper/internal/server/folders"
)

// CreateParams carries the fields of a new note.
type CreateParams struct {
	Title      string
	Content    string
	Tags       []string
	IsFavorite bool
	FolderID   *string
}

// Patch carries a partial update. Nil fields are left unchanged. Folder moves
// are tri-state, so they ride the MoveFolder flag: when set, a nil FolderID
// means "unfiled".
type Patch struct {
	Title      *string
	Content    *string
	Tags       *[]string
	IsFavorite *bool
	MoveFolder bool
	FolderID   *string
}

type Service struct {
	repo       Repository
	folderRepo folders.Repository
}

func NewService(repo Repository, folderRepo folders.Repository) *Service {
	return &Service{repo: repo, folderRepo: folderRepo}
}

func (s *Service) List(ctx context.Context, userID string) ([]Note, error) {
	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

// checkFolderOwned rejects moves into folders that don't exist or belong to
// someone else. The FK only catches the former.
func (s *Service) checkFolderOwned(ctx context.Context, userID string, folderID *string) error {
	if folderID == nil {
		return nil
	}
	_, err := s.folderRepo.Get(ctx, userID, *folderID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("%w: unknown folder", common.ErrorValidation)
		}
		return common.ErrorInternal
	}
	return nil
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (*Note, error) {

	if err := s.checkFolderOwned(ctx, userID, params.FolderID); err != nil {
		return nil, err
	}

	note := &Note{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      NormalizeTitle(params.Title),
		Content:    params.Content,
		Tags:       NormalizeTags(params.Tags),
		IsFavorite: params.IsFavorite,
		FolderID:   params.FolderID,
	}

	note, err := s.repo.Create(ctx, note)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	return note, nil
}

// Update applies a patch to an existing note. The note is loaded first so
// untouched fields survive, then written back in full.
func (s *Service) Update(ctx context.Context, userID, noteID string, patch Patch) (*Note, error) {

	note, err := s.repo.Get(ctx, userID, noteID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	if patch.Title != nil {
		note.Title = NormalizeTitle(*patch.Title)
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.Tags != nil {
		note.Tags = NormalizeTags(*patch.Tags)
	}
	if patch.IsFavorite != nil {
		note.IsFavorite = *patch.IsFavorite
	}
	if patch.MoveFolder {
		if err := s.checkFolderOwned(ctx, userID, patch.FolderID); err != nil {
			return nil, err
		}
		note.FolderID = patch.FolderID
	}

	note, err = s.repo.Update(ctx, note)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorValidation) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	return note, nil
}

func (s *Service) Delete(ctx context.Context, userID, noteID string) error {
	err := s.repo.Delete(ctx, userID, noteID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return common.ErrorInternal
	}
	return nil
}

// ClearFolder unfiles every note in the folder. Succeeds (as a no-op) when
// the folder exists but is empty; rejects folders the user doesn't own.
func (s *Service) ClearFolder(ctx context.Context, userID, folderID string) error {
	if err := s.checkFolderOwned(ctx, userID, &folderID); err != nil {
		return err
	}

	if err := s.repo.ClearFolder(ctx, userID, folderID); err != nil {
		return common.ErrorInternal
	}
	return nil
}
