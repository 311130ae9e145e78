package folders

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"notekeeper/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID string) ([]Folder, error) {
	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, userID, name string) (*Folder, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	folder := &Folder{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
	}

	folder, err = s.repo.Create(ctx, folder)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	return folder, nil
}

func (s *Service) Rename(ctx context.Context, userID, folderID, name string) (*Folder, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	folder, err := s.repo.UpdateName(ctx, userID, folderID, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorValidation) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	return folder, nil
}

// Delete removes the folder row only. Notes still pointing at it must be
// cleared beforehand; the notes FK is ON DELETE SET NULL so a missed clear
// degrades to unfiled notes rather than a failed delete.
func (s *Service) Delete(ctx context.Context, userID, folderID string) error {
	err := s.repo.Delete(ctx, userID, folderID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return common.ErrorInternal
	}
	return nil
}
