package folders

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/common"
)

type fakeRepo struct {
	folders map[string]*Folder
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{folders: map[string]*Folder{}}
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID string) ([]Folder, error) {
	result := []Folder{}
	for _, folder := range f.folders {
		if folder.UserID == userID {
			result = append(result, *folder)
		}
	}
	return result, nil
}

func (f *fakeRepo) Get(ctx context.Context, userID, folderID string) (*Folder, error) {
	if folder, ok := f.folders[folderID]; ok && folder.UserID == userID {
		return folder, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRepo) Create(ctx context.Context, folder *Folder) (*Folder, error) {
	folder.CreatedAt = time.Now()
	f.folders[folder.ID] = folder
	return folder, nil
}

func (f *fakeRepo) UpdateName(ctx context.Context, userID, folderID, name string) (*Folder, error) {
	if folder, ok := f.folders[folderID]; ok && folder.UserID == userID {
		folder.Name = name
		return folder, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, userID, folderID string) error {
	if folder, ok := f.folders[folderID]; ok && folder.UserID == userID {
		delete(f.folders, folderID)
		return nil
	}
	return common.ErrorNotFound
}

func TestCreate_TrimsName(t *testing.T) {
	s := NewService(newFakeRepo())

	folder, err := s.Create(context.Background(), "u-1", "  Work  ")
	require.NoError(t, err)
	assert.Equal(t, "Work", folder.Name)
	assert.NotEmpty(t, folder.ID)
}

func TestCreate_RejectsBlankName(t *testing.T) {
	s := NewService(newFakeRepo())

	_, err := s.Create(context.Background(), "u-1", "   ")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestCreate_RejectsLongName(t *testing.T) {
	s := NewService(newFakeRepo())

	_, err := s.Create(context.Background(), "u-1", strings.Repeat("x", MaxNameLen+1))
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestRename(t *testing.T) {
	repo := newFakeRepo()
	repo.folders["f-1"] = &Folder{ID: "f-1", UserID: "u-1", Name: "Old"}
	s := NewService(repo)

	folder, err := s.Rename(context.Background(), "u-1", "f-1", " New ")
	require.NoError(t, err)
	assert.Equal(t, "New", folder.Name)
}

func TestRename_OtherUsersFolder(t *testing.T) {
	repo := newFakeRepo()
	repo.folders["f-1"] = &Folder{ID: "f-1", UserID: "u-2", Name: "Theirs"}
	s := NewService(repo)

	_, err := s.Rename(context.Background(), "u-1", "f-1", "Mine now")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	repo.folders["f-1"] = &Folder{ID: "f-1", UserID: "u-1", Name: "Work"}
	s := NewService(repo)

	require.NoError(t, s.Delete(context.Background(), "u-1", "f-1"))
	assert.Empty(t, repo.folders)

	err := s.Delete(context.Background(), "u-1", "f-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
