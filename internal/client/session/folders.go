package session

import (
	"context"
	"fmt"
	"sort"

	"notekeeper/internal/client/models"
	"notekeeper/internal/common"
)

func (c *Controller) sortFolders() {
	sort.SliceStable(c.folders, func(i, j int) bool {
		return c.folders[i].Name < c.folders[j].Name
	})
}

// CreateFolder validates the name locally and creates the folder remotely.
// No remote call is issued for an invalid name.
func (c *Controller) CreateFolder(ctx context.Context, name string) (*models.Folder, error) {
	name, err := models.ValidateFolderName(name)
	if err != nil {
		return nil, err
	}

	folder, err := c.backend.CreateFolder(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("creating folder: %w", err)
	}

	c.folders = append(c.folders, *folder)
	c.sortFolders()
	return folder, nil
}

// RenameFolder validates the new name and renames the folder remotely,
// keeping the collection sorted by name.
func (c *Controller) RenameFolder(ctx context.Context, folderID, name string) (*models.Folder, error) {
	name, err := models.ValidateFolderName(name)
	if err != nil {
		return nil, err
	}

	i := c.folderIndex(folderID)
	if i < 0 {
		return nil, fmt.Errorf("%w: folder %s", common.ErrorNotFound, folderID)
	}

	folder, err := c.backend.UpdateFolder(ctx, folderID, name)
	if err != nil {
		return nil, fmt.Errorf("renaming folder: %w", err)
	}

	c.folders[i] = *folder
	c.sortFolders()
	return folder, nil
}

// DeleteFolder removes a folder in two remote phases: clear the folder
// reference on every member note, then delete the folder record. If the
// clearing phase fails nothing changes. If it succeeds and the delete phase
// fails, the notes are already unfiled on the server, so the local
// collection mirrors that and the error is surfaced; there is no
// compensating transaction for this window. On full success the folder is
// dropped and, if it was the active filter, the filter resets to All.
func (c *Controller) DeleteFolder(ctx context.Context, folderID string) error {
	i := c.folderIndex(folderID)
	if i < 0 {
		return fmt.Errorf("%w: folder %s", common.ErrorNotFound, folderID)
	}

	if err := c.backend.ClearFolderNotes(ctx, folderID); err != nil {
		return fmt.Errorf("clearing folder notes: %w", err)
	}

	for n := range c.notes {
		if c.notes[n].InFolder(folderID) {
			c.notes[n].FolderID = nil
		}
	}

	if err := c.backend.DeleteFolder(ctx, folderID); err != nil {
		return fmt.Errorf("deleting folder: %w", err)
	}

	c.folders = append(c.folders[:i], c.folders[i+1:]...)

	if c.filter.Kind == models.FilterFolder && c.filter.FolderID == folderID {
		c.filter = models.AllFilter()
	}
	return nil
}
