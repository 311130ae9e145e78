package session

import (
	"context"
	"fmt"

	"notekeeper/internal/client/backend"
	"notekeeper/internal/client/models"
	"notekeeper/internal/common"
)

// SaveNote creates a new note or updates an existing one. The input is
// expected to be normalized (models.NewNoteInput). New notes inherit the
// folder of the active ByFolder filter and are prepended, since fresh notes
// sort as most recently updated. Both paths reconcile with the authoritative
// record the server returns.
func (c *Controller) SaveNote(ctx context.Context, input models.NoteInput, existingID string) (*models.Note, error) {
	if existingID != "" {
		return c.updateNote(ctx, input, existingID)
	}
	return c.createNote(ctx, input)
}

func (c *Controller) createNote(ctx context.Context, input models.NoteInput) (*models.Note, error) {
	var folderID *string
	if c.filter.Kind == models.FilterFolder {
		id := c.filter.FolderID
		folderID = &id
	}

	note, err := c.backend.CreateNote(ctx, input, folderID)
	if err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	c.notes = append([]models.Note{*note}, c.notes...)
	return note, nil
}

func (c *Controller) updateNote(ctx context.Context, input models.NoteInput, noteID string) (*models.Note, error) {
	i := c.noteIndex(noteID)
	if i < 0 {
		return nil, fmt.Errorf("%w: note %s", common.ErrorNotFound, noteID)
	}

	patch := backend.NotePatch{
		Title:      &input.Title,
		Content:    &input.Content,
		Tags:       &input.Tags,
		IsFavorite: &input.IsFavorite,
	}

	note, err := c.backend.UpdateNote(ctx, noteID, patch)
	if err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}

	c.notes[i] = *note
	return note, nil
}

// ToggleFavorite flips the favorite flag optimistically: the collection
// changes before the remote call resolves and reverts if it fails.
func (c *Controller) ToggleFavorite(ctx context.Context, noteID string) error {
	i := c.noteIndex(noteID)
	if i < 0 {
		return fmt.Errorf("%w: note %s", common.ErrorNotFound, noteID)
	}

	prev := c.notes[i].IsFavorite
	next := !prev

	return optimistic(ctx,
		func() { c.notes[i].IsFavorite = next },
		func(ctx context.Context) (*models.Note, error) {
			fav := next
			return c.backend.UpdateNote(ctx, noteID, backend.NotePatch{IsFavorite: &fav})
		},
		func() { c.notes[i].IsFavorite = prev },
		func(note *models.Note) {
			if note != nil {
				c.notes[i] = *note
			}
		},
	)
}

// MoveToFolder assigns the note to a folder (nil means unfiled),
// optimistically. The target folder must belong to the current user's
// collection before any remote call is issued.
func (c *Controller) MoveToFolder(ctx context.Context, noteID string, folderID *string) error {
	i := c.noteIndex(noteID)
	if i < 0 {
		return fmt.Errorf("%w: note %s", common.ErrorNotFound, noteID)
	}
	if folderID != nil && c.folderIndex(*folderID) < 0 {
		return fmt.Errorf("%w: folder %s", common.ErrorNotFound, *folderID)
	}

	prev := c.notes[i].FolderID

	return optimistic(ctx,
		func() { c.notes[i].FolderID = folderID },
		func(ctx context.Context) (*models.Note, error) {
			return c.backend.UpdateNote(ctx, noteID, backend.NotePatch{MoveFolder: true, FolderID: folderID})
		},
		func() { c.notes[i].FolderID = prev },
		func(note *models.Note) {
			if note != nil {
				c.notes[i] = *note
			}
		},
	)
}

// DeleteNote removes the note remotely, then drops it from the collection.
// No local change happens until the remote delete succeeds; the user
// confirmation belongs to the presentation layer.
func (c *Controller) DeleteNote(ctx context.Context, noteID string) error {
	i := c.noteIndex(noteID)
	if i < 0 {
		return fmt.Errorf("%w: note %s", common.ErrorNotFound, noteID)
	}

	if err := c.backend.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	c.notes = append(c.notes[:i], c.notes[i+1:]...)
	return nil
}
