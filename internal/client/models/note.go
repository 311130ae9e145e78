// Package models defines the client-side entity shapes: Note, Folder, User,
// and the NoteInput used for create/update requests. Normalization of user
// input (trimming, tag rules, the untitled default) happens here at the
// boundary, not on the server.
package models

import (
	"slices"
	"strings"
	"time"
)

// MaxTags caps the number of tags a single note may carry.
const MaxTags = 10

// UntitledTitle is assigned when the user leaves the title empty.
const UntitledTitle = "Untitled"

type Note struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	IsFavorite bool      `json:"is_favorite"`
	FolderID   *string   `json:"folder_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// InFolder reports whether the note is assigned to the given folder.
func (n Note) InFolder(folderID string) bool {
	return n.FolderID != nil && *n.FolderID == folderID
}

// Unfiled reports whether the note has no folder assignment.
func (n Note) Unfiled() bool {
	return n.FolderID == nil
}

// HasTag reports whether the note carries the given tag.
func (n Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteInput carries the user-editable fields of a note for create/update
// requests. Server-assigned fields (id, owner, timestamps) are deliberately
// excluded.
type NoteInput struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	IsFavorite bool     `json:"is_favorite"`
}

// NewNoteInput builds a normalized NoteInput from raw user input:
// the title is trimmed and defaults to "Untitled" when empty, tags are
// trimmed, lowercased, deduplicated and capped at MaxTags.
func NewNoteInput(title, content string, tags []string, favorite bool) NoteInput {
	t := strings.TrimSpace(title)
	if t == "" {
		t = UntitledTitle
	}

	return NoteInput{
		Title:      t,
		Content:    content,
		Tags:       NormalizeTags(tags),
		IsFavorite: favorite,
	}
}

// NormalizeTags trims and lowercases each tag, drops empty ones, removes
// duplicates preserving first occurrence, and caps the result at MaxTags.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
		if len(out) == MaxTags {
			break
		}
	}
	return out
}
