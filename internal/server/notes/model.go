package notes

import (
	"strings"
	"time"
)

const (
	// MaxTags caps the number of tags on a note, matching the client rule.
	MaxTags = 10

	// DefaultTitle is used when a note is saved with a blank title.
	DefaultTitle = "Untitled"
)

type Note struct {
	ID         string
	UserID     string
	Title      string
	Content    string
	Tags       []string
	IsFavorite bool
	FolderID   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NormalizeTitle trims the title and falls back to DefaultTitle when blank.
func NormalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return DefaultTitle
	}
	return title
}

// NormalizeTags trims and lowercases tags, drops empties and duplicates
// (keeping first occurrence order), and caps the result at MaxTags.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := []string{}
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
		if len(result) == MaxTags {
			break
		}
	}
	return result
}
