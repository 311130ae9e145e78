// Package noteview derives the visible, ordered subset of a note collection
// together with the sidebar counts. It is pure: no I/O, no retained state,
// the same inputs always produce the same View.
package noteview

import (
	"sort"
	"strings"

	"notekeeper/internal/client/models"
)

// Query is the full view-scoping state: the sidebar filter plus the list
// controls (search box, selected tag, favorites toggle). All active
// restrictions compose with logical AND.
type Query struct {
	Filter        models.Filter
	Search        string
	Tag           string
	FavoritesOnly bool
}

// Active reports whether any list-level restriction (search, tag, favorites
// toggle) is set. The sidebar filter does not count; it scopes the view
// rather than narrowing it.
func (q Query) Active() bool {
	return strings.TrimSpace(q.Search) != "" || q.Tag != "" || q.FavoritesOnly
}

// View is the derived state handed to the presentation layer. Counts are
// computed over the entire collection, not the visible subset; they feed the
// sidebar totals independently of the active filter.
type View struct {
	Visible        []models.Note
	NoteCounts     map[string]int // notes per folder id
	AllCount       int
	FavoritesCount int
	UnfiledCount   int
	Tags           []string // sorted distinct tags across all notes
}

// Derive computes the View for the given collection and query.
func Derive(notes []models.Note, q Query) View {
	v := View{
		NoteCounts: make(map[string]int),
		AllCount:   len(notes),
	}

	tagSet := make(map[string]struct{})
	for _, n := range notes {
		if n.IsFavorite {
			v.FavoritesCount++
		}
		if n.Unfiled() {
			v.UnfiledCount++
		} else {
			v.NoteCounts[*n.FolderID]++
		}
		for _, tag := range n.Tags {
			tagSet[tag] = struct{}{}
		}
	}

	v.Tags = make([]string, 0, len(tagSet))
	for tag := range tagSet {
		v.Tags = append(v.Tags, tag)
	}
	sort.Strings(v.Tags)

	v.Visible = make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if matches(n, q) {
			v.Visible = append(v.Visible, n)
		}
	}

	// favorites first, then most recently updated; stable so equal
	// timestamps keep their relative order
	sort.SliceStable(v.Visible, func(i, j int) bool {
		a, b := v.Visible[i], v.Visible[j]
		if a.IsFavorite != b.IsFavorite {
			return a.IsFavorite
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})

	return v
}

func matches(n models.Note, q Query) bool {
	if !q.Filter.Matches(n) {
		return false
	}
	if q.FavoritesOnly && !n.IsFavorite {
		return false
	}
	if q.Tag != "" && !n.HasTag(q.Tag) {
		return false
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(n.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), search) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}
