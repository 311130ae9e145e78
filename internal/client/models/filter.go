package models

// FilterKind enumerates the view-scoping choices of the sidebar.
type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterFavorites
	FilterUnfiled
	FilterFolder
)

// Filter is the transient view-scoping selection: all notes, favorites only,
// unfiled only, or a specific folder. It carries no lifecycle and is never
// persisted.
type Filter struct {
	Kind     FilterKind
	FolderID string // set only when Kind == FilterFolder
}

func AllFilter() Filter       { return Filter{Kind: FilterAll} }
func FavoritesFilter() Filter { return Filter{Kind: FilterFavorites} }
func UnfiledFilter() Filter   { return Filter{Kind: FilterUnfiled} }

func FolderFilter(folderID string) Filter {
	return Filter{Kind: FilterFolder, FolderID: folderID}
}

// Matches reports whether the note is visible under this filter.
func (f Filter) Matches(n Note) bool {
	switch f.Kind {
	case FilterAll:
		return true
	case FilterFavorites:
		return n.IsFavorite
	case FilterUnfiled:
		return n.Unfiled()
	case FilterFolder:
		return n.InFolder(f.FolderID)
	default:
		return true
	}
}
