package cli

import (
	"context"
	"fmt"
	"strings"

	"notekeeper/internal/client/models"
	"notekeeper/internal/client/noteview"
)

// listQuery bundles the active list controls for view derivation.
func (a *App) listQuery() noteview.Query {
	return noteview.Query{
		Search:        a.searchQuery,
		Tag:           a.selectedTag,
		FavoritesOnly: a.favoritesOnly,
	}
}

// resolveNote finds a note by id or unique id prefix.
func (a *App) resolveNote(arg string) (*models.Note, bool) {
	var found *models.Note
	for _, n := range a.controller.Notes() {
		if n.ID == arg {
			n := n
			return &n, true
		}
		if strings.HasPrefix(n.ID, arg) {
			if found != nil {
				fmt.Fprintf(a.out, "Ambiguous id %q\n", arg)
				return nil, false
			}
			n := n
			found = &n
		}
	}
	if found == nil {
		fmt.Fprintf(a.out, "No note matches %q\n", arg)
		return nil, false
	}
	return found, true
}

func (a *App) list() {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first")
		return
	}

	q := a.listQuery()
	v := a.controller.View(q)

	fmt.Fprintf(a.out, "== %s ==\n", a.controller.FilterTitle())
	for _, n := range v.Visible {
		star := " "
		if n.IsFavorite {
			star = "*"
		}
		folder := ""
		if n.FolderID != nil {
			folder = " [" + a.folderName(*n.FolderID) + "]"
		}
		tags := ""
		if len(n.Tags) > 0 {
			tags = " #" + strings.Join(n.Tags, " #")
		}
		fmt.Fprintf(a.out, "%s %-8s %s%s%s\n", star, shortID(n.ID), n.Title, folder, tags)
	}

	total := v.AllCount
	shown := len(v.Visible)
	if q.Active() {
		fmt.Fprintf(a.out, "%d notes (filtered from %d)\n", shown, total)
	} else {
		fmt.Fprintf(a.out, "%d notes\n", shown)
	}
	if len(v.Tags) > 0 {
		fmt.Fprintf(a.out, "tags: %s\n", strings.Join(v.Tags, ", "))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (a *App) setTag(args []string) {
	if len(args) == 0 {
		a.selectedTag = ""
	} else if args[0] == a.selectedTag {
		// selecting the active tag again clears it
		a.selectedTag = ""
	} else {
		a.selectedTag = strings.ToLower(args[0])
	}
	a.list()
}

func (a *App) setFilter(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: filter all|favorites|unfiled|folder <name>")
		return
	}

	switch args[0] {
	case "all":
		a.controller.SetFilter(models.AllFilter())
	case "favorites":
		a.controller.SetFilter(models.FavoritesFilter())
	case "unfiled":
		a.controller.SetFilter(models.UnfiledFilter())
	case "folder":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: filter folder <name>")
			return
		}
		name := strings.Join(args[1:], " ")
		folder, ok := a.resolveFolderByName(name)
		if !ok {
			return
		}
		a.controller.SetFilter(models.FolderFilter(folder.ID))
	default:
		fmt.Fprintln(a.out, "Usage: filter all|favorites|unfiled|folder <name>")
		return
	}
	a.list()
}

func (a *App) newNote(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first")
		return
	}

	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	tagLine, err := GetSimpleText(a.reader, "Tags (comma-separated, optional)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	input := models.NewNoteInput(title, content, splitTags(tagLine), false)
	note, err := a.controller.SaveNote(ctx, input, "")
	if err != nil {
		fmt.Fprintf(a.out, "Could not create note: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Created %s\n", shortID(note.ID))
}

func (a *App) editNote(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: edit <id>")
		return
	}
	note, ok := a.resolveNote(args[0])
	if !ok {
		return
	}

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Title [%s]", note.Title), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if title == "" {
		title = note.Title
	}
	content, err := GetMultiline(a.reader, "Content (empty keeps current)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if content == "" {
		content = note.Content
	}
	tagLine, err := GetSimpleText(a.reader, fmt.Sprintf("Tags [%s]", strings.Join(note.Tags, ",")), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	tags := note.Tags
	if tagLine != "" {
		tags = splitTags(tagLine)
	}

	input := models.NewNoteInput(title, content, tags, note.IsFavorite)
	if _, err := a.controller.SaveNote(ctx, input, note.ID); err != nil {
		fmt.Fprintf(a.out, "Could not update note: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Updated")
}

func (a *App) deleteNote(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: del <id>")
		return
	}
	note, ok := a.resolveNote(args[0])
	if !ok {
		return
	}

	if !Confirm(a.reader, fmt.Sprintf("Delete note %q?", note.Title), a.out) {
		fmt.Fprintln(a.out, "Cancelled")
		return
	}

	if err := a.controller.DeleteNote(ctx, note.ID); err != nil {
		fmt.Fprintf(a.out, "Could not delete note: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Deleted")
}

func (a *App) toggleFavorite(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: star <id>")
		return
	}
	note, ok := a.resolveNote(args[0])
	if !ok {
		return
	}

	if err := a.controller.ToggleFavorite(ctx, note.ID); err != nil {
		fmt.Fprintf(a.out, "Could not toggle favorite: %s\n", err.Error())
		return
	}
	a.list()
}

func (a *App) moveNote(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: move <id> <folder name|->")
		return
	}
	note, ok := a.resolveNote(args[0])
	if !ok {
		return
	}

	var folderID *string
	if target := strings.Join(args[1:], " "); target != "-" {
		folder, ok := a.resolveFolderByName(target)
		if !ok {
			return
		}
		folderID = &folder.ID
	}

	if err := a.controller.MoveToFolder(ctx, note.ID, folderID); err != nil {
		fmt.Fprintf(a.out, "Could not move note: %s\n", err.Error())
		return
	}
	a.list()
}

func splitTags(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	return strings.Split(line, ",")
}
