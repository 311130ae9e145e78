package cli

import (
	"context"
	"fmt"
	"strings"

	"notekeeper/internal/client/models"
	"notekeeper/internal/client/noteview"
)

func (a *App) resolveFolderByName(name string) (*models.Folder, bool) {
	name = strings.TrimSpace(name)
	for _, f := range a.controller.Folders() {
		if strings.EqualFold(f.Name, name) {
			f := f
			return &f, true
		}
	}
	fmt.Fprintf(a.out, "No folder named %q\n", name)
	return nil, false
}

func (a *App) folderName(id string) string {
	for _, f := range a.controller.Folders() {
		if f.ID == id {
			return f.Name
		}
	}
	return "?"
}

func (a *App) listFolders() {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first")
		return
	}

	// counts are collection-wide, so the list controls do not matter here
	v := a.controller.View(noteview.Query{})
	fmt.Fprintf(a.out, "All notes (%d)\n", v.AllCount)
	fmt.Fprintf(a.out, "Favorites (%d)\n", v.FavoritesCount)
	fmt.Fprintf(a.out, "Unfiled (%d)\n", v.UnfiledCount)
	for _, f := range a.controller.Folders() {
		fmt.Fprintf(a.out, "%s (%d)\n", f.Name, v.NoteCounts[f.ID])
	}
}

func (a *App) createFolder(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first")
		return
	}

	name := strings.Join(args, " ")
	if name == "" {
		var err error
		name, err = GetSimpleText(a.reader, "Folder name", a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
	}

	folder, err := a.controller.CreateFolder(ctx, name)
	if err != nil {
		fmt.Fprintf(a.out, "Could not create folder: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Created folder %q\n", folder.Name)
}

func (a *App) renameFolder(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: rename <folder name> <new name>")
		return
	}
	folder, ok := a.resolveFolderByName(args[0])
	if !ok {
		return
	}

	newName := strings.Join(args[1:], " ")
	if _, err := a.controller.RenameFolder(ctx, folder.ID, newName); err != nil {
		fmt.Fprintf(a.out, "Could not rename folder: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Renamed")
}

func (a *App) deleteFolder(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: rmdir <folder name>")
		return
	}
	folder, ok := a.resolveFolderByName(strings.Join(args, " "))
	if !ok {
		return
	}

	if !Confirm(a.reader, fmt.Sprintf("Delete folder %q? Its notes become unfiled.", folder.Name), a.out) {
		fmt.Fprintln(a.out, "Cancelled")
		return
	}

	if err := a.controller.DeleteFolder(ctx, folder.ID); err != nil {
		fmt.Fprintf(a.out, "Could not delete folder: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Deleted")
}
