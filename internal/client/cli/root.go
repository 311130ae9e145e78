package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if user := a.controller.User(); user != nil {
		s = user.Email
	}
	if s != "" {
		s = fmt.Sprintf("(%s) %s", s, a.controller.FilterTitle())
	}
	return s
}

// Root runs the main command loop. Commands that mutate notes or folders are
// only offered once a session is Ready.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to Notekeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "nk %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami()

		case "l", "list":
			a.list()
		case "search":
			a.searchQuery = strings.Join(args, " ")
			a.list()
		case "tag":
			a.setTag(args)
		case "fav":
			a.favoritesOnly = !a.favoritesOnly
			a.list()
		case "filter":
			a.setFilter(args)
		case "clear":
			a.clearListControls()
			a.list()

		case "new":
			a.newNote(ctx)
		case "edit":
			a.editNote(ctx, args)
		case "del":
			a.deleteNote(ctx, args)
		case "star":
			a.toggleFavorite(ctx, args)
		case "move":
			a.moveNote(ctx, args)

		case "folders":
			a.listFolders()
		case "mkdir":
			a.createFolder(ctx, args)
		case "rename":
			a.renameFolder(ctx, args)
		case "rmdir":
			a.deleteFolder(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: (l)ist, search <q>, tag <t>, fav, filter all|favorites|unfiled|folder <name>, clear,")
		fmt.Fprintln(a.out, "  new, edit <id>, del <id>, star <id>, move <id> <folder|->, folders, mkdir <name>, rename <folder>, rmdir <name>,")
		fmt.Fprintln(a.out, "  whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
	}
}
