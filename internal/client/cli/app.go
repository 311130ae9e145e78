// Package cli implements the interactive Notekeeper client: a REPL over the
// session controller, standing in for the web dashboard.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"notekeeper/internal/client/backend"
	"notekeeper/internal/client/config"
	"notekeeper/internal/client/session"
	"notekeeper/internal/logging"
)

type App struct {
	config     *config.Config
	backend    backend.Backend
	controller *session.Controller
	reader     *bufio.Reader
	out        io.Writer

	// list-view controls, local to the presentation layer
	searchQuery   string
	selectedTag   string
	favoritesOnly bool
}

func NewApp(c *config.Config) *App {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	b := backend.NewHTTPBackend(c.ServerURL)

	return &App{
		config:     c,
		backend:    b,
		controller: session.NewController(b, logger),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.backend.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.controller.State() == session.StateReady
}

// clearListControls resets search/tag/favorites, as when the user hits
// "Clear" above the notes grid.
func (a *App) clearListControls() {
	a.searchQuery = ""
	a.selectedTag = ""
	a.favoritesOnly = false
}
