// Package server initializes and runs the Notekeeper server: it opens the
// database, runs migrations, wires the services, and serves the HTTP API
// until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"

	"notekeeper/internal/logging"
	"notekeeper/internal/server/config"
	"notekeeper/internal/server/folders"
	"notekeeper/internal/server/httpapi"
	"notekeeper/internal/server/notes"
	"notekeeper/internal/server/shared/db"
	"notekeeper/internal/server/users"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	repoManager   db.RepositoryManager
	userService   *users.Service
	noteService   *notes.Service
	folderService *folders.Service
}

func NewApp(c *config.Config) (*App, error) {

	zl := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger := logging.NewZerologLogger(zl)

	m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(m.Users(), m.RefreshTokens(), c)
	fs := folders.NewService(m.Folders())
	ns := notes.NewService(m.Notes(), m.Folders())

	return &App{
		config:        c,
		logger:        logger,
		repoManager:   m,
		userService:   us,
		noteService:   ns,
		folderService: fs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger,
		app.userService, app.noteService, app.folderService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddrHTTP)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repoManager.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "error", err.Error())
	}
}
