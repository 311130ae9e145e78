// Package httpapi exposes the server's JSON API over Fiber: token-based
// auth endpoints plus owner-scoped note and folder resources.
package httpapi

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"notekeeper/internal/common"
	"notekeeper/internal/logging"
	"notekeeper/internal/server/folders"
	"notekeeper/internal/server/notes"
	"notekeeper/internal/server/users"
)

type Server struct {
	addr          string
	logger        logging.Logger
	userService   *users.Service
	noteService   *notes.Service
	folderService *folders.Service
	secretKey     []byte

	app *fiber.App
}

func NewServer(addr string, logger logging.Logger, us *users.Service, ns *notes.Service, fs *folders.Service, secretKey string) *Server {
	s := &Server{
		addr:          addr,
		logger:        logger,
		userService:   us,
		noteService:   ns,
		folderService: fs,
		secretKey:     []byte(secretKey),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: s.errorHandler,
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", s.register)
	auth.Post("/login", s.login)
	auth.Post("/refresh", s.refresh)
	auth.Post("/logout", s.requireAuth, s.logout)

	api.Get("/user", s.requireAuth, s.currentUser)

	api.Get("/notes", s.requireAuth, s.listNotes)
	api.Post("/notes", s.requireAuth, s.createNote)
	api.Put("/notes/:id", s.requireAuth, s.updateNote)
	api.Delete("/notes/:id", s.requireAuth, s.deleteNote)

	api.Get("/folders", s.requireAuth, s.listFolders)
	api.Post("/folders", s.requireAuth, s.createFolder)
	api.Put("/folders/:id", s.requireAuth, s.renameFolder)
	api.Delete("/folders/:id", s.requireAuth, s.deleteFolder)
	api.Post("/folders/:id/clear-notes", s.requireAuth, s.clearFolderNotes)

	s.app = app
	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.app.Listen(s.addr)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "shutting down http server")
		return s.app.Shutdown()
	case err := <-errCh:
		return err
	}
}

// errorHandler turns sentinel errors from the services into the uniform
// status + {"error": ...} body the client expects.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "internal error"

	var fiberErr *fiber.Error

	switch {
	case errors.Is(err, common.ErrorValidation):
		status = fiber.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, common.ErrEmailTaken):
		status = fiber.StatusConflict
		msg = err.Error()
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		status = fiber.StatusUnauthorized
		msg = err.Error()
	case errors.Is(err, common.ErrorNotFound):
		status = fiber.StatusNotFound
		msg = err.Error()
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		msg = fiberErr.Message
	default:
		s.logger.Error(c.UserContext(), "request failed", "path", c.Path(), "error", err.Error())
	}

	return c.Status(status).JSON(fiber.Map{"error": msg})
}
