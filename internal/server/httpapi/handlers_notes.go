package httpapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"notekeeper/internal/common"
	"notekeeper/internal/server/notes"
)

func (s *Server) listNotes(c *fiber.Ctx) error {
	list, err := s.noteService.List(c.UserContext(), ownerID(c))
	if err != nil {
		return err
	}
	return c.JSON(toNoteResponses(list))
}

type createNoteRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	IsFavorite bool     `json:"is_favorite"`
	FolderID   *string  `json:"folder_id"`
}

func (s *Server) createNote(c *fiber.Ctx) error {
	var req createNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: invalid body", common.ErrorValidation)
	}

	note, err := s.noteService.Create(c.UserContext(), ownerID(c), notes.CreateParams{
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		IsFavorite: req.IsFavorite,
		FolderID:   req.FolderID,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toNoteResponse(note))
}

type updateNoteRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags"`
	IsFavorite *bool     `json:"is_favorite"`
	MoveFolder bool      `json:"move_folder"`
	FolderID   *string   `json:"folder_id"`
}

func (s *Server) updateNote(c *fiber.Ctx) error {
	var req updateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: invalid body", common.ErrorValidation)
	}

	note, err := s.noteService.Update(c.UserContext(), ownerID(c), c.Params("id"), notes.Patch{
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		IsFavorite: req.IsFavorite,
		MoveFolder: req.MoveFolder,
		FolderID:   req.FolderID,
	})
	if err != nil {
		return err
	}

	return c.JSON(toNoteResponse(note))
}

func (s *Server) deleteNote(c *fiber.Ctx) error {
	if err := s.noteService.Delete(c.UserContext(), ownerID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
