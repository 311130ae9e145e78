package httpapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"notekeeper/internal/common"
)

func (s *Server) listFolders(c *fiber.Ctx) error {
	list, err := s.folderService.List(c.UserContext(), ownerID(c))
	if err != nil {
		return err
	}
	return c.JSON(toFolderResponses(list))
}

type folderNameRequest struct {
	Name string `json:"name"`
}

func (s *Server) createFolder(c *fiber.Ctx) error {
	var req folderNameRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: invalid body", common.ErrorValidation)
	}

	folder, err := s.folderService.Create(c.UserContext(), ownerID(c), req.Name)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toFolderResponse(folder))
}

func (s *Server) renameFolder(c *fiber.Ctx) error {
	var req folderNameRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: invalid body", common.ErrorValidation)
	}

	folder, err := s.folderService.Rename(c.UserContext(), ownerID(c), c.Params("id"), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(toFolderResponse(folder))
}

func (s *Server) deleteFolder(c *fiber.Ctx) error {
	if err := s.folderService.Delete(c.UserContext(), ownerID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) clearFolderNotes(c *fiber.Ctx) error {
	if err := s.noteService.ClearFolder(c.UserContext(), ownerID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
