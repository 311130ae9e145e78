package httpapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"notekeeper/internal/common"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: invalid body", common.ErrorValidation)
	}

	user, err := s.userService.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toUserResponse(user))
}

func (s *Server) login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: invalid body", common.ErrorValidation)
	}

	user, pair, err := s.userService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(sessionResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         toUserResponse(user),
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (s *Server) refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: invalid body", common.ErrorValidation)
	}

	pair, err := s.userService.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (s *Server) logout(c *fiber.Ctx) error {
	if err := s.userService.Logout(c.UserContext(), ownerID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) currentUser(c *fiber.Ctx) error {
	user, err := s.userService.GetByID(c.UserContext(), ownerID(c))
	if err != nil {
		return err
	}
	return c.JSON(toUserResponse(user))
}
