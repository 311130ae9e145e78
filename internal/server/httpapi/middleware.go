package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"notekeeper/internal/common"
	"notekeeper/internal/server/auth"
)

// userIDKey is the fiber locals key holding the authenticated user's ID.
const userIDKey = "userID"

// requireAuth verifies the bearer access token and stores the user ID in
// locals for the handler.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get(common.AuthorizationHeaderName)
	if header == "" || !strings.HasPrefix(header, common.BearerPrefix) {
		return common.ErrorUnauthorized
	}

	token := strings.TrimPrefix(header, common.BearerPrefix)
	userID, err := auth.GetUserIDFromToken(token, s.secretKey)
	if err != nil {
		return err
	}

	c.Locals(userIDKey, userID)
	return c.Next()
}

func ownerID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
