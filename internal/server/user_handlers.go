package server

import (
	"fotogram/internal/models"
	"fotogram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SearchUsers handles GET /api/users/search. Returns every user; the search
// overlay filters client-side by substring match on username.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	results, err := s.userService.Search(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	if results == nil {
		results = []models.SearchUserResult{}
	}
	return c.JSON(results)
}

// CurrentUser handles GET /api/users/me. The identity comes from the
// verified token, not from the request body.
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	profile, err := s.userService.Profile(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// FollowUser handles POST /api/users/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	var req models.FollowRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	err := s.userService.SetFollow(c.Context(), service.FollowInput{
		TargetEmail:   req.TargetEmail,
		FollowerEmail: req.FollowerEmail,
		Operation:     req.Operation,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.Ack{Message: "Follower relationship updated successfully"})
}
