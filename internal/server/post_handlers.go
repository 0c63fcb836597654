package server

import (
	"fmt"

	"fotogram/internal/cache"
	"fotogram/internal/middleware"
	"fotogram/internal/models"
	"fotogram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadPost handles POST /api/posts
func (s *Server) UploadPost(c *fiber.Ctx) error {
	var req models.UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Upload(c.Context(), service.UploadInput{
		UserEmail: req.UserEmail,
		ImageLink: req.ImageLink,
		Caption:   req.Caption,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	// New posts must show up in explore immediately.
	cache.Invalidate(c.Context(), exploreFeedCacheKey)

	return c.Status(fiber.StatusCreated).JSON(models.Ack{
		Message: fmt.Sprintf("Post created with ID: %d", post.ID),
	})
}

// LikePost handles POST /api/posts/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	var req models.LikeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	newLikes, err := s.postService.ApplyLike(c.Context(), service.LikeInput{
		UserEmail:  req.UserEmail,
		ImageLink:  req.ImageLink,
		PriorLikes: req.Likes,
		Operation:  req.Operation,
	})
	if err != nil {
		middleware.InteractionWrites.WithLabelValues("like", "error").Inc()
		return respondServiceError(c, err)
	}

	middleware.InteractionWrites.WithLabelValues("like", "ok").Inc()
	cache.Invalidate(c.Context(), exploreFeedCacheKey)

	return c.JSON(models.Ack{
		Message: fmt.Sprintf("Post updated with new like count: %d", newLikes),
	})
}
