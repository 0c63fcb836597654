package server

import (
	"fmt"

	"fotogram/internal/middleware"
	"fotogram/internal/models"
	"fotogram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/posts/comments?owner=<email>&image_url=<url>
func (s *Server) GetComments(c *fiber.Ctx) error {
	owner := c.Query("owner")
	imageURL := c.Query("image_url")
	if owner == "" || imageURL == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("owner and image_url are required"))
	}

	comments, err := s.commentService.ListForPost(c.Context(), owner, imageURL)
	if err != nil {
		return respondServiceError(c, err)
	}

	if comments == nil {
		comments = []models.CommentView{}
	}
	return c.JSON(comments)
}

// CreateComment handles POST /api/posts/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req models.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Add(c.Context(), service.AddCommentInput{
		UserEmail: req.UserEmail,
		ImageLink: req.ImageLink,
		Text:      req.Text,
	})
	if err != nil {
		middleware.InteractionWrites.WithLabelValues("comment", "error").Inc()
		return respondServiceError(c, err)
	}

	middleware.InteractionWrites.WithLabelValues("comment", "ok").Inc()

	return c.Status(fiber.StatusCreated).JSON(models.Ack{
		Message: fmt.Sprintf("Comment added with ID: %d", comment.ID),
	})
}
