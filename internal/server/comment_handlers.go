package server

import (
	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /posts/:id/comment
func (s *Server) AddComment(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.AddComment(ctx, userID, postID, req.Text)
	if err != nil {
		return respondForError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
