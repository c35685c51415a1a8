package server

import (
	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ClearIndexCache handles POST /admin/cache/clear. It drops every cached
// index page so the next read recomputes from the database.
func (s *Server) ClearIndexCache(c *fiber.Ctx) error {
	if err := s.indexCache.Clear(c.Context()); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"cleared": true})
}
