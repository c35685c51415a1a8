package server

import (
	"yatube/internal/models"
	"yatube/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

// parseID reads a positive integer route parameter, responding 400 on failure.
func (s *Server) parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		verr := models.NewValidationError("Invalid " + name)
		return 0, models.RespondWithError(c, fiber.StatusBadRequest, verr)
	}
	return uint(id), nil
}

// pageNumber reads the `page` query parameter, defaulting to the first page.
func pageNumber(c *fiber.Ctx) int {
	return c.QueryInt("page", 1)
}

// postPage paginates a post listing with the shared page size.
func postPage(posts []*models.Post, number int) pagination.Page[*models.Post] {
	return pagination.Paginate(posts, pagination.DefaultPageSize, number)
}

// respondForError maps service errors onto HTTP responses using the
// AppError code. Forbidden is intentionally absent: callers that can see
// it decide between a redirect and a 403 themselves.
func respondForError(c *fiber.Ctx, err error) error {
	switch {
	case models.IsCode(err, "NOT_FOUND"):
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	case models.IsCode(err, "VALIDATION_ERROR"):
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	case models.IsCode(err, "UNAUTHORIZED"):
		return models.RespondWithError(c, fiber.StatusUnauthorized, err)
	default:
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
}
