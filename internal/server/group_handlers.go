package server

import (
	"github.com/gofiber/fiber/v2"
)

// GroupPosts handles GET /group/:slug
func (s *Server) GroupPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	slug := c.Params("slug")

	group, posts, err := s.postService.ListByGroup(ctx, slug)
	if err != nil {
		return respondForError(c, err)
	}

	return c.JSON(fiber.Map{
		"group": group,
		"page":  postPage(posts, pageNumber(c)),
	})
}
