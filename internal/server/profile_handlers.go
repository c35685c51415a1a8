package server

import (
	"github.com/gofiber/fiber/v2"
)

// Profile handles GET /profile/:username
//
// The `following` flag is only meaningful when the request carries a
// valid token; anonymous viewers always see false.
func (s *Server) Profile(c *fiber.Ctx) error {
	ctx := c.Context()
	username := c.Params("username")

	author, posts, err := s.postService.ListByAuthor(ctx, username)
	if err != nil {
		return respondForError(c, err)
	}

	following := false
	if viewerID, ok := s.optionalUserID(c); ok && viewerID != author.ID {
		following, err = s.followService.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			return respondForError(c, err)
		}
	}

	followers, err := s.followService.FollowersCount(ctx, author.ID)
	if err != nil {
		return respondForError(c, err)
	}
	followingCount, err := s.followService.FollowingCount(ctx, author.ID)
	if err != nil {
		return respondForError(c, err)
	}

	return c.JSON(fiber.Map{
		"author":          author,
		"posts_count":     len(posts),
		"followers_count": followers,
		"following_count": followingCount,
		"following":       following,
		"page":            postPage(posts, pageNumber(c)),
	})
}

// ProfileFollow handles POST /profile/:username/follow
func (s *Server) ProfileFollow(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	following, err := s.followService.Follow(ctx, userID, username)
	if err != nil {
		return respondForError(c, err)
	}

	return c.JSON(fiber.Map{"following": following})
}

// ProfileUnfollow handles POST /profile/:username/unfollow
func (s *Server) ProfileUnfollow(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	following, err := s.followService.Unfollow(ctx, userID, username)
	if err != nil {
		return respondForError(c, err)
	}

	return c.JSON(fiber.Map{"following": following})
}
